package services

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
)

// Rules holds the agent tuning knobs: the crisis phrase list, the schedule
// threshold, and the mood to search-term mapping. Counselors can override the
// defaults with a yaml file without a redeploy.
type Rules struct {
	CrisisPhrases     []string          `yaml:"crisis_phrases"`
	OverloadThreshold int               `yaml:"overload_threshold"`
	MoodTerms         map[string]string `yaml:"mood_terms"`
}

func DefaultRules() Rules {
	return Rules{
		CrisisPhrases: []string{
			"want to die",
			"kill myself",
			"can't take it anymore",
			"end it",
			"suicide",
			"giving up",
			"hurt myself",
		},
		OverloadThreshold: 3,
		MoodTerms: map[string]string{
			"anxious":  "yoga",
			"stressed": "yoga",
			"sad":      "yoga",
			"angry":    "gym",
		},
	}
}

// LoadRules reads the overrides file when path is non-empty. Missing or
// malformed files fall back to the defaults; a misconfigured rules file must
// never take the crisis detector offline.
func LoadRules(path string, log *logger.Logger) Rules {
	rules := DefaultRules()
	if path == "" {
		return rules
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Warn("Rules file unreadable, using defaults", "path", path, "error", err)
		return rules
	}

	var overrides Rules
	if err := yaml.Unmarshal(raw, &overrides); err != nil {
		log.Warn("Rules file invalid yaml, using defaults", "path", path, "error", err)
		return rules
	}

	if len(overrides.CrisisPhrases) > 0 {
		rules.CrisisPhrases = overrides.CrisisPhrases
	}
	if overrides.OverloadThreshold > 0 {
		rules.OverloadThreshold = overrides.OverloadThreshold
	}
	if len(overrides.MoodTerms) > 0 {
		rules.MoodTerms = overrides.MoodTerms
	}
	log.Info("Agent rules loaded", "path", path, "crisis_phrases", len(rules.CrisisPhrases), "overload_threshold", rules.OverloadThreshold)
	return rules
}
