package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRulesWithoutPathUsesDefaults(t *testing.T) {
	rules := LoadRules("", newTestLogger(t))
	if len(rules.CrisisPhrases) == 0 {
		t.Fatal("default crisis phrase list is empty")
	}
	if rules.OverloadThreshold != 3 {
		t.Fatalf("default overload threshold: want=3 got=%d", rules.OverloadThreshold)
	}
	if rules.MoodTerms["angry"] != "gym" {
		t.Fatalf("default mood mapping missing angry->gym, got %q", rules.MoodTerms["angry"])
	}
}

func TestLoadRulesUnreadableFileFallsBackToDefaults(t *testing.T) {
	rules := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"), newTestLogger(t))
	if len(rules.CrisisPhrases) != len(DefaultRules().CrisisPhrases) {
		t.Fatal("missing rules file must not change the defaults")
	}
}

func TestLoadRulesMergesOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := `
overload_threshold: 4
mood_terms:
  anxious: meditation
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	rules := LoadRules(path, newTestLogger(t))
	if rules.OverloadThreshold != 4 {
		t.Fatalf("override threshold: want=4 got=%d", rules.OverloadThreshold)
	}
	if rules.MoodTerms["anxious"] != "meditation" {
		t.Fatalf("override mood term: want=meditation got=%q", rules.MoodTerms["anxious"])
	}
	// Fields without overrides keep their defaults.
	if len(rules.CrisisPhrases) == 0 {
		t.Fatal("crisis phrases must survive a partial override")
	}
}

func TestLoadRulesInvalidYamlFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	if err := os.WriteFile(path, []byte("mood_terms: ["), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}
	rules := LoadRules(path, newTestLogger(t))
	if rules.OverloadThreshold != 3 {
		t.Fatalf("invalid yaml must not change the defaults, got threshold %d", rules.OverloadThreshold)
	}
}
