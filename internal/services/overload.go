package services

import (
	"fmt"
	"strings"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
)

// OverloadDetector flags a heavy calendar day. Pure and deterministic: no
// schedule or a light one yields an empty suffix.
type OverloadDetector interface {
	Detect(schedule []string) string
}

type overloadDetector struct {
	log       *logger.Logger
	threshold int
}

func NewOverloadDetector(rules Rules, log *logger.Logger) OverloadDetector {
	return &overloadDetector{
		log:       log.With("agent", "OverloadDetector"),
		threshold: rules.OverloadThreshold,
	}
}

func (od *overloadDetector) Detect(schedule []string) string {
	if len(schedule) == 0 {
		return ""
	}
	total := len(schedule)
	if total < od.threshold {
		return ""
	}

	// Name the first two entries so the warning reads personal.
	named := schedule
	if len(named) > 2 {
		named = named[:2]
	}
	eventNames := strings.Join(named, ", ")

	return fmt.Sprintf(
		"\n\n---\n📅 **Calendar Insight:** I noticed you have a very heavy schedule today with %d back-to-back events (including %s). \n\n"+
			"🚨 **Overload Warning:** Your brain needs time to consolidate information. "+
			"**Suggested Action:** Please block out 20 minutes for a screen-free walk right after your second class. Hydrate and step away from the desk!",
		total, eventNames,
	)
}
