package services

import (
	"strings"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
)

// CrisisMessage is the fixed safety interception reply. It is byte-identical
// for every triggering message regardless of mood or location.
const CrisisMessage = "🚨 **CRISIS ALERT: You are not alone. Help is available right now.** 🚨\n\n" +
	"Please, I urge you to reach out to someone immediately:\n" +
	"📞 **AASRA (24x7 Helpline):** 9820466726\n" +
	"📞 **Kiran (Mental Health Helpline):** 1800-599-0019\n" +
	"👥 **Next Step:** Please call a trusted friend, family member, or go to the nearest hospital.\n\n" +
	"*Your life has immense value. Please make the call.*"

// CrisisDetector intercepts messages containing crisis language. It must run
// before any external call; that ordering is a safety contract.
type CrisisDetector interface {
	Detect(message string) (string, bool)
}

type crisisDetector struct {
	log     *logger.Logger
	phrases []string
}

func NewCrisisDetector(rules Rules, log *logger.Logger) CrisisDetector {
	return &crisisDetector{
		log:     log.With("agent", "CrisisDetector"),
		phrases: rules.CrisisPhrases,
	}
}

func (cd *crisisDetector) Detect(message string) (string, bool) {
	lowered := strings.ToLower(message)
	for _, phrase := range cd.phrases {
		if strings.Contains(lowered, strings.ToLower(phrase)) {
			cd.log.Warn("Crisis language detected, intercepting reply")
			return CrisisMessage, true
		}
	}
	return "", false
}
