package services

import (
	"testing"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
)

func newTestLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	return log
}

func TestCrisisDetectorMatchesAnyPhraseCaseInsensitive(t *testing.T) {
	cd := NewCrisisDetector(DefaultRules(), newTestLogger(t))

	cases := []string{
		"I want to DIE today",
		"i think about suicide a lot",
		"I might hurt myself tonight",
		"honestly I'm giving up",
		"I CAN'T TAKE IT ANYMORE",
		"maybe I should just end it",
	}
	for _, msg := range cases {
		got, ok := cd.Detect(msg)
		if !ok {
			t.Fatalf("Detect(%q): expected interception", msg)
		}
		if got != CrisisMessage {
			t.Fatalf("Detect(%q): reply differs from the fixed crisis message", msg)
		}
	}
}

func TestCrisisDetectorMessageIsIdenticalForEveryTrigger(t *testing.T) {
	cd := NewCrisisDetector(DefaultRules(), newTestLogger(t))

	first, ok := cd.Detect("suicide")
	if !ok {
		t.Fatal("expected interception")
	}
	second, ok := cd.Detect("I want to die and I'm giving up")
	if !ok {
		t.Fatal("expected interception")
	}
	if first != second {
		t.Fatal("crisis message must be byte-identical regardless of the matched phrase")
	}
}

func TestCrisisDetectorIgnoresOrdinaryMessages(t *testing.T) {
	cd := NewCrisisDetector(DefaultRules(), newTestLogger(t))

	cases := []string{
		"I'm stressed about my exam",
		"can you help me plan my study schedule",
		"",
		"the deadline is killing my social life", // no listed phrase
	}
	for _, msg := range cases {
		if reply, ok := cd.Detect(msg); ok {
			t.Fatalf("Detect(%q): unexpected interception %q", msg, reply)
		}
	}
}
