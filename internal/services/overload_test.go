package services

import (
	"strings"
	"testing"
)

func TestOverloadDetectorBelowThreshold(t *testing.T) {
	od := NewOverloadDetector(DefaultRules(), newTestLogger(t))

	cases := [][]string{
		nil,
		{},
		{"Data Structures"},
		{"Data Structures", "Advanced Calculus"},
	}
	for _, schedule := range cases {
		if got := od.Detect(schedule); got != "" {
			t.Fatalf("Detect(%d events): want empty suffix, got %q", len(schedule), got)
		}
	}
}

func TestOverloadDetectorAtThreshold(t *testing.T) {
	od := NewOverloadDetector(DefaultRules(), newTestLogger(t))

	schedule := []string{"Data Structures", "Advanced Calculus", "Physics Lab"}
	got := od.Detect(schedule)
	if got == "" {
		t.Fatal("Detect(3 events): expected a warning")
	}
	if !strings.Contains(got, "3 back-to-back events") {
		t.Fatalf("warning does not name the total count: %q", got)
	}
	if !strings.Contains(got, "Data Structures, Advanced Calculus") {
		t.Fatalf("warning does not name the first two entries: %q", got)
	}
	if strings.Contains(got, "Physics Lab") {
		t.Fatalf("warning should only name the first two entries: %q", got)
	}
}

func TestOverloadDetectorAboveThreshold(t *testing.T) {
	od := NewOverloadDetector(DefaultRules(), newTestLogger(t))

	schedule := []string{"A", "B", "C", "D", "E"}
	got := od.Detect(schedule)
	if !strings.Contains(got, "5 back-to-back events") {
		t.Fatalf("warning does not name the total count: %q", got)
	}
	if !strings.Contains(got, "A, B") {
		t.Fatalf("warning does not name the first two entries: %q", got)
	}
}
