package services

import (
	"context"
	"strings"
	"testing"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/clients/textgen"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
)

type fakeTextgenClient struct {
	reply      string
	err        error
	lastSystem string
	lastUser   string
}

func (f *fakeTextgenClient) GenerateText(ctx context.Context, system string, user string) (string, error) {
	f.lastSystem = system
	f.lastUser = user
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGeneratorPassesMoodIntoSystemPrompt(t *testing.T) {
	client := &fakeTextgenClient{reply: "One step at a time."}
	gs := NewGeneratorService(client, newTestLogger(t))

	got := gs.Generate(context.Background(), "I'm behind on everything", types.MoodAngry)
	if got != "One step at a time." {
		t.Fatalf("want model reply, got %q", got)
	}
	if client.lastUser != "I'm behind on everything" {
		t.Fatalf("user message not forwarded, got %q", client.lastUser)
	}
	if !strings.Contains(client.lastSystem, "currently feeling Angry") {
		t.Fatalf("system prompt does not carry the mood: %q", client.lastSystem)
	}
}

func TestGeneratorFallsBackOnTypedFailure(t *testing.T) {
	client := &fakeTextgenClient{err: &textgen.Error{Kind: textgen.KindStatus, Status: 503}}
	gs := NewGeneratorService(client, newTestLogger(t))

	got := gs.Generate(context.Background(), "hello", types.MoodNeutral)
	if got != GeneratorFallback {
		t.Fatalf("want fallback text, got %q", got)
	}
}
