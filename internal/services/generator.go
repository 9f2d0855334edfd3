package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/clients/textgen"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
)

// GeneratorFallback replaces the base reply when the hosted model is
// unreachable. This is the inner fallback layer; the gateway carries its own.
const GeneratorFallback = "I'm having a little trouble connecting right now. Please take a deep breath, and try asking me again in a moment."

// GeneratorService produces the base reply. It never returns an error: model
// failures are logged with their typed cause and replaced with the fixed
// apologetic text.
type GeneratorService interface {
	Generate(ctx context.Context, userMessage string, mood types.Mood) string
}

type generatorService struct {
	log    *logger.Logger
	client textgen.Client
}

func NewGeneratorService(client textgen.Client, log *logger.Logger) GeneratorService {
	return &generatorService{
		log:    log.With("service", "GeneratorService"),
		client: client,
	}
}

func (gs *generatorService) Generate(ctx context.Context, userMessage string, mood types.Mood) string {
	system := systemPrompt(mood)
	reply, err := gs.client.GenerateText(ctx, system, userMessage)
	if err != nil {
		var terr *textgen.Error
		if errors.As(err, &terr) {
			gs.log.Error("Text generation failed", "kind", string(terr.Kind), "status", terr.Status, "error", err)
		} else {
			gs.log.Error("Text generation failed", "error", err)
		}
		return GeneratorFallback
	}
	return reply
}

// systemPrompt keeps the model on wellness topics and tunes its tone to the
// reported mood.
func systemPrompt(mood types.Mood) string {
	return fmt.Sprintf(
		"You are a highly empathetic Student Wellness and Academic Support Companion. "+
			"Your ONLY purpose is to discuss mental health, study strategies, stress management, "+
			"and student well-being. If a user asks about anything unrelated (like coding, politics, "+
			"or general trivia), you must politely refuse and redirect the conversation back to their well-being. "+
			"IMPORTANT: The student has indicated they are currently feeling %s. "+
			"Tailor your advice and tone to support someone feeling this way. Keep responses concise and supportive.",
		mood,
	)
}
