package services

import (
	"context"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
)

// ComposerService assembles the final reply from the three agents and the
// text generator. Step order is strict: crisis interception runs first and
// before any external call; on the normal path the reply is the generated
// base text, then the overload suffix, then the recommendation suffix.
type ComposerService interface {
	Compose(ctx context.Context, req types.ChatRequest) string
}

type composerService struct {
	log       *logger.Logger
	crisis    CrisisDetector
	overload  OverloadDetector
	recommend RecommendationService
	generator GeneratorService
}

func NewComposerService(crisis CrisisDetector, overload OverloadDetector, recommend RecommendationService, generator GeneratorService, log *logger.Logger) ComposerService {
	return &composerService{
		log:       log.With("service", "ComposerService"),
		crisis:    crisis,
		overload:  overload,
		recommend: recommend,
		generator: generator,
	}
}

func (cs *composerService) Compose(ctx context.Context, req types.ChatRequest) string {
	if intercepted, ok := cs.crisis.Detect(req.UserMessage); ok {
		// Terminal: the generator and the other agents are skipped entirely.
		return intercepted
	}

	mood := req.Mood()
	base := cs.generator.Generate(ctx, req.UserMessage, mood)
	overloadSuffix := cs.overload.Detect(req.Schedule)
	recommendationSuffix := cs.recommend.Recommend(ctx, mood, req.Location)

	return base + overloadSuffix + recommendationSuffix
}
