package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/clients/places"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/clients/rediscache"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/logger"
	"github.com/PURBA-CHAKRABORTY-04/student-wellness-companion/internal/types"
)

// LocationUnresolved is the sentinel the dashboard sends when its geolocation
// widget could not resolve a city.
const LocationUnresolved = "Could not detect city"

// RecommendationService suggests nearby support places for the current mood.
// Every lookup failure degrades to a fixed search tip; this path never
// surfaces an error.
type RecommendationService interface {
	Recommend(ctx context.Context, mood types.Mood, location string) string
}

type recommendationService struct {
	log       *logger.Logger
	search    places.Searcher
	cache     *rediscache.PlaceCache
	moodTerms map[types.Mood]string
}

func NewRecommendationService(rules Rules, search places.Searcher, cache *rediscache.PlaceCache, log *logger.Logger) RecommendationService {
	moodTerms := make(map[types.Mood]string, len(rules.MoodTerms))
	for label, term := range rules.MoodTerms {
		mood := types.ParseMood(label)
		if mood == types.MoodUnknown {
			log.Warn("Rules mood label not in the known mood set, skipping", "label", label)
			continue
		}
		moodTerms[mood] = term
	}
	return &recommendationService{
		log:       log.With("agent", "RecommendationService"),
		search:    search,
		cache:     cache,
		moodTerms: moodTerms,
	}
}

func (rs *recommendationService) Recommend(ctx context.Context, mood types.Mood, location string) string {
	location = strings.TrimSpace(location)
	if location == "" || location == "Unknown" || location == LocationUnresolved {
		return ""
	}

	term := rs.moodTerms[mood]
	if term == "" {
		return ""
	}

	results, hit := rs.cache.Get(ctx, term, location)
	if !hit {
		var err error
		results, err = rs.search.Search(ctx, term, location)
		if err != nil {
			rs.logLookupFailure(term, location, err)
			return fallbackTip(term, location)
		}
		if len(results) > 0 {
			rs.cache.Set(ctx, term, location, results)
		}
	}

	if len(results) == 0 {
		return fallbackTip(term, location)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "\n\n---\n📍 **Live Local Support in %s:**\n", location)
	for _, place := range results {
		fmt.Fprintf(&b, "* %s **%s**\n", termEmoji(term), place.Label())
	}
	return b.String()
}

// logLookupFailure records the typed cause; the caller already substituted
// the fallback tip, so this is observability only.
func (rs *recommendationService) logLookupFailure(term string, location string, err error) {
	var perr *places.Error
	if errors.As(err, &perr) {
		rs.log.Warn("Place lookup failed",
			"term", term,
			"location", location,
			"kind", string(perr.Kind),
			"status", perr.Status,
			"error", err,
		)
		return
	}
	rs.log.Warn("Place lookup failed", "term", term, "location", location, "error", err)
}

func fallbackTip(term string, location string) string {
	return fmt.Sprintf("\n\n---\n📍 **Tip:** Open Google Maps and search for '%s' near %s.", term, location)
}

func termEmoji(term string) string {
	switch term {
	case "yoga":
		return "🧘‍♀️"
	case "gym":
		return "🏋️‍♂️"
	default:
		return "📍"
	}
}
