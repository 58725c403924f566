package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"
)

// ParseItinerary pulls the itinerary JSON out of raw model output and checks
// it. Only destinationSummary and a non-empty dailyItineraries are mandatory;
// anything else is repaired where possible and reported in the returned
// notes. On error the whole response is discarded.
func ParseItinerary(raw string, duration int) (*response_models.ItineraryDocument, []string, error) {
	cleaned := utils.StripCodeFences(raw)

	span, ok := utils.ExtractJSONObject(cleaned)
	if !ok {
		return nil, nil, fmt.Errorf("%w: no JSON object found", utils.ErrMalformedOutput)
	}

	var doc response_models.ItineraryDocument
	if err := json.Unmarshal([]byte(span), &doc); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", utils.ErrMalformedOutput, err)
	}

	if strings.TrimSpace(doc.DestinationSummary) == "" {
		return nil, nil, fmt.Errorf("%w: destinationSummary is missing", utils.ErrMalformedOutput)
	}
	if len(doc.DailyItineraries) == 0 {
		return nil, nil, fmt.Errorf("%w: dailyItineraries is empty", utils.ErrMalformedOutput)
	}

	notes := repairItinerary(&doc, duration)
	return &doc, notes, nil
}

func repairItinerary(doc *response_models.ItineraryDocument, duration int) []string {
	var notes []string

	if duration > 0 && len(doc.DailyItineraries) > duration {
		notes = append(notes, fmt.Sprintf("dropped %d daily plans beyond the requested %d days",
			len(doc.DailyItineraries)-duration, duration))
		doc.DailyItineraries = doc.DailyItineraries[:duration]
	}
	if duration > 0 && len(doc.DailyItineraries) < duration {
		notes = append(notes, fmt.Sprintf("model returned %d daily plans for a %d-day trip",
			len(doc.DailyItineraries), duration))
	}

	renumbered := false
	for i := range doc.DailyItineraries {
		day := &doc.DailyItineraries[i]
		if day.Day != i+1 {
			day.Day = i + 1
			renumbered = true
		}
		if strings.TrimSpace(day.Morning.Activity) == "" {
			notes = append(notes, fmt.Sprintf("day %d has no morning activity", day.Day))
		}
		if strings.TrimSpace(day.Afternoon.Activity) == "" {
			notes = append(notes, fmt.Sprintf("day %d has no afternoon activity", day.Day))
		}
		if len(day.FoodRecommendations) == 0 {
			notes = append(notes, fmt.Sprintf("day %d has no food recommendations", day.Day))
		}
	}
	if renumbered {
		notes = append(notes, "renumbered daily plans to 1..n")
	}

	return notes
}
