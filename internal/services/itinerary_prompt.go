package services

import (
	"fmt"
	"strings"
	"tripplanner/internal/models/request_models"
)

const notSpecified = "Not specified"

const itinerarySchema = `{
  "destinationSummary": "string",
  "dailyItineraries": [
    {
      "day": number,
      "title": "string",
      "morning": {
        "activity": "string",
        "description": "string",
        "location": "string",
        "duration": "string",
        "cost": "string"
      },
      "afternoon": {
        "activity": "string",
        "description": "string",
        "location": "string",
        "duration": "string",
        "cost": "string"
      },
      "evening": {
        "activity": "string",
        "description": "string",
        "location": "string",
        "duration": "string",
        "cost": "string"
      },
      "foodRecommendations": [
        {
          "name": "string",
          "type": "string",
          "speciality": "string",
          "priceRange": "string"
        }
      ],
      "transportationTips": "string",
      "culturalTips": "string",
      "estimatedDailyCost": "string"
    }
  ],
  "recommendations": [
    {
      "category": "string",
      "title": "string",
      "description": "string",
      "location": "string",
      "rating": "string",
      "priceRange": "string",
      "bestTimeToVisit": "string",
      "duration": "string"
    }
  ],
  "costBreakdown": {
    "accommodation": "string",
    "food": "string",
    "transportation": "string",
    "activities": "string",
    "shopping": "string",
    "miscellaneous": "string",
    "total": "string",
    "dailyAverage": "string"
  },
  "travelTips": {
    "transportation": ["string"],
    "moneySaving": ["string"],
    "cultural": ["string"],
    "weather": "string",
    "packing": ["string"]
  }
}`

// BuildItineraryPrompt renders req into the generation instruction. The
// output depends only on req.
func BuildItineraryPrompt(req request_models.TripRequest) string {
	days := req.Days()
	style := orNotSpecified(string(req.TravelStyle))
	group := orNotSpecified(string(req.GroupType))

	interests := "No specific interests"
	if tags := request_models.NormalizeInterests(req.TravelInterests); len(tags) > 0 {
		interests = strings.Join(tags, ", ")
	}

	var prompt strings.Builder

	prompt.WriteString(fmt.Sprintf("Generate a comprehensive %d-day travel itinerary for %s.\n\n", days, req.Destination))

	prompt.WriteString("TRIP CONTEXT:\n")
	prompt.WriteString(fmt.Sprintf("- Destination: %s\n", req.Destination))
	prompt.WriteString(fmt.Sprintf("- Duration: %d days\n", days))
	prompt.WriteString(fmt.Sprintf("- Travel Style: %s (adjust recommendations accordingly)\n", style))
	prompt.WriteString(fmt.Sprintf("- Group Type: %s\n", group))
	prompt.WriteString(fmt.Sprintf("- Food Preference: %s\n", orNotSpecified(string(req.FoodPreference))))
	prompt.WriteString(fmt.Sprintf("- Interests: %s\n", interests))
	prompt.WriteString(fmt.Sprintf("- Starting Point: %s\n\n", orNotSpecified(req.PickupLocation)))

	prompt.WriteString("CRITICAL REQUIREMENTS:\n")
	prompt.WriteString(fmt.Sprintf("1. \"dailyItineraries\" must contain exactly %d entries with \"day\" numbered 1 to %d, no gaps\n", days, days))
	prompt.WriteString("2. Every day needs a morning and an afternoon activity; the evening activity is optional\n")
	prompt.WriteString("3. Every day needs at least one food recommendation\n")
	prompt.WriteString("4. All costs are text ranges in local currency, e.g. \"₹500-1,000\"\n")
	prompt.WriteString("5. Return ONLY valid JSON, no markdown, no extra text\n\n")

	prompt.WriteString("Return ONLY a valid JSON object with this exact structure:\n\n")
	prompt.WriteString(itinerarySchema)
	prompt.WriteString("\n\n")

	prompt.WriteString(fmt.Sprintf("Make all recommendations specific to %s, realistic for a %s budget, and tailored for %s travelers.\n",
		req.Destination, style, group))

	return prompt.String()
}

func orNotSpecified(s string) string {
	if strings.TrimSpace(s) == "" {
		return notSpecified
	}
	return s
}
