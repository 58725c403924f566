package services

import (
	"fmt"
	"strings"
	"time"
	"tripplanner/internal/models/request_models"
	"tripplanner/internal/models/response_models"
	"tripplanner/pkg/utils"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	fallbackDestination = "Goa"
	fallbackDays        = 3
	fallbackStyle       = request_models.TravelStyleBudget
	fallbackGroup       = request_models.GroupTypeCouple
	fallbackFood        = request_models.FoodPreferenceAny
)

// costTier holds the display ranges for one travel-style tier. Only two tiers
// exist: budget, and everything else.
type costTier struct {
	morning, afternoon, evening string
	meal, dailyCost             string
	heritage, restaurant        string
	accommodation, food         string
	activities, dailyAverage    string
	transport                   string
	totalLow, totalHigh         int
}

var budgetTier = costTier{
	morning:       "₹500-1,000",
	afternoon:     "₹300-600",
	evening:       "₹400-800",
	meal:          "₹200-500",
	dailyCost:     "₹2,000-3,500",
	heritage:      "₹200-500",
	restaurant:    "₹300-600",
	accommodation: "₹2,000-4,000/night",
	food:          "₹1,000-2,000/day",
	activities:    "₹1,000-2,500/day",
	dailyAverage:  "₹6,000-12,000",
	transport:     "public transport",
	totalLow:      6000,
	totalHigh:     12000,
}

var comfortTier = costTier{
	morning:       "₹1,500-2,500",
	afternoon:     "₹800-1,500",
	evening:       "₹1,000-2,000",
	meal:          "₹500-1,000",
	dailyCost:     "₹4,500-7,000",
	heritage:      "₹500-1,000",
	restaurant:    "₹600-1,200",
	accommodation: "₹5,000-10,000/night",
	food:          "₹2,500-4,000/day",
	activities:    "₹2,500-5,000/day",
	dailyAverage:  "₹15,000-25,000",
	transport:     "private cars",
	totalLow:      15000,
	totalHigh:     25000,
}

var rupees = message.NewPrinter(language.English)

// BuildFallbackItinerary synthesizes a complete itinerary from the request
// alone. It never fails: absent fields take the Goa/3-day/budget/Couple/Any
// defaults, and the result always has exactly one plan per day.
func BuildFallbackItinerary(req request_models.TripRequest) *response_models.ItineraryDocument {
	destination := strings.TrimSpace(req.Destination)
	if destination == "" {
		destination = fallbackDestination
	}
	days := req.Days()
	if days < request_models.MinTripDays {
		days = fallbackDays
	}
	if days > request_models.MaxTripDays {
		days = request_models.MaxTripDays
	}
	style := req.TravelStyle
	if style == request_models.TravelStyleUnset {
		style = fallbackStyle
	}
	group := req.GroupType
	if group == request_models.GroupTypeUnset {
		group = fallbackGroup
	}
	food := req.FoodPreference
	if food == request_models.FoodPreferenceUnset {
		food = fallbackFood
	}

	tier := comfortTier
	if style == request_models.TravelStyleBudget {
		tier = budgetTier
	}
	veg := food == request_models.FoodPreferenceVeg

	foodType, foodLabel, foodDescription := "Traditional", "Local", "local cuisine"
	if veg {
		foodType, foodLabel, foodDescription = "Vegetarian", "Vegetarian", "vegetarian"
	}

	var start time.Time
	if req.Date != "" {
		if t, err := utils.ParseTripDate(req.Date); err == nil {
			start = t
		}
	}

	plans := make([]response_models.DailyItinerary, 0, days)
	for i := 0; i < days; i++ {
		plan := response_models.DailyItinerary{
			Day:   i + 1,
			Title: fmt.Sprintf("Day %d: Exploring %s", i+1, destination),
			Morning: response_models.Activity{
				Activity:    "Local Sightseeing",
				Description: "Explore the main attractions and cultural sites",
				Location:    "City Center",
				Duration:    "3-4 hours",
				Cost:        tier.morning,
			},
			Afternoon: response_models.Activity{
				Activity:    "Cultural Experience",
				Description: "Immerse in local culture and traditions",
				Location:    "Cultural District",
				Duration:    "2-3 hours",
				Cost:        tier.afternoon,
			},
			Evening: &response_models.Activity{
				Activity:    "Local Cuisine",
				Description: "Experience authentic local dining",
				Location:    "Food Street",
				Duration:    "2 hours",
				Cost:        tier.evening,
			},
			FoodRecommendations: []response_models.FoodRecommendation{{
				Name:       "Local Restaurant",
				Type:       foodType,
				Speciality: fmt.Sprintf("Authentic %s cuisine", destination),
				PriceRange: tier.meal,
			}},
			TransportationTips: fmt.Sprintf("Use local %s for convenient travel", tier.transport),
			CulturalTips:       "Respect local customs and traditions",
			EstimatedDailyCost: tier.dailyCost,
		}
		plan.Date = utils.TripDayDate(start, i)
		plans = append(plans, plan)
	}

	return &response_models.ItineraryDocument{
		DestinationSummary: fmt.Sprintf("%s is a wonderful destination offering rich culture, beautiful landscapes, and unforgettable experiences perfect for %s travelers.",
			destination, group),
		DailyItineraries: plans,
		Recommendations: []response_models.Recommendation{
			{
				Category:        "Attraction",
				Title:           fmt.Sprintf("%s Heritage Site", destination),
				Description:     "Must-visit landmark showcasing local culture",
				Location:        "City Center",
				Rating:          "4.5/5",
				PriceRange:      tier.heritage,
				BestTimeToVisit: "Morning",
				Duration:        "2-3 hours",
			},
			{
				Category:        "Food",
				Title:           fmt.Sprintf("Best %s Restaurant", foodLabel),
				Description:     fmt.Sprintf("Highly rated %s restaurant", foodDescription),
				Location:        "Food District",
				Rating:          "4.7/5",
				PriceRange:      tier.restaurant,
				BestTimeToVisit: "Dinner",
				Duration:        "1-2 hours",
			},
		},
		CostBreakdown: response_models.CostBreakdown{
			Accommodation:  tier.accommodation,
			Food:           tier.food,
			Transportation: "₹500-1,500/day",
			Activities:     tier.activities,
			Shopping:       "₹1,000-3,000 total",
			Miscellaneous:  "₹500-1,000/day",
			Total:          rupees.Sprintf("₹%d-%d", days*tier.totalLow, days*tier.totalHigh),
			DailyAverage:   tier.dailyAverage,
		},
		TravelTips: response_models.TravelTips{
			Transportation: []string{"Use local transport for authentic experience", "Book in advance for better rates"},
			MoneySaving:    []string{"Visit during off-peak hours", "Try street food", "Book accommodations early"},
			Cultural:       []string{"Dress modestly at religious sites", "Learn basic local greetings", "Respect photography rules"},
			Weather:        "Check local weather forecast and pack accordingly",
			Packing:        []string{"Comfortable walking shoes", "Sunscreen and sunglasses", "Portable charger", "Light clothing"},
		},
	}
}
