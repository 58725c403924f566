package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripplanner/internal/models/request_models"
	"tripplanner/internal/services"
)

func TestBuildFallbackItinerary_exactlyOnePlanPerDay(t *testing.T) {
	for n := request_models.MinTripDays; n <= request_models.MaxTripDays; n++ {
		req := goaRequest()
		req.Duration = request_models.DayCount(n)

		doc := services.BuildFallbackItinerary(req)

		require.Len(t, doc.DailyItineraries, n)
		for i, plan := range doc.DailyItineraries {
			assert.Equal(t, i+1, plan.Day)
			assert.NotEmpty(t, plan.Morning.Activity)
			assert.NotEmpty(t, plan.Afternoon.Activity)
			assert.NotEmpty(t, plan.FoodRecommendations)
		}
	}
}

func TestBuildFallbackItinerary_budgetTotals(t *testing.T) {
	doc := services.BuildFallbackItinerary(goaRequest())

	assert.Equal(t, "₹18,000-36,000", doc.CostBreakdown.Total)
	assert.Equal(t, "₹6,000-12,000", doc.CostBreakdown.DailyAverage)
	assert.Equal(t, "₹2,000-3,500", doc.DailyItineraries[0].EstimatedDailyCost)
	assert.Equal(t, "Use local public transport for convenient travel", doc.DailyItineraries[0].TransportationTips)
}

func TestBuildFallbackItinerary_luxuryTier(t *testing.T) {
	req := goaRequest()
	req.TravelStyle = request_models.TravelStyleLuxury
	req.Duration = 2

	doc := services.BuildFallbackItinerary(req)

	assert.Equal(t, "₹30,000-50,000", doc.CostBreakdown.Total)
	assert.Equal(t, "₹5,000-10,000/night", doc.CostBreakdown.Accommodation)
	assert.Equal(t, "₹1,500-2,500", doc.DailyItineraries[0].Morning.Cost)
}

func TestBuildFallbackItinerary_vegetarian(t *testing.T) {
	req := goaRequest()
	req.FoodPreference = request_models.FoodPreferenceVeg

	doc := services.BuildFallbackItinerary(req)

	for _, plan := range doc.DailyItineraries {
		for _, food := range plan.FoodRecommendations {
			assert.Equal(t, "Vegetarian", food.Type)
		}
	}
	assert.Equal(t, "Best Vegetarian Restaurant", doc.Recommendations[1].Title)
}

func TestBuildFallbackItinerary_defaultsForPartialRequest(t *testing.T) {
	doc := services.BuildFallbackItinerary(request_models.TripRequest{})

	require.Len(t, doc.DailyItineraries, 3)
	assert.Equal(t, "Day 1: Exploring Goa", doc.DailyItineraries[0].Title)
	assert.Contains(t, doc.DestinationSummary, "perfect for Couple travelers")
	assert.Equal(t, "₹18,000-36,000", doc.CostBreakdown.Total)
	assert.Equal(t, "Traditional", doc.DailyItineraries[0].FoodRecommendations[0].Type)
}

func TestBuildFallbackItinerary_datesFollowStartDate(t *testing.T) {
	req := goaRequest()
	req.Date = "2025-12-30"

	doc := services.BuildFallbackItinerary(req)

	assert.Equal(t, "2025-12-30", doc.DailyItineraries[0].Date)
	assert.Equal(t, "2025-12-31", doc.DailyItineraries[1].Date)
	assert.Equal(t, "2026-01-01", doc.DailyItineraries[2].Date)
}

func TestBuildFallbackItinerary_isDeterministic(t *testing.T) {
	assert.Equal(t, services.BuildFallbackItinerary(goaRequest()), services.BuildFallbackItinerary(goaRequest()))
}

func TestBuildFallbackItinerary_unrecognizedStyleUsesUpperTier(t *testing.T) {
	req := goaRequest()
	req.TravelStyle = "moderate"
	req.Duration = 2

	doc := services.BuildFallbackItinerary(req)

	assert.Equal(t, "₹30,000-50,000", doc.CostBreakdown.Total)
}

func TestBuildFallbackItinerary_capsLongTrips(t *testing.T) {
	req := goaRequest()
	req.Duration = 45

	doc := services.BuildFallbackItinerary(req)

	assert.Len(t, doc.DailyItineraries, request_models.MaxTripDays)
	assert.Equal(t, "₹180,000-360,000", doc.CostBreakdown.Total)
}
