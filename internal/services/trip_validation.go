package services

import (
	"fmt"
	"strings"
	"tripplanner/internal/models/request_models"
	"tripplanner/pkg/utils"
)

// normalizeTripRequest checks the required fields and returns req with
// canonical enum spellings, trimmed text and sorted interests. Only a missing
// destination or duration, or a duration below one day, is an error. Values
// the service does not recognize are kept or dropped, and each adjustment is
// described in the returned notes.
func normalizeTripRequest(req request_models.TripRequest) (request_models.TripRequest, []string, error) {
	if !req.HasRequiredFields() {
		return req, nil, utils.ErrMissingRequiredFields
	}

	days := req.Days()
	if days < request_models.MinTripDays {
		return req, nil, fmt.Errorf("%w: duration must be at least %d day, got %d",
			utils.ErrInvalidTripRequest, request_models.MinTripDays, days)
	}

	var notes []string

	style, ok := request_models.ParseTravelStyle(string(req.TravelStyle))
	if !ok {
		style = request_models.TravelStyle(strings.TrimSpace(string(req.TravelStyle)))
		notes = append(notes, fmt.Sprintf("unrecognized travel style %q kept as given", style))
	}
	group, ok := request_models.ParseGroupType(string(req.GroupType))
	if !ok {
		group = request_models.GroupType(strings.TrimSpace(string(req.GroupType)))
		notes = append(notes, fmt.Sprintf("unrecognized group type %q kept as given", group))
	}
	food, ok := request_models.ParseFoodPreference(string(req.FoodPreference))
	if !ok {
		food = request_models.FoodPreference(strings.TrimSpace(string(req.FoodPreference)))
		notes = append(notes, fmt.Sprintf("unrecognized food preference %q kept as given", food))
	}

	date := strings.TrimSpace(req.Date)
	if date != "" {
		if _, err := utils.ParseTripDate(date); err != nil {
			notes = append(notes, fmt.Sprintf("ignored start date %q, expected YYYY-MM-DD", date))
			date = ""
		}
	}

	return request_models.TripRequest{
		Destination:     strings.TrimSpace(req.Destination),
		Duration:        req.Duration,
		TravelStyle:     style,
		GroupType:       group,
		FoodPreference:  food,
		TravelInterests: request_models.NormalizeInterests(req.TravelInterests),
		PickupLocation:  strings.TrimSpace(req.PickupLocation),
		Date:            date,
	}, notes, nil
}
