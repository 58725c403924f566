package request_models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type TravelStyle string

const (
	TravelStyleUnset  TravelStyle = ""
	TravelStyleBudget TravelStyle = "budget"
	TravelStyleLuxury TravelStyle = "luxury"
)

type GroupType string

const (
	GroupTypeUnset  GroupType = ""
	GroupTypeSolo   GroupType = "Solo"
	GroupTypeCouple GroupType = "Couple"
	GroupTypeFamily GroupType = "Family"
)

type FoodPreference string

const (
	FoodPreferenceUnset  FoodPreference = ""
	FoodPreferenceAny    FoodPreference = "Any"
	FoodPreferenceVeg    FoodPreference = "Veg"
	FoodPreferenceNonVeg FoodPreference = "Non-Veg"
)

const (
	MinTripDays = 1
	// MaxTripDays bounds the synthesized fallback itinerary. Longer requests
	// are still accepted and sent to the model.
	MaxTripDays = 30
)

// DayCount is the trip length in days. The intake form posts it as a string,
// so both `3` and `"3"` decode. Zero means the field was absent or empty.
type DayCount int

func (d *DayCount) UnmarshalJSON(data []byte) error {
	n, _, err := parseDayCount(data)
	if err != nil {
		return err
	}
	*d = n
	return nil
}

// parseDayCount decodes a duration and reports whether a value was actually
// given. null and "" count as absent.
func parseDayCount(data []byte) (DayCount, bool, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false, nil
	}

	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false, err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			return 0, false, nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false, fmt.Errorf("duration must be a whole number of days, got %q", raw)
	}
	return DayCount(n), true, nil
}

// TripRequest is the structured request produced by the trip intake form.
type TripRequest struct {
	Destination     string         `json:"destination"`
	Duration        DayCount       `json:"duration"`
	TravelStyle     TravelStyle    `json:"travelStyle"`
	GroupType       GroupType      `json:"groupType"`
	FoodPreference  FoodPreference `json:"foodPreference"`
	TravelInterests []string       `json:"travelInterests"`
	PickupLocation  string         `json:"pickupLocation,omitempty"`
	Date            string         `json:"date,omitempty"`

	// durationGiven records an explicit duration in the JSON body, so that
	// "0" is told apart from a missing field.
	durationGiven bool
}

func (r *TripRequest) UnmarshalJSON(data []byte) error {
	type plain TripRequest
	aux := struct {
		*plain
		Duration json.RawMessage `json:"duration"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	n, given, err := parseDayCount(aux.Duration)
	if err != nil {
		return err
	}
	r.Duration = n
	r.durationGiven = given
	return nil
}

// Days returns the duration as a plain int.
func (r TripRequest) Days() int { return int(r.Duration) }

// HasRequiredFields reports whether destination and duration are both present.
// A present but non-positive duration counts as present.
func (r TripRequest) HasRequiredFields() bool {
	return strings.TrimSpace(r.Destination) != "" && (r.Duration != 0 || r.durationGiven)
}

// ParseTravelStyle matches s case-insensitively against the known styles.
func ParseTravelStyle(s string) (TravelStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return TravelStyleUnset, true
	case "budget":
		return TravelStyleBudget, true
	case "luxury":
		return TravelStyleLuxury, true
	}
	return TravelStyleUnset, false
}

func ParseGroupType(s string) (GroupType, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return GroupTypeUnset, true
	case "solo":
		return GroupTypeSolo, true
	case "couple":
		return GroupTypeCouple, true
	case "family":
		return GroupTypeFamily, true
	}
	return GroupTypeUnset, false
}

func ParseFoodPreference(s string) (FoodPreference, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return FoodPreferenceUnset, true
	case "any":
		return FoodPreferenceAny, true
	case "veg", "vegetarian":
		return FoodPreferenceVeg, true
	case "non-veg", "nonveg", "non veg":
		return FoodPreferenceNonVeg, true
	}
	return FoodPreferenceUnset, false
}

// NormalizeInterests trims, de-duplicates and sorts interest tags so that
// ordering never matters downstream.
func NormalizeInterests(interests []string) []string {
	seen := make(map[string]bool, len(interests))
	out := make([]string, 0, len(interests))
	for _, tag := range interests {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	slices.Sort(out)
	return out
}
