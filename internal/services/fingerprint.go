package services

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"tripplanner/internal/models/request_models"
)

// fingerprintFields is the subset of a request that shapes the itinerary.
// Pickup location and travel date are left out on purpose: they do not
// change the generated content and would only fragment the cache.
type fingerprintFields struct {
	Destination    string   `json:"destination"`
	Duration       int      `json:"duration"`
	TravelStyle    string   `json:"travelStyle"`
	GroupType      string   `json:"groupType"`
	FoodPreference string   `json:"foodPreference"`
	Interests      []string `json:"interests"`
}

// BuildFingerprint derives the cache key for req. Interest order and
// duplicates do not affect the result.
func BuildFingerprint(req request_models.TripRequest) string {
	fields := fingerprintFields{
		Destination:    strings.TrimSpace(req.Destination),
		Duration:       req.Days(),
		TravelStyle:    string(req.TravelStyle),
		GroupType:      string(req.GroupType),
		FoodPreference: string(req.FoodPreference),
		Interests:      request_models.NormalizeInterests(req.TravelInterests),
	}

	// Marshalling a struct of strings, ints and a string slice cannot fail.
	canonical, _ := json.Marshal(fields)
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:])
}
