package utils

import "errors"

var (
	ErrMissingRequiredFields = errors.New("destination and duration are required")
	ErrInvalidTripRequest    = errors.New("invalid trip request")

	// Generation path. These never reach the HTTP caller; the itinerary
	// service absorbs them and serves a fallback itinerary instead.
	ErrClientUnavailable = errors.New("generation service unavailable")
	ErrEmptyResponse     = errors.New("generation service returned no candidates")
	ErrMalformedOutput   = errors.New("malformed itinerary output")
)
