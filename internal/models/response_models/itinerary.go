package response_models

// Field names follow the camelCase schema the generation prompt asks the
// model to emit, so a model response decodes straight into these types.

type Activity struct {
	Activity    string `json:"activity"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Duration    string `json:"duration"`
	Cost        string `json:"cost"`
}

type FoodRecommendation struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Speciality string `json:"speciality"`
	PriceRange string `json:"priceRange"`
}

type DailyItinerary struct {
	Day                 int                  `json:"day"`
	Title               string               `json:"title"`
	Date                string               `json:"date,omitempty"`
	Morning             Activity             `json:"morning"`
	Afternoon           Activity             `json:"afternoon"`
	Evening             *Activity            `json:"evening,omitempty"`
	FoodRecommendations []FoodRecommendation `json:"foodRecommendations"`
	TransportationTips  string               `json:"transportationTips"`
	CulturalTips        string               `json:"culturalTips"`
	EstimatedDailyCost  string               `json:"estimatedDailyCost"`
}

type Recommendation struct {
	Category        string `json:"category"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Location        string `json:"location"`
	Rating          string `json:"rating,omitempty"`
	PriceRange      string `json:"priceRange"`
	BestTimeToVisit string `json:"bestTimeToVisit"`
	Duration        string `json:"duration"`
}

// CostBreakdown values are display ranges such as "₹2,000-4,000/night",
// not numbers; models emit ranges and the UI shows them verbatim.
type CostBreakdown struct {
	Accommodation  string `json:"accommodation"`
	Food           string `json:"food"`
	Transportation string `json:"transportation"`
	Activities     string `json:"activities"`
	Shopping       string `json:"shopping"`
	Miscellaneous  string `json:"miscellaneous"`
	Total          string `json:"total"`
	DailyAverage   string `json:"dailyAverage"`
}

type TravelTips struct {
	Transportation []string `json:"transportation"`
	MoneySaving    []string `json:"moneySaving"`
	Cultural       []string `json:"cultural"`
	Weather        string   `json:"weather"`
	Packing        []string `json:"packing"`
}

type ItineraryDocument struct {
	DestinationSummary string           `json:"destinationSummary"`
	DailyItineraries   []DailyItinerary `json:"dailyItineraries"`
	Recommendations    []Recommendation `json:"recommendations"`
	CostBreakdown      CostBreakdown    `json:"costBreakdown"`
	TravelTips         TravelTips       `json:"travelTips"`
}

// PlanResult is what the itinerary service hands back for a valid request.
type PlanResult struct {
	Data     *ItineraryDocument
	Cached   bool
	Fallback bool
	Message  string
}
