package response_models

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Models do not always respect the declared scalar types: ratings come back
// as 4.5, costs as 2500 and day numbers as "1". Only the summary and the list
// of daily plans are load-bearing, so the other fields decode leniently.

// flexString accepts a JSON string, number or boolean. Objects and arrays
// decode to "".
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*s = ""
		return nil
	}
	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = flexString(v)
	case '{', '[', 'n':
		*s = ""
	default:
		*s = flexString(data)
	}
	return nil
}

// flexInt accepts a JSON number or a numeric string. Anything else decodes to 0.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	raw := string(data)
	if strings.HasPrefix(raw, `"`) {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		raw = strings.TrimSpace(v)
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = flexInt(f)
	return nil
}

// bareString reports whether data is a JSON string and returns it.
func bareString(data []byte) (string, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '"' {
		return "", false
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return "", false
	}
	return s, true
}

func isObject(data []byte) bool {
	data = bytes.TrimSpace(data)
	return len(data) > 0 && data[0] == '{'
}

// A bare string in place of an activity, food entry or recommendation is
// taken as its name. Any other non-object decodes to the zero value.

func (a *Activity) UnmarshalJSON(data []byte) error {
	if name, ok := bareString(data); ok {
		*a = Activity{Activity: name}
		return nil
	}
	if !isObject(data) {
		*a = Activity{}
		return nil
	}

	type plain Activity
	aux := struct {
		*plain
		Activity    flexString `json:"activity"`
		Description flexString `json:"description"`
		Location    flexString `json:"location"`
		Duration    flexString `json:"duration"`
		Cost        flexString `json:"cost"`
	}{plain: (*plain)(a)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	a.Activity = string(aux.Activity)
	a.Description = string(aux.Description)
	a.Location = string(aux.Location)
	a.Duration = string(aux.Duration)
	a.Cost = string(aux.Cost)
	return nil
}

func (f *FoodRecommendation) UnmarshalJSON(data []byte) error {
	if name, ok := bareString(data); ok {
		*f = FoodRecommendation{Name: name}
		return nil
	}
	if !isObject(data) {
		*f = FoodRecommendation{}
		return nil
	}
	type plain FoodRecommendation
	aux := struct {
		*plain
		Name       flexString `json:"name"`
		PriceRange flexString `json:"priceRange"`
	}{plain: (*plain)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.Name = string(aux.Name)
	f.PriceRange = string(aux.PriceRange)
	return nil
}

func (d *DailyItinerary) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		*d = DailyItinerary{}
		return nil
	}
	type plain DailyItinerary
	aux := struct {
		*plain
		Day                flexInt    `json:"day"`
		Title              flexString `json:"title"`
		Date               flexString `json:"date"`
		EstimatedDailyCost flexString `json:"estimatedDailyCost"`
	}{plain: (*plain)(d)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	d.Day = int(aux.Day)
	d.Title = string(aux.Title)
	d.Date = string(aux.Date)
	d.EstimatedDailyCost = string(aux.EstimatedDailyCost)
	return nil
}

func (r *Recommendation) UnmarshalJSON(data []byte) error {
	if title, ok := bareString(data); ok {
		*r = Recommendation{Title: title}
		return nil
	}
	if !isObject(data) {
		*r = Recommendation{}
		return nil
	}
	type plain Recommendation
	aux := struct {
		*plain
		Title      flexString `json:"title"`
		Rating     flexString `json:"rating"`
		PriceRange flexString `json:"priceRange"`
		Duration   flexString `json:"duration"`
	}{plain: (*plain)(r)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	r.Title = string(aux.Title)
	r.Rating = string(aux.Rating)
	r.PriceRange = string(aux.PriceRange)
	r.Duration = string(aux.Duration)
	return nil
}

func (c *CostBreakdown) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		*c = CostBreakdown{}
		return nil
	}
	var aux struct {
		Accommodation  flexString `json:"accommodation"`
		Food           flexString `json:"food"`
		Transportation flexString `json:"transportation"`
		Activities     flexString `json:"activities"`
		Shopping       flexString `json:"shopping"`
		Miscellaneous  flexString `json:"miscellaneous"`
		Total          flexString `json:"total"`
		DailyAverage   flexString `json:"dailyAverage"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*c = CostBreakdown{
		Accommodation:  string(aux.Accommodation),
		Food:           string(aux.Food),
		Transportation: string(aux.Transportation),
		Activities:     string(aux.Activities),
		Shopping:       string(aux.Shopping),
		Miscellaneous:  string(aux.Miscellaneous),
		Total:          string(aux.Total),
		DailyAverage:   string(aux.DailyAverage),
	}
	return nil
}

// flexStrings accepts a list of scalars or a single scalar.
type flexStrings []string

func (l *flexStrings) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		var s flexString
		if err := s.UnmarshalJSON(data); err != nil {
			return err
		}
		*l = nil
		if s != "" {
			*l = flexStrings{string(s)}
		}
		return nil
	}
	var items []flexString
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	out := make(flexStrings, 0, len(items))
	for _, item := range items {
		if item != "" {
			out = append(out, string(item))
		}
	}
	*l = out
	return nil
}

func (t *TravelTips) UnmarshalJSON(data []byte) error {
	if !isObject(data) {
		*t = TravelTips{}
		return nil
	}
	var aux struct {
		Transportation flexStrings `json:"transportation"`
		MoneySaving    flexStrings `json:"moneySaving"`
		Cultural       flexStrings `json:"cultural"`
		Weather        flexString  `json:"weather"`
		Packing        flexStrings `json:"packing"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*t = TravelTips{
		Transportation: aux.Transportation,
		MoneySaving:    aux.MoneySaving,
		Cultural:       aux.Cultural,
		Weather:        string(aux.Weather),
		Packing:        aux.Packing,
	}
	return nil
}
