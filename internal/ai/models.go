package ai

// Itinerary is the normalized structure extracted from a model response.
// It is untrusted external input that has passed schema validation; the
// trip module applies the business invariants (budget, day count) on top.
type Itinerary struct {
	Overview           string  `json:"trip_overview"`
	TotalEstimatedCost float64 `json:"total_estimated_cost"`
	Days               []Day   `json:"daily_itinerary"`
}

// Day is one entry of the ordered day list.
type Day struct {
	Number        int           `json:"day"`
	Date          string        `json:"date"`
	Title         string        `json:"title"`
	Summary       string        `json:"summary"`
	Activities    []Activity    `json:"activities"`
	Meals         []Meal        `json:"meals"`
	Accommodation Accommodation `json:"accommodation"`
}

type Activity struct {
	Time          string  `json:"time"`
	Name          string  `json:"activity"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	EstimatedCost float64 `json:"estimated_cost"`
	Duration      string  `json:"duration"`
	MapsLink      string  `json:"maps_link,omitempty"`
}

type Meal struct {
	Type          string  `json:"type"`
	Restaurant    string  `json:"restaurant"`
	Cuisine       string  `json:"cuisine"`
	EstimatedCost float64 `json:"estimated_cost"`
	MapsLink      string  `json:"maps_link,omitempty"`
}

type Accommodation struct {
	Hotel         string  `json:"hotel"`
	Area          string  `json:"area"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// HotelResult is one hotel recommendation from the model.
type HotelResult struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"price_per_night"`
	Rating        float32  `json:"rating"`
	RoomType      string   `json:"room_type"`
	Amenities     []string `json:"amenities"`
	ImageURL      string   `json:"image_url"`
}

// RestaurantResult is one restaurant recommendation from the model.
type RestaurantResult struct {
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	Cuisine       string   `json:"cuisine"`
	FoodType      string   `json:"food_type"`
	PriceRange    string   `json:"price_range"`
	Rating        float32  `json:"rating"`
	PopularDishes []string `json:"popular_dishes"`
	ImageURL      string   `json:"image_url"`
}

// DestinationInsight is the research payload generated per (city, country).
type DestinationInsight struct {
	Description     string         `json:"description"`
	PopularPlaces   []PopularPlace `json:"popular_places"`
	Culture         string         `json:"culture"`
	LocalLanguage   string         `json:"local_language"`
	FamousFoods     []FamousFood   `json:"famous_foods"`
	BestTimeToVisit string         `json:"best_time_to_visit"`
	LocalTips       string         `json:"local_tips"`
}

type PopularPlace struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type FamousFood struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
