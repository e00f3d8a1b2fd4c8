package ai

import (
	"fmt"
	"strings"
	"time"
)

// TripPrompt carries the trip constraints encoded into the itinerary
// prompt. Budget and the date range are always rendered; downstream
// validation depends on the model having seen both.
type TripPrompt struct {
	City           string
	State          string
	Country        string
	StartDate      time.Time
	EndDate        time.Time
	Days           int
	Budget         float64
	Currency       string
	Travelers      int
	TripTypes      []string
	FoodPreference string
}

// Location renders "City, State, Country" or "City, Country".
func (p TripPrompt) Location() string {
	if p.State != "" {
		return fmt.Sprintf("%s, %s, %s", p.City, p.State, p.Country)
	}
	return fmt.Sprintf("%s, %s", p.City, p.Country)
}

// BuildItineraryPrompt constructs the structured request for a
// day-by-day itinerary, including the exact output schema the parser
// expects. Pure function, no side effects.
func BuildItineraryPrompt(p TripPrompt) string {
	tripTypes := strings.Join(p.TripTypes, ", ")
	if tripTypes == "" {
		tripTypes = "General"
	}
	food := p.FoodPreference
	if food == "" {
		food = "No preference"
	}
	start := p.StartDate.Format("2006-01-02")
	end := p.EndDate.Format("2006-01-02")

	return fmt.Sprintf(`Create a detailed %d-day travel itinerary for %s.

TRIP DETAILS:
- Dates: %s to %s
- Budget: %.2f %s (total for all %d people)
- Trip Type: %s
- Food Preference: %s
- Travelers: %d people

IMPORTANT: Return ONLY valid JSON with NO additional text, explanations, or markdown formatting.

Use this EXACT structure:

{
    "trip_overview": "A brief 2-3 sentence overview of the trip",
    "total_estimated_cost": 1500.00,
    "daily_itinerary": [
        {
            "day": 1,
            "date": "%s",
            "title": "Arrival and City Exploration",
            "summary": "A 2-3 sentence description of the day's theme.",
            "activities": [
                {
                    "time": "09:00 AM",
                    "activity": "Activity name",
                    "description": "Brief description of what you'll do",
                    "location": "Specific location name",
                    "estimated_cost": 50.00,
                    "duration": "2 hours"
                }
            ],
            "meals": [
                {"type": "Breakfast", "restaurant": "Restaurant name", "cuisine": "Cuisine type", "estimated_cost": 25.00},
                {"type": "Lunch", "restaurant": "Restaurant name", "cuisine": "Cuisine type", "estimated_cost": 35.00},
                {"type": "Dinner", "restaurant": "Restaurant name", "cuisine": "Cuisine type", "estimated_cost": 45.00}
            ],
            "accommodation": {"hotel": "Hotel name", "area": "Neighborhood name", "estimated_cost": 150.00}
        }
    ]
}

REQUIREMENTS:
1. Include exactly %d days in daily_itinerary
2. Each day must have a summary, 3-5 activities with different times, breakfast/lunch/dinner, and accommodation info
3. Keep total costs within the budget of %.2f %s
4. Consider the %s trip type and %s food preference
5. Use realistic restaurant and hotel names from %s
6. Every estimated_cost must be a plain number
7. Return ONLY the JSON object, no other text`,
		p.Days, p.Location(),
		start, end,
		p.Budget, p.Currency, p.Travelers,
		tripTypes, food, p.Travelers,
		start,
		p.Days,
		p.Budget, p.Currency,
		tripTypes, food, p.City,
	)
}

// ItineraryGenParams sizes the generation request for the trip length.
// Long trips produce large JSON payloads; roughly 600 tokens per day,
// floored at 8000 and capped at the model output limit.
func ItineraryGenParams(days int) GenParams {
	tokens := int32(days * 600)
	if tokens < 8000 {
		tokens = 8000
	}
	if tokens > 16000 {
		tokens = 16000
	}
	return GenParams{Temperature: 0.7, MaxTokens: tokens}
}

// BuildHotelPrompt constructs the hotel recommendation request.
func BuildHotelPrompt(city, country, roomType string, amenities []string, priceRange string, n int) string {
	amenitiesStr := strings.Join(amenities, ", ")
	if amenitiesStr == "" {
		amenitiesStr = "standard amenities"
	}
	if roomType == "" {
		roomType = "any room type"
	}
	if priceRange == "" {
		priceRange = "Medium"
	}
	return fmt.Sprintf(`Find %d real hotels in %s, %s.

REQUIREMENTS:
- Price Range: %s (%s)
- Room Type: %s
- Amenities: %s
- Use REAL hotel names that exist in %s

Return ONLY valid JSON with this EXACT structure:

{
    "hotels": [
        {
            "name": "Hotel Name",
            "description": "2-3 sentence description of the hotel",
            "location": "Specific area/neighborhood in the city",
            "price_per_night": 150.00,
            "rating": 4.5,
            "room_type": "Deluxe Room",
            "amenities": ["WiFi", "Pool", "Restaurant"],
            "image_url": ""
        }
    ]
}

IMPORTANT:
1. Include exactly %d hotels
2. Use realistic prices for %s
3. Ratings between 3.5 and 5.0
4. Each hotel should have 4-6 amenities
5. Return ONLY the JSON, no other text`,
		n, city, country,
		priceRange, priceRangeDescription(priceRange),
		roomType, amenitiesStr, city,
		n, city,
	)
}

// BuildRestaurantPrompt constructs the restaurant recommendation request.
func BuildRestaurantPrompt(city, country, cuisine, dietary, priceRange string, n int) string {
	if cuisine == "" {
		cuisine = "any cuisine"
	}
	if dietary == "" {
		dietary = "no restriction"
	}
	if priceRange == "" {
		priceRange = "Medium"
	}
	return fmt.Sprintf(`Find %d real restaurants in %s, %s.

REQUIREMENTS:
- Cuisine: %s
- Dietary Preference: %s
- Price Range: %s (%s)
- Use REAL restaurant names that exist in %s

Return ONLY valid JSON with this EXACT structure:

{
    "restaurants": [
        {
            "name": "Restaurant Name",
            "description": "2-3 sentence description",
            "location": "Specific area/neighborhood in the city",
            "cuisine": "Cuisine type",
            "food_type": "Vegetarian/Non-Vegetarian/Vegan",
            "price_range": "$$",
            "rating": 4.4,
            "popular_dishes": ["Dish 1", "Dish 2", "Dish 3"],
            "image_url": ""
        }
    ]
}

IMPORTANT:
1. Include exactly %d restaurants
2. Respect the %s dietary preference
3. Ratings between 3.5 and 5.0
4. Return ONLY the JSON, no other text`,
		n, city, country,
		cuisine, dietary,
		priceRange, priceRangeDescription(priceRange),
		city,
		n, dietary,
	)
}

// BuildDestinationPrompt constructs the destination research request.
func BuildDestinationPrompt(city, country string) string {
	return fmt.Sprintf(`Generate comprehensive information about %s, %s for travel planning.
Return ONLY a valid JSON object with this exact structure:

{
    "description": "Brief 2-3 sentence description of the city",
    "popular_places": [
        {"name": "Place name", "description": "Brief description", "category": "Museum/Temple/Beach/etc"}
    ],
    "culture": "Description of local culture and traditions",
    "local_language": "Primary language(s) spoken",
    "famous_foods": [
        {"name": "Food name", "description": "Brief description"}
    ],
    "best_time_to_visit": "Best season/months to visit",
    "local_tips": "2-3 useful tips for travelers"
}

Include at least 5 popular places and 5 famous foods. Be specific and accurate.`,
		city, country,
	)
}

func priceRangeDescription(priceRange string) string {
	switch priceRange {
	case "Budget":
		return "under 80 per night, economical"
	case "Luxury":
		return "above 250 per night, high-end"
	default:
		return "80-250 per night, mid-range"
	}
}
