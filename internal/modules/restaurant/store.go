// README: Restaurant store backed by PostgreSQL.
package restaurant

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines restaurant persistence; the service depends on this interface.
type Store interface {
	SaveBatch(ctx context.Context, restaurants []Restaurant) error
	ListByCity(ctx context.Context, city, country, dietary string, limit int) ([]Restaurant, error)
}

type pgStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

func (s *pgStore) SaveBatch(ctx context.Context, restaurants []Restaurant) error {
	for _, r := range restaurants {
		dishes, err := json.Marshal(r.PopularDishes)
		if err != nil {
			return fmt.Errorf("restaurant: marshal dishes: %w", err)
		}
		_, err = s.db.Exec(ctx, `
			INSERT INTO restaurants (
				id, trip_id, name, description, location, city, country,
				cuisine_type, food_type, price_range, rating, popular_dishes,
				image_url, latitude, longitude, maps_link, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
			r.ID, r.TripID, r.Name, r.Description, r.Location, r.City, r.Country,
			r.Cuisine, r.FoodType, r.PriceRange, r.Rating, dishes,
			r.ImageURL, r.Latitude, r.Longitude, r.MapsLink, r.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("restaurant: insert %q: %w", r.Name, err)
		}
	}
	return nil
}

func (s *pgStore) ListByCity(ctx context.Context, city, country, dietary string, limit int) ([]Restaurant, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, name, description, location, city, country,
		       cuisine_type, food_type, price_range, rating, popular_dishes,
		       image_url, latitude, longitude, maps_link, created_at
		FROM restaurants
		WHERE lower(city) = lower($1) AND lower(country) = lower($2)
		  AND ($3 = '' OR lower(food_type) = lower($3))
		ORDER BY rating DESC, created_at DESC
		LIMIT $4`, city, country, dietary, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("restaurant: list: %w", err)
	}
	defer rows.Close()

	var restaurants []Restaurant
	for rows.Next() {
		var (
			r      Restaurant
			dishes []byte
		)
		err := rows.Scan(
			&r.ID, &r.TripID, &r.Name, &r.Description, &r.Location, &r.City, &r.Country,
			&r.Cuisine, &r.FoodType, &r.PriceRange, &r.Rating, &dishes,
			&r.ImageURL, &r.Latitude, &r.Longitude, &r.MapsLink, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("restaurant: scan: %w", err)
		}
		if err := json.Unmarshal(dishes, &r.PopularDishes); err != nil {
			return nil, fmt.Errorf("restaurant: decode dishes: %w", err)
		}
		restaurants = append(restaurants, r)
	}
	return restaurants, rows.Err()
}
