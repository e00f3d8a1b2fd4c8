// README: Hotel store backed by PostgreSQL.
package hotel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines hotel persistence; the service depends on this interface.
type Store interface {
	SaveBatch(ctx context.Context, hotels []Hotel) error
	ListByCity(ctx context.Context, city, country string, limit int) ([]Hotel, error)
}

type pgStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

func (s *pgStore) SaveBatch(ctx context.Context, hotels []Hotel) error {
	for _, h := range hotels {
		amenities, err := json.Marshal(h.Amenities)
		if err != nil {
			return fmt.Errorf("hotel: marshal amenities: %w", err)
		}
		_, err = s.db.Exec(ctx, `
			INSERT INTO hotels (
				id, trip_id, name, description, location, city, country,
				price_per_night, rating, room_type, amenities, image_url,
				latitude, longitude, maps_link, created_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
			h.ID, h.TripID, h.Name, h.Description, h.Location, h.City, h.Country,
			h.PricePerNight, h.Rating, h.RoomType, amenities, h.ImageURL,
			h.Latitude, h.Longitude, h.MapsLink, h.CreatedAt,
		)
		if err != nil {
			return fmt.Errorf("hotel: insert %q: %w", h.Name, err)
		}
	}
	return nil
}

func (s *pgStore) ListByCity(ctx context.Context, city, country string, limit int) ([]Hotel, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(ctx, `
		SELECT id, trip_id, name, description, location, city, country,
		       price_per_night, rating, room_type, amenities, image_url,
		       latitude, longitude, maps_link, created_at
		FROM hotels
		WHERE lower(city) = lower($1) AND lower(country) = lower($2)
		ORDER BY rating DESC, created_at DESC
		LIMIT $3`, city, country, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("hotel: list: %w", err)
	}
	defer rows.Close()

	var hotels []Hotel
	for rows.Next() {
		var (
			h         Hotel
			amenities []byte
		)
		err := rows.Scan(
			&h.ID, &h.TripID, &h.Name, &h.Description, &h.Location, &h.City, &h.Country,
			&h.PricePerNight, &h.Rating, &h.RoomType, &amenities, &h.ImageURL,
			&h.Latitude, &h.Longitude, &h.MapsLink, &h.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("hotel: scan: %w", err)
		}
		if err := json.Unmarshal(amenities, &h.Amenities); err != nil {
			return nil, fmt.Errorf("hotel: decode amenities: %w", err)
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}
