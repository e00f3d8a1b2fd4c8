// README: Favorite store backed by PostgreSQL; uniqueness enforced by partial indexes.
package favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines favorite persistence; the service depends on this interface.
type Store interface {
	// Add inserts a favorite. A second favorite of the same trip or
	// popular descriptor by the same user returns ErrDuplicate.
	Add(ctx context.Context, f *Favorite) error
	RemoveSaved(ctx context.Context, userID, tripID uuid.UUID) error
	RemovePopular(ctx context.Context, userID uuid.UUID, title, destination string) error
	IsSaved(ctx context.Context, userID, tripID uuid.UUID) (bool, error)
	IsPopular(ctx context.Context, userID uuid.UUID, title, destination string) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) (Lists, error)
}

type pgStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

// uniqueViolation is the Postgres error code for a unique index breach.
const uniqueViolation = "23505"

func (s *pgStore) Add(ctx context.Context, f *Favorite) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO favorite_trips (
			id, user_id, trip_id, is_popular,
			popular_title, popular_destination, popular_payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, COALESCE($7, '{}'::jsonb), $8)`,
		f.ID, f.UserID, f.TripID, f.IsPopular,
		f.PopularTitle, f.PopularDestination, []byte(f.PopularPayload), f.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("favorite: insert: %w", err)
	}
	return nil
}

func (s *pgStore) RemoveSaved(ctx context.Context, userID, tripID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM favorite_trips WHERE user_id = $1 AND trip_id = $2`, userID, tripID)
	if err != nil {
		return fmt.Errorf("favorite: remove saved: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) RemovePopular(ctx context.Context, userID uuid.UUID, title, destination string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM favorite_trips
		WHERE user_id = $1 AND trip_id IS NULL
		  AND popular_title = $2 AND popular_destination = $3`,
		userID, title, destination)
	if err != nil {
		return fmt.Errorf("favorite: remove popular: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) IsSaved(ctx context.Context, userID, tripID uuid.UUID) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM favorite_trips WHERE user_id = $1 AND trip_id = $2)`,
		userID, tripID)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("favorite: is saved: %w", err)
	}
	return exists, nil
}

func (s *pgStore) IsPopular(ctx context.Context, userID uuid.UUID, title, destination string) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM favorite_trips
			WHERE user_id = $1 AND trip_id IS NULL
			  AND popular_title = $2 AND popular_destination = $3
		)`, userID, title, destination)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("favorite: is popular: %w", err)
	}
	return exists, nil
}

func (s *pgStore) ListByUser(ctx context.Context, userID uuid.UUID) (Lists, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, trip_id, is_popular,
		       popular_title, popular_destination, popular_payload, created_at
		FROM favorite_trips
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return Lists{}, fmt.Errorf("favorite: list: %w", err)
	}
	defer rows.Close()

	var lists Lists
	for rows.Next() {
		var (
			f       Favorite
			payload []byte
		)
		err := rows.Scan(
			&f.ID, &f.UserID, &f.TripID, &f.IsPopular,
			&f.PopularTitle, &f.PopularDestination, &payload, &f.CreatedAt,
		)
		if err != nil {
			return Lists{}, fmt.Errorf("favorite: scan: %w", err)
		}
		f.PopularPayload = payload
		if f.IsPopular {
			lists.PopularTrips = append(lists.PopularTrips, f)
		} else {
			lists.SavedTrips = append(lists.SavedTrips, f)
		}
	}
	return lists, rows.Err()
}
