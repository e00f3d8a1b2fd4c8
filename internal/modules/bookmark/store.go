// README: Bookmark store backed by PostgreSQL; unique constraint surfaces as ErrDuplicate.
package bookmark

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store defines bookmark persistence; the service depends on this interface.
type Store interface {
	// Add inserts a bookmark. Bookmarking the same (type, name, location)
	// twice for one user returns ErrDuplicate.
	Add(ctx context.Context, b *Bookmark) error
	Remove(ctx context.Context, userID uuid.UUID, itemType ItemType, name, location string) error
	Exists(ctx context.Context, userID uuid.UUID, itemType ItemType, name, location string) (bool, error)
	ListByUser(ctx context.Context, userID uuid.UUID) (Lists, error)
}

type pgStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

const uniqueViolation = "23505"

func (s *pgStore) Add(ctx context.Context, b *Bookmark) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookmarks (
			id, user_id, item_type, item_name, item_location,
			item_city, item_country, payload, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, COALESCE($8, '{}'::jsonb), $9)`,
		b.ID, b.UserID, string(b.ItemType), b.Name, b.Location,
		b.City, b.Country, []byte(b.Payload), b.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("bookmark: insert: %w", err)
	}
	return nil
}

func (s *pgStore) Remove(ctx context.Context, userID uuid.UUID, itemType ItemType, name, location string) error {
	tag, err := s.db.Exec(ctx, `
		DELETE FROM bookmarks
		WHERE user_id = $1 AND item_type = $2 AND item_name = $3 AND item_location = $4`,
		userID, string(itemType), name, location)
	if err != nil {
		return fmt.Errorf("bookmark: remove: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) Exists(ctx context.Context, userID uuid.UUID, itemType ItemType, name, location string) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookmarks
			WHERE user_id = $1 AND item_type = $2 AND item_name = $3 AND item_location = $4
		)`, userID, string(itemType), name, location)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("bookmark: exists: %w", err)
	}
	return exists, nil
}

func (s *pgStore) ListByUser(ctx context.Context, userID uuid.UUID) (Lists, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, item_type, item_name, item_location,
		       item_city, item_country, payload, created_at
		FROM bookmarks
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return Lists{}, fmt.Errorf("bookmark: list: %w", err)
	}
	defer rows.Close()

	var lists Lists
	for rows.Next() {
		var (
			b       Bookmark
			payload []byte
		)
		err := rows.Scan(
			&b.ID, &b.UserID, &b.ItemType, &b.Name, &b.Location,
			&b.City, &b.Country, &payload, &b.CreatedAt,
		)
		if err != nil {
			return Lists{}, fmt.Errorf("bookmark: scan: %w", err)
		}
		b.Payload = payload
		switch b.ItemType {
		case ItemHotel:
			lists.Hotels = append(lists.Hotels, b)
		case ItemRestaurant:
			lists.Restaurants = append(lists.Restaurants, b)
		}
	}
	return lists, rows.Err()
}
