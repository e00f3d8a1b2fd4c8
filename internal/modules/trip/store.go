// README: Trip store backed by PostgreSQL; itinerary writes are transactional.
package trip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"nomad/internal/ai"
)

// Store defines the persistence operations the trip service depends on.
// The service holds this interface so tests can substitute a fake.
type Store interface {
	// FindDuplicate reports whether the user already has a trip with the
	// same destination and dates and a budget within ±10% of req's.
	FindDuplicate(ctx context.Context, userID uuid.UUID, req Request) (bool, error)

	// CreateWithDays inserts the trip row and all of its day rows in one
	// transaction so a failure partway leaves no partial itinerary.
	CreateWithDays(ctx context.Context, t *Trip) error

	Get(ctx context.Context, id uuid.UUID) (*Trip, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Trip, error)
	Update(ctx context.Context, t *Trip) error
	Delete(ctx context.Context, id, userID uuid.UUID) error
	Stats(ctx context.Context, userID uuid.UUID) (Stats, error)
}

type pgStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) Store {
	return &pgStore{db: db}
}

func (s *pgStore) FindDuplicate(ctx context.Context, userID uuid.UUID, req Request) (bool, error) {
	row := s.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM trips
			WHERE user_id = $1
			  AND lower(destination_city) = lower($2)
			  AND lower(destination_country) = lower($3)
			  AND (($4 = '' AND destination_state IS NULL) OR lower(destination_state) = lower($4))
			  AND start_date = $5
			  AND end_date = $6
			  AND budget BETWEEN $7 AND $8
		)`,
		userID, req.City, req.Country, req.State,
		req.StartDate, req.EndDate,
		req.Budget.Amount*0.9, req.Budget.Amount*1.1,
	)
	var exists bool
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("trip: find duplicate: %w", err)
	}
	return exists, nil
}

func (s *pgStore) CreateWithDays(ctx context.Context, t *Trip) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("trip: begin: %w", err)
	}
	defer tx.Rollback(ctx)

	var state *string
	if t.State != "" {
		state = &t.State
	}
	_, err = tx.Exec(ctx, `
		INSERT INTO trips (
			id, user_id, destination_city, destination_state, destination_country,
			start_date, end_date, budget, currency, travelers,
			trip_types, food_preference, overview, total_estimated_cost,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13, $14,
			$15, $15
		)`,
		t.ID, t.UserID, t.City, state, t.Country,
		t.StartDate, t.EndDate, t.Budget.Amount, t.Budget.Currency, t.Travelers,
		t.TripTypes, t.FoodPreference, t.Overview, t.TotalEstimatedCost,
		t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("trip: insert: %w", err)
	}

	for _, d := range t.Days {
		activities, err := json.Marshal(d.Activities)
		if err != nil {
			return fmt.Errorf("trip: marshal activities: %w", err)
		}
		meals, err := json.Marshal(d.Meals)
		if err != nil {
			return fmt.Errorf("trip: marshal meals: %w", err)
		}
		accommodation, err := json.Marshal(d.Accommodation)
		if err != nil {
			return fmt.Errorf("trip: marshal accommodation: %w", err)
		}
		dayDate, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			dayDate = t.StartDate.AddDate(0, 0, d.Number-1)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO trip_days (
				id, trip_id, day_number, day_date, title, summary,
				activities, meals, accommodation, total_cost
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			uuid.New(), t.ID, d.Number, dayDate, d.Title, d.Summary,
			activities, meals, accommodation, DayCost(d),
		)
		if err != nil {
			return fmt.Errorf("trip: insert day %d: %w", d.Number, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("trip: commit: %w", err)
	}
	return nil
}

func (s *pgStore) Get(ctx context.Context, id uuid.UUID) (*Trip, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, destination_city, destination_state, destination_country,
		       start_date, end_date, budget, currency, travelers,
		       trip_types, food_preference, overview, total_estimated_cost,
		       created_at, updated_at
		FROM trips
		WHERE id = $1`, id,
	)
	t, err := scanTrip(row)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT day_number, day_date, title, summary, activities, meals, accommodation
		FROM trip_days
		WHERE trip_id = $1
		ORDER BY day_number`, id,
	)
	if err != nil {
		return nil, fmt.Errorf("trip: query days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			d                           ai.Day
			dayDate                     time.Time
			activities, meals, accommod []byte
		)
		if err := rows.Scan(&d.Number, &dayDate, &d.Title, &d.Summary, &activities, &meals, &accommod); err != nil {
			return nil, fmt.Errorf("trip: scan day: %w", err)
		}
		d.Date = dayDate.Format("2006-01-02")
		if err := json.Unmarshal(activities, &d.Activities); err != nil {
			return nil, fmt.Errorf("trip: decode activities: %w", err)
		}
		if err := json.Unmarshal(meals, &d.Meals); err != nil {
			return nil, fmt.Errorf("trip: decode meals: %w", err)
		}
		if err := json.Unmarshal(accommod, &d.Accommodation); err != nil {
			return nil, fmt.Errorf("trip: decode accommodation: %w", err)
		}
		t.Days = append(t.Days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("trip: iterate days: %w", err)
	}
	return t, nil
}

func (s *pgStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]Trip, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, destination_city, destination_state, destination_country,
		       start_date, end_date, budget, currency, travelers,
		       trip_types, food_preference, overview, total_estimated_cost,
		       created_at, updated_at
		FROM trips
		WHERE user_id = $1
		ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("trip: list: %w", err)
	}
	defer rows.Close()

	var trips []Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		trips = append(trips, *t)
	}
	return trips, rows.Err()
}

func (s *pgStore) Update(ctx context.Context, t *Trip) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE trips
		SET budget = $1, currency = $2, travelers = $3,
		    trip_types = $4, food_preference = $5, updated_at = now()
		WHERE id = $6 AND user_id = $7`,
		t.Budget.Amount, t.Budget.Currency, t.Travelers,
		t.TripTypes, t.FoodPreference,
		t.ID, t.UserID,
	)
	if err != nil {
		return fmt.Errorf("trip: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM trips WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("trip: delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *pgStore) Stats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	row := s.db.QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(budget), 0),
		       COUNT(DISTINCT destination_country)
		FROM trips
		WHERE user_id = $1`, userID,
	)
	var st Stats
	if err := row.Scan(&st.TotalTrips, &st.TotalBudget, &st.CountriesVisited); err != nil {
		return Stats{}, fmt.Errorf("trip: stats: %w", err)
	}
	return st, nil
}

func scanTrip(row pgx.Row) (*Trip, error) {
	var (
		t     Trip
		state *string
	)
	err := row.Scan(
		&t.ID, &t.UserID, &t.City, &state, &t.Country,
		&t.StartDate, &t.EndDate, &t.Budget.Amount, &t.Budget.Currency, &t.Travelers,
		&t.TripTypes, &t.FoodPreference, &t.Overview, &t.TotalEstimatedCost,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("trip: scan: %w", err)
	}
	if state != nil {
		t.State = *state
	}
	return &t, nil
}
