package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restaurant-finder-service/internal/domain"
	"restaurant-finder-service/internal/platform/obs"
	"restaurant-finder-service/internal/ports"
)

const restaurantColumns = `
	id, name, address, cuisine, rating, price_range,
	opening_hours, closing_hours, operating_hours,
	latitude, longitude, phone, description,
	vegetarian_options, signature_dishes, website, special_features
`

type rowScanner interface {
	Scan(dest ...any) error
}

// Postgres-backed implementation of the RestaurantRepository port.
type SQLRestaurantRepository struct{ DB *sql.DB }

func NewSQLRestaurantRepository(db *sql.DB) *SQLRestaurantRepository {
	return &SQLRestaurantRepository{DB: db}
}

// Return all restaurants ordered by id.
func (s *SQLRestaurantRepository) ListRestaurants(ctx context.Context) (_ []domain.Restaurant, err error) {
	defer obs.Time(ctx, "restaurants.sql.List")(&err)

	if s.DB == nil {
		return nil, errors.New("sql restaurant repository: DB is nil")
	}

	rows, err := s.DB.QueryContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("list restaurants: query restaurants table: %w", err)
	}
	defer rows.Close()

	restaurants := make([]domain.Restaurant, 0, 64)
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, fmt.Errorf("list restaurants: scan row: %w", err)
		}
		restaurants = append(restaurants, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list restaurants: row iteration: %w", err)
	}

	return restaurants, nil
}

func (s *SQLRestaurantRepository) GetRestaurant(ctx context.Context, id string) (_ *domain.Restaurant, err error) {
	defer obs.Time(ctx, "restaurants.sql.Get")(&err)

	if s.DB == nil {
		return nil, errors.New("sql restaurant repository: DB is nil")
	}

	row := s.DB.QueryRowContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1;`, id)
	r, err := scanRestaurant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get restaurant %q: %w", id, ports.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant %q: scan row: %w", id, err)
	}

	return &r, nil
}

func scanRestaurant(row rowScanner) (domain.Restaurant, error) {
	var r domain.Restaurant
	err := row.Scan(
		&r.ID, &r.Name, &r.Address, &r.Cuisine, &r.Rating, &r.PriceRange,
		&r.OpeningHours, &r.ClosingHours, &r.OperatingHours,
		&r.Latitude, &r.Longitude, &r.Phone, &r.Description,
		&r.VegetarianOptions, &r.SignatureDishes, &r.Website, &r.SpecialFeatures,
	)
	return r, err
}
