package store

import (
	"database/sql"
	"errors"
	"fmt"

	"cafeapi/model"
)

// SQLStore persists cafes with raw SQL statements over database/sql. It is
// deliberately sqlite-specific; the GORM backend is the engine-agnostic one.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

const createCafesTable = `
CREATE TABLE IF NOT EXISTS cafes (
    id INTEGER PRIMARY KEY,
    name VARCHAR(250) NOT NULL,
    map_url VARCHAR(500) NOT NULL,
    img_url VARCHAR(500) NOT NULL,
    location VARCHAR(250) NOT NULL,
    has_sockets BOOLEAN NOT NULL,
    has_toilet BOOLEAN NOT NULL,
    has_wifi BOOLEAN NOT NULL,
    can_take_calls BOOLEAN NOT NULL,
    seats VARCHAR(250),
    coffee_price VARCHAR(250)
)`

// Migrate creates the cafes table if it does not exist yet.
func (s *SQLStore) Migrate() error {
	if _, err := s.db.Exec(createCafesTable); err != nil {
		return fmt.Errorf("failed to create cafes table: %w", err)
	}
	return nil
}

func (s *SQLStore) Add(cafe *model.Cafe) error {
	res, err := s.db.Exec(
		`INSERT INTO cafes (name, map_url, img_url, location, has_sockets, has_toilet, has_wifi, can_take_calls, seats, coffee_price)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		cafe.Name, cafe.MapURL, cafe.ImgURL, cafe.Location,
		cafe.HasSockets, cafe.HasToilet, cafe.HasWifi, cafe.CanTakeCalls,
		cafe.Seats, cafe.CoffeePrice,
	)
	if err != nil {
		return fmt.Errorf("failed to insert cafe: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read assigned id: %w", err)
	}
	cafe.ID = uint(id)
	return nil
}

func (s *SQLStore) ListAll() ([]model.Cafe, error) {
	rows, err := s.db.Query(
		`SELECT id, name, map_url, img_url, location, has_sockets, has_toilet, has_wifi, can_take_calls, seats, coffee_price
		 FROM cafes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cafes: %w", err)
	}
	defer rows.Close()

	cafes := make([]model.Cafe, 0)
	for rows.Next() {
		var cafe model.Cafe
		if err := scanCafe(rows.Scan, &cafe); err != nil {
			return nil, fmt.Errorf("failed to scan cafe row: %w", err)
		}
		cafes = append(cafes, cafe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cafe rows: %w", err)
	}
	return cafes, nil
}

func (s *SQLStore) FindByName(name string) (*model.Cafe, error) {
	row := s.db.QueryRow(
		`SELECT id, name, map_url, img_url, location, has_sockets, has_toilet, has_wifi, can_take_calls, seats, coffee_price
		 FROM cafes WHERE name = ? ORDER BY id LIMIT 1`, name)

	var cafe model.Cafe
	if err := scanCafe(row.Scan, &cafe); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch cafe: %w", err)
	}
	return &cafe, nil
}

func scanCafe(scan func(dest ...any) error, cafe *model.Cafe) error {
	return scan(
		&cafe.ID, &cafe.Name, &cafe.MapURL, &cafe.ImgURL, &cafe.Location,
		&cafe.HasSockets, &cafe.HasToilet, &cafe.HasWifi, &cafe.CanTakeCalls,
		&cafe.Seats, &cafe.CoffeePrice,
	)
}
