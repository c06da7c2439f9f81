package country

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"georef/internal/geo/models"
	id "georef/pkg/domain"
	"georef/pkg/platform/sentinel"
)

// uniqueViolation is the Postgres SQLSTATE for unique constraint failures.
const uniqueViolation = "23505"

// Postgres persists countries in the countries table.
//
// This package is the mapping boundary: rows scanned from the database are
// rebuilt as records directly, trusting the column constraints that mirror
// the constructor validation.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, c *models.Country) error {
	if c.IsTransient() {
		return sentinel.ErrInvalidState
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO countries (id, iso, calling_code, name, native, population)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		int32(c.ID), c.ISO, c.CallingCode, c.Name, c.Native, c.Population,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert country: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, countryID id.CountryID) (*models.Country, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, iso, calling_code, name, native, population
		FROM countries WHERE id = $1`, int32(countryID))
	return scanCountry(row)
}

func (s *Postgres) FindByISO(ctx context.Context, iso string) (*models.Country, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, iso, calling_code, name, native, population
		FROM countries WHERE iso = upper($1)`, iso)
	return scanCountry(row)
}

func (s *Postgres) List(ctx context.Context) ([]*models.Country, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, iso, calling_code, name, native, population
		FROM countries ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()

	var out []*models.Country
	for rows.Next() {
		c, err := scanCountry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCountry(row rowScanner) (*models.Country, error) {
	var c models.Country
	err := row.Scan(&c.ID, &c.ISO, &c.CallingCode, &c.Name, &c.Native, &c.Population)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan country: %w", err)
	}
	return &c, nil
}
