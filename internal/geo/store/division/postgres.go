package division

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

const uniqueViolation = "23505"

// foreignKeyViolation is the Postgres SQLSTATE for a dangling reference. The
// domain never checks references, so the database is the first place a
// dangling country_id can fail.
const foreignKeyViolation = "23503"

// Postgres persists every division kind in the divisions table, with the
// kind stored in a discriminator column.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, d *models.Division) error {
	if d.IsTransient() {
		return sentinel.ErrInvalidState
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO divisions (id, country_id, kind, iso, name, native, population)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		int32(d.ID), int32(d.CountryID), string(d.Kind), d.ISO, d.Name, d.Native, d.Population,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolation:
				return sentinel.ErrConflict
			case foreignKeyViolation:
				return sentinel.ErrInvalidState
			}
		}
		return fmt.Errorf("insert division: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, divisionID id.DivisionID) (*models.Division, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, country_id, kind, iso, name, native, population
		FROM divisions WHERE id = $1`, int32(divisionID))
	return scanDivision(row)
}

func (s *Postgres) FindByCountryAndISO(ctx context.Context, countryID id.CountryID, iso string) (*models.Division, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, country_id, kind, iso, name, native, population
		FROM divisions WHERE country_id = $1 AND upper(iso) = upper($2)`,
		int32(countryID), iso)
	return scanDivision(row)
}

func (s *Postgres) ListByCountry(ctx context.Context, countryID id.CountryID) ([]*models.Division, error) {
	return s.list(ctx, `
		SELECT id, country_id, kind, iso, name, native, population
		FROM divisions WHERE country_id = $1 ORDER BY id`, int32(countryID))
}

func (s *Postgres) ListByKind(ctx context.Context, kind models.DivisionKind) ([]*models.Division, error) {
	return s.list(ctx, `
		SELECT id, country_id, kind, iso, name, native, population
		FROM divisions WHERE kind = $1 ORDER BY id`, string(kind))
}

func (s *Postgres) List(ctx context.Context) ([]*models.Division, error) {
	return s.list(ctx, `
		SELECT id, country_id, kind, iso, name, native, population
		FROM divisions ORDER BY id`)
}

func (s *Postgres) list(ctx context.Context, query string, args ...any) ([]*models.Division, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	defer rows.Close()

	var out []*models.Division
	for rows.Next() {
		d, err := scanDivision(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list divisions: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDivision(row rowScanner) (*models.Division, error) {
	var (
		d    models.Division
		kind string
	)
	err := row.Scan(&d.ID, &d.CountryID, &kind, &d.ISO, &d.Name, &d.Native, &d.Population)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan division: %w", err)
	}
	d.Kind = models.DivisionKind(kind)
	return &d, nil
}
