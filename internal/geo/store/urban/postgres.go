package urban

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

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Postgres persists every urban kind in the urbans table, with the kind
// stored in a discriminator column.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Create(ctx context.Context, u *models.Urban) error {
	if u.IsTransient() {
		return sentinel.ErrInvalidState
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO urbans (id, division_id, kind, iso, name, native)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		int32(u.ID), int32(u.DivisionID), string(u.Kind), u.ISO, u.Name, u.Native,
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
		return fmt.Errorf("insert urban: %w", err)
	}
	return nil
}

func (s *Postgres) FindByID(ctx context.Context, urbanID id.UrbanID) (*models.Urban, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, division_id, kind, iso, name, native
		FROM urbans WHERE id = $1`, int32(urbanID))
	return scanUrban(row)
}

func (s *Postgres) ListByDivision(ctx context.Context, divisionID id.DivisionID) ([]*models.Urban, error) {
	return s.list(ctx, `
		SELECT id, division_id, kind, iso, name, native
		FROM urbans WHERE division_id = $1 ORDER BY id`, int32(divisionID))
}

func (s *Postgres) ListByKind(ctx context.Context, kind models.UrbanKind) ([]*models.Urban, error) {
	return s.list(ctx, `
		SELECT id, division_id, kind, iso, name, native
		FROM urbans WHERE kind = $1 ORDER BY id`, string(kind))
}

func (s *Postgres) List(ctx context.Context) ([]*models.Urban, error) {
	return s.list(ctx, `
		SELECT id, division_id, kind, iso, name, native
		FROM urbans ORDER BY id`)
}

func (s *Postgres) list(ctx context.Context, query string, args ...any) ([]*models.Urban, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list urbans: %w", err)
	}
	defer rows.Close()

	var out []*models.Urban
	for rows.Next() {
		u, err := scanUrban(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list urbans: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUrban(row rowScanner) (*models.Urban, error) {
	var (
		u    models.Urban
		kind string
	)
	err := row.Scan(&u.ID, &u.DivisionID, &kind, &u.ISO, &u.Name, &u.Native)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("scan urban: %w", err)
	}
	u.Kind = models.UrbanKind(kind)
	return &u, nil
}
