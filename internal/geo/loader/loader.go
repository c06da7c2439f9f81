// Package loader moves the seed datasets into a target store. Cross-dataset
// referential integrity and per-family identifier uniqueness are checked
// here, before any row is written: constructing a dangling record is legal,
// loading one is not.
package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	geometrics "georef/internal/geo/metrics"
	"georef/internal/geo/models"
	"georef/internal/geo/seed"
	id "georef/pkg/domain"
	dErrors "georef/pkg/domain-errors"
	"georef/pkg/platform/sentinel"
)

// insertConcurrency bounds parallel inserts within one family. Families load
// sequentially regardless, countries before divisions before urbans, so the
// target's foreign keys always resolve.
const insertConcurrency = 8

// CountryStore is the country persistence surface the loader needs.
type CountryStore interface {
	Create(ctx context.Context, c *models.Country) error
}

// DivisionStore is the division persistence surface the loader needs.
type DivisionStore interface {
	Create(ctx context.Context, d *models.Division) error
}

// UrbanStore is the urban persistence surface the loader needs.
type UrbanStore interface {
	Create(ctx context.Context, u *models.Urban) error
}

// Datasets bundles the three families for one load run.
type Datasets struct {
	Countries []*models.Country
	Divisions []*models.Division
	Urbans    []*models.Urban
}

// SeedDatasets returns the shipped reference data ready for loading.
func SeedDatasets() Datasets {
	return Datasets{
		Countries: seed.Countries(),
		Divisions: seed.Divisions(),
		Urbans:    seed.Urbans(),
	}
}

// Summary describes a completed load run.
type Summary struct {
	RunID     uuid.UUID
	Countries int
	Divisions int
	Urbans    int
	Duration  time.Duration
}

// Loader writes datasets into a target store.
type Loader struct {
	countries CountryStore
	divisions DivisionStore
	urbans    UrbanStore
	logger    *slog.Logger
	metrics   *geometrics.Metrics
}

// Option configures optional loader dependencies.
type Option func(*Loader)

func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

func WithMetrics(m *geometrics.Metrics) Option {
	return func(l *Loader) { l.metrics = m }
}

// New constructs a loader over the three family stores.
func New(countries CountryStore, divisions DivisionStore, urbans UrbanStore, opts ...Option) *Loader {
	l := &Loader{
		countries: countries,
		divisions: divisions,
		urbans:    urbans,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Verify checks the datasets hold per-family identifier uniqueness and that
// every reference resolves within the bundle. Returns CodeConflict for
// duplicate identifiers and CodeValidation for dangling references.
func Verify(ds Datasets) error {
	countryIDs := make(map[id.CountryID]bool, len(ds.Countries))
	for _, c := range ds.Countries {
		if c.IsTransient() {
			return dErrors.Newf(dErrors.CodeValidation, "country %s has no identifier", c.ISO)
		}
		if countryIDs[c.ID] {
			return dErrors.Newf(dErrors.CodeConflict, "duplicate country id %d", c.ID)
		}
		countryIDs[c.ID] = true
	}

	divisionIDs := make(map[id.DivisionID]bool, len(ds.Divisions))
	for _, d := range ds.Divisions {
		if d.IsTransient() {
			return dErrors.Newf(dErrors.CodeValidation, "division %s has no identifier", d.ISO)
		}
		if divisionIDs[d.ID] {
			return dErrors.Newf(dErrors.CodeConflict, "duplicate division id %d", d.ID)
		}
		divisionIDs[d.ID] = true
		if !countryIDs[d.CountryID] {
			return dErrors.Newf(dErrors.CodeValidation, "division %s references unknown country %d", d.ISO, d.CountryID)
		}
	}

	urbanIDs := make(map[id.UrbanID]bool, len(ds.Urbans))
	for _, u := range ds.Urbans {
		if u.IsTransient() {
			return dErrors.Newf(dErrors.CodeValidation, "urban %s has no identifier", u.ISO)
		}
		if urbanIDs[u.ID] {
			return dErrors.Newf(dErrors.CodeConflict, "duplicate urban id %d", u.ID)
		}
		urbanIDs[u.ID] = true
		if !divisionIDs[u.DivisionID] {
			return dErrors.Newf(dErrors.CodeValidation, "urban %s references unknown division %d", u.ISO, u.DivisionID)
		}
	}
	return nil
}

// Load verifies the datasets and writes them family by family. Rows within a
// family are inserted concurrently; the first failure cancels the run.
func (l *Loader) Load(ctx context.Context, ds Datasets) (Summary, error) {
	start := time.Now()
	runID := uuid.New()
	log := l.logger.With("run_id", runID.String())

	if err := Verify(ds); err != nil {
		l.metrics.IncrementFailures()
		return Summary{}, fmt.Errorf("verify datasets: %w", err)
	}

	log.Info("loading seed datasets",
		"countries", len(ds.Countries),
		"divisions", len(ds.Divisions),
		"urbans", len(ds.Urbans),
	)

	if err := loadFamily(ctx, ds.Countries, l.countries.Create); err != nil {
		l.metrics.IncrementFailures()
		return Summary{}, translateLoadErr("countries", err)
	}
	l.metrics.IncrementLoaded("country", len(ds.Countries))

	if err := loadFamily(ctx, ds.Divisions, l.divisions.Create); err != nil {
		l.metrics.IncrementFailures()
		return Summary{}, translateLoadErr("divisions", err)
	}
	l.metrics.IncrementLoaded("division", len(ds.Divisions))

	if err := loadFamily(ctx, ds.Urbans, l.urbans.Create); err != nil {
		l.metrics.IncrementFailures()
		return Summary{}, translateLoadErr("urbans", err)
	}
	l.metrics.IncrementLoaded("urban", len(ds.Urbans))

	summary := Summary{
		RunID:     runID,
		Countries: len(ds.Countries),
		Divisions: len(ds.Divisions),
		Urbans:    len(ds.Urbans),
		Duration:  time.Since(start),
	}
	l.metrics.ObserveLoad(start)
	log.Info("seed load complete", "duration", summary.Duration)
	return summary, nil
}

func loadFamily[T any](ctx context.Context, rows []*T, create func(context.Context, *T) error) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(insertConcurrency)
	for _, row := range rows {
		g.Go(func() error {
			return create(ctx, row)
		})
	}
	return g.Wait()
}

func translateLoadErr(family string, err error) error {
	if errors.Is(err, sentinel.ErrConflict) {
		return dErrors.Wrap(err, dErrors.CodeConflict, fmt.Sprintf("%s already seeded", family))
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("load %s", family))
}
