package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"georef/internal/geo/models"
	"georef/internal/geo/store/country"
	"georef/internal/geo/store/division"
	"georef/internal/geo/store/urban"
	dErrors "georef/pkg/domain-errors"
)

func newLoader() (*Loader, *country.InMemory, *division.InMemory, *urban.InMemory) {
	countries := country.NewInMemory()
	divisions := division.NewInMemory()
	urbans := urban.NewInMemory()
	return New(countries, divisions, urbans), countries, divisions, urbans
}

// TestLoad_SeedDatasets verifies a full load of the shipped data: every
// entity lands in its store and the cross-family references resolve.
func TestLoad_SeedDatasets(t *testing.T) {
	ctx := context.Background()
	l, countries, divisions, urbans := newLoader()

	summary, err := l.Load(ctx, SeedDatasets())
	require.NoError(t, err)
	assert.Equal(t, 10, summary.Countries)
	assert.Equal(t, 12, summary.Divisions)
	assert.Equal(t, 12, summary.Urbans)
	assert.NotZero(t, summary.RunID)

	thailand, err := countries.FindByISO(ctx, "TH")
	require.NoError(t, err)

	bangkok, err := divisions.FindByCountryAndISO(ctx, thailand.ID, "BKK")
	require.NoError(t, err)
	assert.Equal(t, models.DivisionProvince, bangkok.Kind)

	wards, err := urbans.ListByKind(ctx, models.UrbanWard)
	require.NoError(t, err)
	require.Len(t, wards, 1)
	assert.Equal(t, bangkok.ID, wards[0].DivisionID)
}

// TestLoad_Reload verifies a second run against the same store surfaces the
// uniqueness conflict as CodeConflict rather than a raw store error.
func TestLoad_Reload(t *testing.T) {
	ctx := context.Background()
	l, _, _, _ := newLoader()

	_, err := l.Load(ctx, SeedDatasets())
	require.NoError(t, err)

	_, err = l.Load(ctx, SeedDatasets())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

// TestVerify pins the loader-side integrity checks the domain layer
// deliberately does not perform.
func TestVerify(t *testing.T) {
	base := SeedDatasets()

	t.Run("accepts the shipped datasets", func(t *testing.T) {
		require.NoError(t, Verify(base))
	})

	t.Run("rejects duplicate country ids", func(t *testing.T) {
		ds := base
		ds.Countries = append([]*models.Country{ds.Countries[0]}, ds.Countries...)
		err := Verify(ds)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
	})

	t.Run("rejects dangling division reference", func(t *testing.T) {
		dangling, err := models.NewDivision(models.DivisionProvince, 999, 424242, "XX", "Nowhere", "Nowhere", 0)
		require.NoError(t, err)

		ds := base
		ds.Divisions = append(append([]*models.Division{}, ds.Divisions...), dangling)
		verr := Verify(ds)
		require.Error(t, verr)
		assert.True(t, dErrors.HasCode(verr, dErrors.CodeValidation))
	})

	t.Run("rejects dangling urban reference", func(t *testing.T) {
		dangling, err := models.NewUrban(models.UrbanCity, 999, 424242, "XX", "Nowhere", "Nowhere")
		require.NoError(t, err)

		ds := base
		ds.Urbans = append(append([]*models.Urban{}, ds.Urbans...), dangling)
		verr := Verify(ds)
		require.Error(t, verr)
		assert.True(t, dErrors.HasCode(verr, dErrors.CodeValidation))
	})

	t.Run("rejects transient entries", func(t *testing.T) {
		transient, err := models.NewCountry(0, "ZZ", 1, "Nowhere", "Nowhere", 0)
		require.NoError(t, err)

		ds := base
		ds.Countries = append(append([]*models.Country{}, ds.Countries...), transient)
		verr := Verify(ds)
		require.Error(t, verr)
		assert.True(t, dErrors.HasCode(verr, dErrors.CodeValidation))
	})
}
