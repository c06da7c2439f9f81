package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "georef/pkg/domain"
)

func newProvince(t *testing.T, divisionID id.DivisionID) *Division {
	t.Helper()
	d, err := NewDivision(DivisionProvince, divisionID, 764, "BKK", "Bangkok", "กรุงเทพมหานคร", 5527000)
	require.NoError(t, err)
	return d
}

// TestEqual_SameVariant verifies identity equality: two records of the same
// variant are equal iff both are assigned and carry the same identifier.
func TestEqual_SameVariant(t *testing.T) {
	t.Run("equal ids compare equal", func(t *testing.T) {
		a := newProvince(t, 1)
		b := newProvince(t, 1)
		assert.True(t, Equal(a, b))
		assert.True(t, Equal(b, a))
	})

	t.Run("different ids compare unequal", func(t *testing.T) {
		a := newProvince(t, 1)
		b := newProvince(t, 2)
		assert.False(t, Equal(a, b))
	})

	t.Run("field contents are irrelevant", func(t *testing.T) {
		a := newProvince(t, 1)
		b, err := NewDivision(DivisionProvince, 1, 392, "13", "Tokyo", "東京都", 14040000)
		require.NoError(t, err)
		assert.True(t, Equal(a, b))
	})
}

// TestEqual_CrossVariant verifies that a shared identifier across variants is
// never treated as the same real-world entity.
func TestEqual_CrossVariant(t *testing.T) {
	province := newProvince(t, 7)
	state, err := NewDivision(DivisionState, 7, 276, "BY", "Bavaria", "Bayern", 13140000)
	require.NoError(t, err)

	assert.False(t, Equal(province, state))

	city, err := NewUrban(UrbanCity, 7, 1, "BKK", "Bangkok", "กรุงเทพมหานคร")
	require.NoError(t, err)
	assert.False(t, Equal(province, city))
}

// TestEqual_Transient verifies that a zero identifier means "no identity yet":
// transient records are unequal even to records sharing their zero id.
func TestEqual_Transient(t *testing.T) {
	a := newProvince(t, 0)
	b := newProvince(t, 0)

	assert.True(t, a.IsTransient())
	assert.False(t, Equal(a, b))
	assert.False(t, Equal(a, a), "identity comparison is only meaningful once assigned")

	assigned := newProvince(t, 3)
	assert.False(t, Equal(a, assigned))
	assert.False(t, Equal(assigned, a))
}

func TestEqual_Nil(t *testing.T) {
	a := newProvince(t, 1)
	assert.False(t, Equal(a, nil))
	assert.False(t, Equal(nil, a))
	assert.False(t, Equal(nil, nil))
}

// TestHashKey verifies the hash contract: assigned records hash by
// (variant, id) consistently with Equal; transient records keep distinct
// per-instance hashes.
func TestHashKey(t *testing.T) {
	t.Run("equal records share a hash", func(t *testing.T) {
		a := newProvince(t, 1)
		b := newProvince(t, 1)
		assert.Equal(t, a.HashKey(), b.HashKey())
	})

	t.Run("variants hash apart", func(t *testing.T) {
		province := newProvince(t, 7)
		state, err := NewDivision(DivisionState, 7, 276, "BY", "Bavaria", "Bayern", 13140000)
		require.NoError(t, err)
		assert.NotEqual(t, province.HashKey(), state.HashKey())
	})

	t.Run("transient records hash apart", func(t *testing.T) {
		a := newProvince(t, 0)
		b := newProvince(t, 0)
		assert.NotEqual(t, a.HashKey(), b.HashKey())
	})

	t.Run("a transient record keeps a stable hash", func(t *testing.T) {
		a := newProvince(t, 0)
		assert.Equal(t, a.HashKey(), a.HashKey())
	})
}
