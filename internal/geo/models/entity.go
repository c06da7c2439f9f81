package models

import (
	"strconv"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Kind is the stored discriminator identifying which concrete variant of the
// taxonomy a record represents. It is persisted alongside the row by stores
// that keep a whole family in one table.
type Kind string

// KindCountry is the only country variant; the country family is closed.
const KindCountry Kind = "country"

// Key is the identity tuple shared by every entity: concrete variant plus
// 32-bit identifier. Identifiers are unique within each family, so Kind plus
// ID is globally unambiguous.
type Key struct {
	Kind Kind
	ID   int32
}

// Transient reports whether the key's identifier is still unassigned.
func (k Key) Transient() bool { return k.ID == 0 }

// Entity is implemented by every concrete record in the taxonomy.
//
// Invariants:
//   - Equality is value-based on (variant, identifier), never on field contents
//   - A zero identifier means "no identity yet", not "identity zero"
//   - Records are immutable by convention after construction
type Entity interface {
	// EntityKey returns the (variant, identifier) identity tuple.
	EntityKey() Key
	// IsTransient reports whether the entity has been assigned a durable
	// identifier. Identifier assignment is the caller's or the store's job;
	// this package never assigns one.
	IsTransient() bool
	// HashKey returns a hash consistent with Equal for assigned entities.
	// Transient entities hash by a per-instance token so they remain
	// distinguishable in hash-keyed containers despite sharing a zero id.
	HashKey() uint64
}

// Equal reports whether a and b identify the same real-world entity: same
// concrete variant, equal assigned identifiers. The variant check is a plain
// tag comparison, so a Province and a State sharing an identifier compare
// unequal. Transient entities never compare equal, not even two zero-id
// records of the same variant.
func Equal(a, b Entity) bool {
	if a == nil || b == nil {
		return false
	}
	ka, kb := a.EntityKey(), b.EntityKey()
	if ka.Transient() || kb.Transient() {
		return false
	}
	return ka == kb
}

var transientSeq atomic.Uint64

// nextTransientToken hands out per-instance hash tokens to transient records
// at construction time. Tokens only need to be unique, not stable across runs.
func nextTransientToken() uint64 {
	return transientSeq.Add(1)
}

func hashKey(k Key) uint64 {
	return xxhash.Sum64String(string(k.Kind) + ":" + strconv.FormatInt(int64(k.ID), 10))
}
