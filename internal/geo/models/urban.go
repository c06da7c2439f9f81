package models

import (
	id "georef/pkg/domain"
	dErrors "georef/pkg/domain-errors"
)

// UrbanKind classifies an urban area. Like division kinds these are pure
// classification tags with no behavior.
type UrbanKind string

// Supported urban kinds.
const (
	UrbanCity    UrbanKind = "city"
	UrbanTown    UrbanKind = "town"
	UrbanWard    UrbanKind = "ward"
	UrbanShire   UrbanKind = "shire"
	UrbanAmphor  UrbanKind = "amphor"
	UrbanVillage UrbanKind = "village"
	UrbanHamlet  UrbanKind = "hamlet"
)

// validUrbanKinds is the single source of truth for the urban taxonomy.
var validUrbanKinds = map[UrbanKind]bool{
	UrbanCity:    true,
	UrbanTown:    true,
	UrbanWard:    true,
	UrbanShire:   true,
	UrbanAmphor:  true,
	UrbanVillage: true,
	UrbanHamlet:  true,
}

// ParseUrbanKind constructs an UrbanKind from external input, enforcing the
// allowlist.
func ParseUrbanKind(s string) (UrbanKind, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "urban kind cannot be empty")
	}
	k := UrbanKind(s)
	if !k.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown urban kind %q", s)
	}
	return k, nil
}

// IsValid reports whether the kind is one of the supported urban kinds.
func (k UrbanKind) IsValid() bool {
	return validUrbanKinds[k]
}

func (k UrbanKind) String() string {
	return string(k)
}

// Urban is a third-level record: a settlement inside a division. Urban areas
// carry no population figure in the reference data.
//
// DivisionID is a plain reference and is never resolved here.
type Urban struct {
	ID         id.UrbanID    `json:"id"`
	DivisionID id.DivisionID `json:"division_id"`
	Kind       UrbanKind     `json:"kind"`
	ISO        string        `json:"iso"`
	Name       string        `json:"name"`
	Native     string        `json:"native"`

	tid uint64
}

// NewUrban constructs a validated urban record of the given kind. A zero
// urbanID marks the record transient.
func NewUrban(kind UrbanKind, urbanID id.UrbanID, divisionID id.DivisionID, iso, name, native string) (*Urban, error) {
	if !kind.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "unknown urban kind %q", kind)
	}
	if err := requireText("urban iso", iso, maxCodeLen); err != nil {
		return nil, err
	}
	if err := requireText("urban name", name, maxTextLen); err != nil {
		return nil, err
	}
	if err := requireText("urban native name", native, maxTextLen); err != nil {
		return nil, err
	}
	u := &Urban{
		ID:         urbanID,
		DivisionID: divisionID,
		Kind:       kind,
		ISO:        iso,
		Name:       name,
		Native:     native,
	}
	if u.IsTransient() {
		u.tid = nextTransientToken()
	}
	return u, nil
}

func (u *Urban) EntityKey() Key {
	return Key{Kind: Kind(u.Kind), ID: int32(u.ID)}
}

func (u *Urban) IsTransient() bool {
	return u.ID.IsTransient()
}

func (u *Urban) HashKey() uint64 {
	if u.IsTransient() {
		return u.tid
	}
	return hashKey(u.EntityKey())
}
