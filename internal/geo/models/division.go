package models

import (
	id "georef/pkg/domain"
	dErrors "georef/pkg/domain-errors"
)

// DivisionKind classifies an administrative division. Kinds are pure
// classification tags: no kind carries behavior, and adding one is a constant
// plus a map entry, with no change to existing kinds or to entity identity.
type DivisionKind string

// Supported division kinds. The set is closed at any given version; stores
// persist the kind as the discriminator column for the division table.
const (
	DivisionProvince     DivisionKind = "province"
	DivisionState        DivisionKind = "state"
	DivisionRegion       DivisionKind = "region"
	DivisionCounty       DivisionKind = "county"
	DivisionCanton       DivisionKind = "canton"
	DivisionDistrict     DivisionKind = "district"
	DivisionMunicipality DivisionKind = "municipality"
	DivisionTerritory    DivisionKind = "territory"
	DivisionPrefecture   DivisionKind = "prefecture"
	DivisionDepartment   DivisionKind = "department"
	DivisionArea         DivisionKind = "area"
	DivisionCommunity    DivisionKind = "community"
	DivisionParish       DivisionKind = "parish"
	DivisionOblast       DivisionKind = "oblast"
	DivisionVoivodeship  DivisionKind = "voivodeship"
	DivisionBanner       DivisionKind = "banner"
	DivisionBarangay     DivisionKind = "barangay"
	DivisionKampong      DivisionKind = "kampong"
	DivisionBarony       DivisionKind = "barony"
	DivisionHundred      DivisionKind = "hundred"
	DivisionKingdom      DivisionKind = "kingdom"
	DivisionPrincipality DivisionKind = "principality"
	DivisionRegency      DivisionKind = "regency"
	DivisionRepublic     DivisionKind = "republic"
	DivisionRiding       DivisionKind = "riding"
	DivisionTheme        DivisionKind = "theme"
	DivisionBanat        DivisionKind = "banat"
)

// validDivisionKinds is the single source of truth for the division taxonomy.
var validDivisionKinds = map[DivisionKind]bool{
	DivisionProvince:     true,
	DivisionState:        true,
	DivisionRegion:       true,
	DivisionCounty:       true,
	DivisionCanton:       true,
	DivisionDistrict:     true,
	DivisionMunicipality: true,
	DivisionTerritory:    true,
	DivisionPrefecture:   true,
	DivisionDepartment:   true,
	DivisionArea:         true,
	DivisionCommunity:    true,
	DivisionParish:       true,
	DivisionOblast:       true,
	DivisionVoivodeship:  true,
	DivisionBanner:       true,
	DivisionBarangay:     true,
	DivisionKampong:      true,
	DivisionBarony:       true,
	DivisionHundred:      true,
	DivisionKingdom:      true,
	DivisionPrincipality: true,
	DivisionRegency:      true,
	DivisionRepublic:     true,
	DivisionRiding:       true,
	DivisionTheme:        true,
	DivisionBanat:        true,
}

// ParseDivisionKind constructs a DivisionKind from external input, enforcing
// the allowlist. Direct casting bypasses validation.
func ParseDivisionKind(s string) (DivisionKind, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "division kind cannot be empty")
	}
	k := DivisionKind(s)
	if !k.IsValid() {
		return "", dErrors.Newf(dErrors.CodeInvalidInput, "unknown division kind %q", s)
	}
	return k, nil
}

// IsValid reports whether the kind is one of the supported division kinds.
func (k DivisionKind) IsValid() bool {
	return validDivisionKinds[k]
}

func (k DivisionKind) String() string {
	return string(k)
}

// Division is a second-level record: an administrative division of a country.
//
// Invariants:
//   - Kind is a supported division kind
//   - ISO is non-empty and at most 5 characters (subdivision codes such as
//     "BKK" or "13" do not fit an alpha-2 shape)
//   - Name and Native are non-empty and at most 100 characters
//   - Population is never negative
//
// CountryID is a plain reference. Whether it resolves to a live country is
// the loading store's concern, never checked here.
type Division struct {
	ID         id.DivisionID `json:"id"`
	CountryID  id.CountryID  `json:"country_id"`
	Kind       DivisionKind  `json:"kind"`
	ISO        string        `json:"iso"`
	Name       string        `json:"name"`
	Native     string        `json:"native"`
	Population int64         `json:"population"`

	tid uint64
}

// NewDivision constructs a validated division record of the given kind.
// A zero divisionID marks the record transient. A zero countryID is also
// accepted so a division can be built before its parent is persisted.
func NewDivision(kind DivisionKind, divisionID id.DivisionID, countryID id.CountryID, iso, name, native string, population int64) (*Division, error) {
	if !kind.IsValid() {
		return nil, dErrors.Newf(dErrors.CodeInvariantViolation, "unknown division kind %q", kind)
	}
	if err := requireText("division iso", iso, maxCodeLen); err != nil {
		return nil, err
	}
	if err := requireText("division name", name, maxTextLen); err != nil {
		return nil, err
	}
	if err := requireText("division native name", native, maxTextLen); err != nil {
		return nil, err
	}
	if err := requireNonNegative("division population", population); err != nil {
		return nil, err
	}
	d := &Division{
		ID:         divisionID,
		CountryID:  countryID,
		Kind:       kind,
		ISO:        iso,
		Name:       name,
		Native:     native,
		Population: population,
	}
	if d.IsTransient() {
		d.tid = nextTransientToken()
	}
	return d, nil
}

func (d *Division) EntityKey() Key {
	return Key{Kind: Kind(d.Kind), ID: int32(d.ID)}
}

func (d *Division) IsTransient() bool {
	return d.ID.IsTransient()
}

func (d *Division) HashKey() uint64 {
	if d.IsTransient() {
		return d.tid
	}
	return hashKey(d.EntityKey())
}
