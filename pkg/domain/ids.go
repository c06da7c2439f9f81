// Package domain holds the typed identifiers shared across the module.
//
// Each entity family (country, division, urban) has its own identifier type
// over int32. Distinct types prevent cross-family assignment at compile time;
// a Division's CountryID cannot accidentally receive an UrbanID.
//
// The zero value is reserved: it marks a transient entity that has not yet
// been assigned a durable identifier by whatever store the caller uses. This
// module never assigns identifiers itself.
package domain

import (
	"strconv"

	dErrors "georef/pkg/domain-errors"
)

// CountryID identifies a country. In practice the ISO 3166-1 numeric code.
type CountryID int32

// DivisionID identifies an administrative division.
type DivisionID int32

// UrbanID identifies an urban area.
type UrbanID int32

// IsTransient reports whether the identifier is still at its zero value,
// meaning the entity has no durable identity yet.
func (id CountryID) IsTransient() bool { return id == 0 }

func (id DivisionID) IsTransient() bool { return id == 0 }

func (id UrbanID) IsTransient() bool { return id == 0 }

func (id CountryID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id DivisionID) String() string { return strconv.FormatInt(int64(id), 10) }

func (id UrbanID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseCountryID constructs a CountryID from external input.
//
// Usage: call from CLI flags or adapters when parsing untrusted values;
// direct casting bypasses validation.
//
// Errors: returns CodeInvalidInput when the value is empty, non-numeric,
// non-positive, or out of 32-bit range.
func ParseCountryID(s string) (CountryID, error) {
	n, err := parseID(s)
	return CountryID(n), err
}

// ParseDivisionID constructs a DivisionID from external input.
func ParseDivisionID(s string) (DivisionID, error) {
	n, err := parseID(s)
	return DivisionID(n), err
}

// ParseUrbanID constructs an UrbanID from external input.
func ParseUrbanID(s string) (UrbanID, error) {
	n, err := parseID(s)
	return UrbanID(n), err
}

func parseID(s string) (int32, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "id cannot be empty")
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "id must be a 32-bit integer")
	}
	if n <= 0 {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "id must be positive")
	}
	return int32(n), nil
}
