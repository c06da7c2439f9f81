package models

import (
	id "georef/pkg/domain"
	dErrors "georef/pkg/domain-errors"
)

// Country is the root of the geographical hierarchy. The family is closed:
// there are no country variants.
//
// Invariants:
//   - ISO is an ISO 3166-1 alpha-2 code (exactly 2 uppercase ASCII letters)
//   - CallingCode is positive
//   - Name and Native are non-empty and at most 100 characters; Native may
//     use any script
//   - Population is never negative
//
// Divisions reference a country by CountryID; a country never embeds them.
type Country struct {
	ID          id.CountryID `json:"id"`
	ISO         string       `json:"iso"`
	CallingCode int          `json:"calling_code"`
	Name        string       `json:"name"`
	Native      string       `json:"native"`
	Population  int64        `json:"population"`

	tid uint64
}

// NewCountry constructs a validated country record. A zero countryID is
// allowed and marks the record transient until a store assigns an identifier.
// Validation fails fast; nothing is truncated or coerced.
func NewCountry(countryID id.CountryID, iso string, callingCode int, name, native string, population int64) (*Country, error) {
	if err := requireAlpha2("country iso", iso); err != nil {
		return nil, err
	}
	if callingCode <= 0 {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "country calling code must be positive")
	}
	if err := requireText("country name", name, maxTextLen); err != nil {
		return nil, err
	}
	if err := requireText("country native name", native, maxTextLen); err != nil {
		return nil, err
	}
	if err := requireNonNegative("country population", population); err != nil {
		return nil, err
	}
	c := &Country{
		ID:          countryID,
		ISO:         iso,
		CallingCode: callingCode,
		Name:        name,
		Native:      native,
		Population:  population,
	}
	if c.IsTransient() {
		c.tid = nextTransientToken()
	}
	return c, nil
}

func (c *Country) EntityKey() Key {
	return Key{Kind: KindCountry, ID: int32(c.ID)}
}

func (c *Country) IsTransient() bool {
	return c.ID.IsTransient()
}

func (c *Country) HashKey() uint64 {
	if c.IsTransient() {
		return c.tid
	}
	return hashKey(c.EntityKey())
}
