// Package seed ships the hand-authored reference datasets. The datasets are
// built once on first access and never mutated afterwards, so they are safe
// for unrestricted concurrent reads. Accessors hand out slice copies; the
// canonical data stays private.
//
// The three datasets are referentially consistent with each other: every
// seeded division references a seeded country and every seeded urban area
// references a seeded division. That consistency is a property of the data,
// not of this package; verifying it when loading into a store is the
// loader's job.
package seed

import (
	"fmt"
	"sync"

	"georef/internal/geo/models"
	id "georef/pkg/domain"
)

var countries = sync.OnceValue(func() []*models.Country {
	return []*models.Country{
		mustCountry(764, "TH", 66, "Thailand", "ไทย", 69950850),
		mustCountry(392, "JP", 81, "Japan", "日本", 125800000),
		mustCountry(276, "DE", 49, "Germany", "Deutschland", 83200000),
		mustCountry(616, "PL", 48, "Poland", "Polska", 37950000),
		mustCountry(804, "UA", 380, "Ukraine", "Україна", 41150000),
		mustCountry(608, "PH", 63, "Philippines", "Pilipinas", 109580000),
		mustCountry(756, "CH", 41, "Switzerland", "Schweiz", 8640000),
		mustCountry(250, "FR", 33, "France", "France", 67750000),
		mustCountry(826, "GB", 44, "United Kingdom", "United Kingdom", 67330000),
		mustCountry(360, "ID", 62, "Indonesia", "Indonesia", 273520000),
	}
})

var divisions = sync.OnceValue(func() []*models.Division {
	return []*models.Division{
		mustDivision(models.DivisionProvince, 1, 764, "BKK", "Bangkok", "กรุงเทพมหานคร", 5527000),
		mustDivision(models.DivisionProvince, 2, 764, "50", "Chiang Mai", "เชียงใหม่", 1780000),
		mustDivision(models.DivisionPrefecture, 3, 392, "13", "Tokyo", "東京都", 14040000),
		mustDivision(models.DivisionState, 4, 276, "BY", "Bavaria", "Bayern", 13140000),
		mustDivision(models.DivisionVoivodeship, 5, 616, "MZ", "Masovia", "Mazowieckie", 5420000),
		mustDivision(models.DivisionOblast, 6, 804, "32", "Kyiv Oblast", "Київська область", 1790000),
		mustDivision(models.DivisionRegion, 7, 608, "NCR", "Metro Manila", "Kalakhang Maynila", 13480000),
		mustDivision(models.DivisionCanton, 8, 756, "ZH", "Zürich", "Zürich", 1540000),
		mustDivision(models.DivisionRegion, 9, 250, "IDF", "Île-de-France", "Île-de-France", 12320000),
		mustDivision(models.DivisionDepartment, 10, 250, "75", "Paris", "Paris", 2160000),
		mustDivision(models.DivisionRiding, 11, 826, "ERY", "East Riding of Yorkshire", "East Riding of Yorkshire", 342000),
		mustDivision(models.DivisionProvince, 12, 360, "JB", "West Java", "Jawa Barat", 48270000),
	}
})

var urbans = sync.OnceValue(func() []*models.Urban {
	return []*models.Urban{
		mustUrban(models.UrbanCity, 1, 1, "BKK", "Bangkok", "กรุงเทพมหานคร"),
		mustUrban(models.UrbanWard, 2, 1, "PTW", "Pathum Wan", "ปทุมวัน"),
		mustUrban(models.UrbanAmphor, 3, 2, "MCM", "Mueang Chiang Mai", "เมืองเชียงใหม่"),
		mustUrban(models.UrbanCity, 4, 2, "CNX", "Chiang Mai", "เชียงใหม่"),
		mustUrban(models.UrbanCity, 5, 3, "TYO", "Tokyo", "東京"),
		mustUrban(models.UrbanCity, 6, 4, "MUC", "Munich", "München"),
		mustUrban(models.UrbanVillage, 7, 4, "OBG", "Oberammergau", "Oberammergau"),
		mustUrban(models.UrbanCity, 8, 5, "WAW", "Warsaw", "Warszawa"),
		mustUrban(models.UrbanCity, 9, 7, "MNL", "Manila", "Maynila"),
		mustUrban(models.UrbanCity, 10, 8, "ZRH", "Zürich", "Zürich"),
		mustUrban(models.UrbanTown, 11, 11, "BEV", "Beverley", "Beverley"),
		mustUrban(models.UrbanCity, 12, 10, "PAR", "Paris", "Paris"),
	}
})

// Countries returns the country dataset in authoring order.
func Countries() []*models.Country {
	return copySlice(countries())
}

// Divisions returns the division dataset in authoring order.
func Divisions() []*models.Division {
	return copySlice(divisions())
}

// Urbans returns the urban dataset in authoring order.
func Urbans() []*models.Urban {
	return copySlice(urbans())
}

// DivisionsOfKind returns the seeded divisions carrying the given tag,
// preserving authoring order. Filtering by tag is the reason the tag exists.
func DivisionsOfKind(kind models.DivisionKind) []*models.Division {
	var out []*models.Division
	for _, d := range divisions() {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// UrbansOfKind returns the seeded urban areas carrying the given tag,
// preserving authoring order.
func UrbansOfKind(kind models.UrbanKind) []*models.Urban {
	var out []*models.Urban
	for _, u := range urbans() {
		if u.Kind == kind {
			out = append(out, u)
		}
	}
	return out
}

func copySlice[T any](in []*T) []*T {
	out := make([]*T, len(in))
	copy(out, in)
	return out
}

// The must* helpers panic on invalid entries. The datasets are compiled in,
// so a failure here is a bug in this file, caught by the package tests.

func mustCountry(countryID id.CountryID, iso string, callingCode int, name, native string, population int64) *models.Country {
	c, err := models.NewCountry(countryID, iso, callingCode, name, native, population)
	if err != nil {
		panic(fmt.Sprintf("seed country %s: %v", iso, err))
	}
	return c
}

func mustDivision(kind models.DivisionKind, divisionID id.DivisionID, countryID id.CountryID, iso, name, native string, population int64) *models.Division {
	d, err := models.NewDivision(kind, divisionID, countryID, iso, name, native, population)
	if err != nil {
		panic(fmt.Sprintf("seed division %s: %v", iso, err))
	}
	return d
}

func mustUrban(kind models.UrbanKind, urbanID id.UrbanID, divisionID id.DivisionID, iso, name, native string) *models.Urban {
	u, err := models.NewUrban(kind, urbanID, divisionID, iso, name, native)
	if err != nil {
		panic(fmt.Sprintf("seed urban %s: %v", iso, err))
	}
	return u
}
