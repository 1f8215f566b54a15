package location

import (
	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/catalog"
)

// Address is a user-submitted location selection.
type Address struct {
	Province string `json:"province" validate:"required"`
	District string `json:"district" validate:"required"`
	Sector   string `json:"sector" validate:"required"`
}

func (a *Address) Clean() {
	a.Province = core.CleanString(a.Province)
	a.District = core.CleanString(a.District)
	a.Sector = core.CleanString(a.Sector)
}

// DistrictRef names one district within one province.
type DistrictRef struct {
	Province string `json:"province" validate:"required"`
	District string `json:"district" validate:"required"`
}

func (r DistrictRef) pair() catalog.Pair {
	return catalog.Pair{Category: r.Province, Subcategory: r.District}
}

// DistrictQuery asks for the districts of any of the listed provinces.
type DistrictQuery struct {
	Provinces []string `json:"provinces" validate:"required,min=1,dive,notblank"`
}

// Clean works on a copy of the provinces so the caller's slice is left untouched.
func (q *DistrictQuery) Clean() {
	if q.Provinces == nil {
		return
	}
	provinces := make([]string, len(q.Provinces))
	for i, p := range q.Provinces {
		provinces[i] = core.CleanString(p)
	}
	q.Provinces = provinces
}

// SectorQuery asks for the sectors of any of the listed districts.
type SectorQuery struct {
	Districts []DistrictRef `json:"districts" validate:"required,min=1,dive"`
}

func (q *SectorQuery) Clean() {
	if q.Districts == nil {
		return
	}
	districts := make([]DistrictRef, len(q.Districts))
	for i, ref := range q.Districts {
		districts[i] = DistrictRef{
			Province: core.CleanString(ref.Province),
			District: core.CleanString(ref.District),
		}
	}
	q.Districts = districts
}

func (q SectorQuery) pairs() []catalog.Pair {
	pairs := make([]catalog.Pair, len(q.Districts))
	for i, ref := range q.Districts {
		pairs[i] = ref.pair()
	}
	return pairs
}

// CheckResult is the answer to a validity check.
type CheckResult struct {
	Valid bool `json:"valid"`
}
