package location

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/catalog"
)

type Service interface {
	Provinces() []string
	Districts(province string) ([]string, error)
	DistrictsOfAny(q DistrictQuery) ([]string, error)
	Sectors(province, district string) ([]string, error)
	SectorsOfAny(q SectorQuery) ([]string, error)
	Validate(addr Address) (Address, error)
	IsValid(addr Address) bool
	Table() catalog.Table
	Size() int
}

type service struct {
	cat      *catalog.Catalog
	validate *validator.Validate
	logger   core.Logger
}

var _ Service = (*service)(nil)

// NewService expects validate to have been set up with InitValidators for the same cat.
func NewService(cat *catalog.Catalog, validate *validator.Validate, logger core.Logger) Service {
	return &service{
		cat:      cat,
		validate: validate,
		logger:   logger,
	}
}

func (svc *service) Provinces() []string {
	return svc.cat.Categories()
}

func (svc *service) Districts(province string) ([]string, error) {
	return svc.cat.SubcategoriesOf(core.CleanString(province))
}

func (svc *service) DistrictsOfAny(q DistrictQuery) ([]string, error) {
	q.Clean()
	if err := svc.validate.Struct(q); err != nil {
		return nil, err
	}
	return svc.cat.SubcategoriesOfAny(q.Provinces...)
}

func (svc *service) Sectors(province, district string) ([]string, error) {
	return svc.cat.ItemsOf(core.CleanString(province), core.CleanString(district))
}

func (svc *service) SectorsOfAny(q SectorQuery) ([]string, error) {
	q.Clean()
	if err := svc.validate.Struct(q); err != nil {
		return nil, err
	}
	return svc.cat.ItemsOfAny(q.pairs()...)
}

// Validate cleans addr and checks it against the catalog; the cleaned Address is returned.
func (svc *service) Validate(addr Address) (Address, error) {
	addr.Clean()
	if err := svc.validate.Struct(addr); err != nil {
		svc.logger.Debug("address rejected", map[string]interface{}{
			"province": addr.Province,
			"district": addr.District,
			"sector":   addr.Sector,
		})
		return addr, err
	}
	return addr, nil
}

func (svc *service) IsValid(addr Address) bool {
	addr.Clean()
	return svc.cat.IsValidTriple(addr.Province, addr.District, addr.Sector)
}

func (svc *service) Table() catalog.Table {
	return svc.cat.Table()
}

func (svc *service) Size() int {
	return svc.cat.Len()
}
