package location

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/eneo/core/catalog"
)

var (
	unknownProvinceTag = "province_unknown"
	unknownDistrictTag = "district_unknown"
	unknownSectorTag   = "sector_unknown"
)

// InitValidators registers the Address struct validation against cat, and its error messages.
func InitValidators(validate *validator.Validate, translator ut.Translator, cat *catalog.Catalog) {
	validate.RegisterStructValidation(addressStructValidation(cat), Address{})

	// a validator.RegisterTranslationsFunc is required for registering the Translator,
	// messages are built by translateLocationErrs so a noop func is enough.
	registerFn := func(ut.Translator) error { return nil }
	for _, tag := range []string{unknownProvinceTag, unknownDistrictTag, unknownSectorTag} {
		_ = validate.RegisterTranslation(tag, translator, registerFn, translateLocationErrs)
	}
}

func translateLocationErrs(_ ut.Translator, fe validator.FieldError) string {
	var msg string
	switch fe.Tag() {
	case unknownProvinceTag:
		msg = "unknown province"
	case unknownDistrictTag:
		msg = "district does not belong to this province"
	case unknownSectorTag:
		msg = "sector does not belong to this district"
	default:
		return ""
	}
	if fe.Param() != "" {
		msg += ", did you mean " + fe.Param() + "?"
	}
	return msg
}

// addressStructValidation resolves the Address top-down and reports the first level that does not match.
// Blank levels are left to the `required` field validations.
func addressStructValidation(cat *catalog.Catalog) validator.StructLevelFunc {
	return func(sl validator.StructLevel) {
		addr, ok := sl.Current().Interface().(Address)
		if !ok || addr.Province == "" || addr.District == "" || addr.Sector == "" {
			return
		}

		err := cat.Resolve(addr.Province, addr.District, addr.Sector)
		switch e := errors.Cause(err).(type) {
		case nil:
		case *catalog.UnknownCategoryError:
			sl.ReportError(addr.Province, "province", "Province", unknownProvinceTag, joinSuggestions(e.Suggestions))
		case *catalog.UnknownSubcategoryError:
			sl.ReportError(addr.District, "district", "District", unknownDistrictTag, joinSuggestions(e.Suggestions))
		case *catalog.UnknownItemError:
			sl.ReportError(addr.Sector, "sector", "Sector", unknownSectorTag, joinSuggestions(e.Suggestions))
		}
	}
}

func joinSuggestions(s []string) string {
	return strings.Join(s, " or ")
}
