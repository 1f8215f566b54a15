package location

import (
	"strings"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/eneo/core"
	"github.com/trezcool/eneo/core/catalog"
	logsvc "github.com/trezcool/eneo/services/logger"
)

func setup(t *testing.T) (Service, ut.Translator) {
	cat, err := catalog.New(DefaultTable)
	require.NoError(t, err)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	InitValidators(validate, translator, cat)

	return NewService(cat, validate, logsvc.NewNopLogger()), translator
}

func TestDefaultTable(t *testing.T) {
	cat, err := catalog.New(DefaultTable)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{EasternProvince, KigaliCity, NorthernProvince, SouthernProvince, WesternProvince},
		cat.Categories(),
	)
	assert.True(t, cat.IsValidTriple(KigaliCity, "Gasabo", "Bumbogo"))
	assert.True(t, cat.IsValidTriple(KigaliCity, "Nyarugenge", "Nyarugenge"))
	assert.True(t, cat.IsValidTriple(EasternProvince, "Bugesera", "Nyarugenge"))
	assert.False(t, cat.IsValidTriple(KigaliCity, "Bugesera", "Gashora"))
}

func TestService_Districts(t *testing.T) {
	svc, _ := setup(t)

	got, err := svc.Districts("  Kigali City ")
	require.NoError(t, err)
	assert.Equal(t, []string{"Gasabo", "Kicukiro", "Nyarugenge"}, got)

	_, err = svc.Districts("Unknown Province")
	var catErr *catalog.UnknownCategoryError
	require.True(t, errors.As(err, &catErr))
	assert.Equal(t, "Unknown Province", catErr.Category)
}

func TestService_DistrictsOfAny(t *testing.T) {
	svc, _ := setup(t)

	tests := []struct {
		name      string
		query     DistrictQuery
		want      []string
		wantErr   bool
		wantValid bool // want validator.ValidationErrors
	}{
		{name: "no provinces", query: DistrictQuery{}, wantErr: true, wantValid: true},
		{name: "empty provinces", query: DistrictQuery{Provinces: []string{}}, wantErr: true, wantValid: true},
		{name: "blank province", query: DistrictQuery{Provinces: []string{" "}}, wantErr: true, wantValid: true},
		{name: "unknown province", query: DistrictQuery{Provinces: []string{KigaliCity, "Nowhere"}}, wantErr: true},
		{
			name:  "union",
			query: DistrictQuery{Provinces: []string{KigaliCity, NorthernProvince}},
			want:  []string{"Burera", "Gasabo", "Kicukiro", "Musanze", "Nyarugenge"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.DistrictsOfAny(tt.query)
			if tt.wantErr {
				require.Error(t, err)
				_, isValidation := err.(validator.ValidationErrors)
				assert.Equal(t, tt.wantValid, isValidation, "DistrictsOfAny() error = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_DistrictsOfAny_keepsCallerSlice(t *testing.T) {
	svc, _ := setup(t)
	provinces := []string{" Kigali City "}
	_, err := svc.DistrictsOfAny(DistrictQuery{Provinces: provinces})
	require.NoError(t, err)
	assert.Equal(t, " Kigali City ", provinces[0])
}

func TestService_Sectors(t *testing.T) {
	svc, _ := setup(t)

	got, err := svc.Sectors(KigaliCity, "Kicukiro")
	require.NoError(t, err)
	assert.Equal(t, DefaultTable[KigaliCity]["Kicukiro"], got)

	_, err = svc.Sectors(KigaliCity, "Bugesera")
	var subErr *catalog.UnknownSubcategoryError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, KigaliCity, subErr.Category)
	assert.Equal(t, "Bugesera", subErr.Subcategory)
}

func TestService_SectorsOfAny(t *testing.T) {
	svc, _ := setup(t)

	got, err := svc.SectorsOfAny(SectorQuery{Districts: []DistrictRef{
		{Province: NorthernProvince, District: "Musanze"},
		{Province: KigaliCity, District: "Gasabo"},
	}})
	require.NoError(t, err)
	assert.Len(t, got, 15+14) // Remera is in both districts
	assert.Equal(t, "Busogo", got[0])
	assert.Contains(t, got, "Bumbogo")

	_, err = svc.SectorsOfAny(SectorQuery{Districts: []DistrictRef{
		{Province: EasternProvince, District: "Bugesera"},
		{Province: KigaliCity, District: "Bugesera"},
	}})
	var subErr *catalog.UnknownSubcategoryError
	require.True(t, errors.As(err, &subErr))
	assert.Equal(t, KigaliCity, subErr.Category)

	_, err = svc.SectorsOfAny(SectorQuery{Districts: []DistrictRef{{Province: KigaliCity}}})
	require.IsType(t, validator.ValidationErrors{}, err)
}

func TestService_Validate(t *testing.T) {
	svc, translator := setup(t)

	tests := []struct {
		name       string
		addr       Address
		wantFields map[string]string // field: message prefix
	}{
		{
			name: "valid",
			addr: Address{Province: " Kigali City", District: "Gasabo ", Sector: "Gatsata"},
		},
		{
			name:       "missing fields",
			addr:       Address{Province: KigaliCity},
			wantFields: map[string]string{"district": "this field is required", "sector": "this field is required"},
		},
		{
			name:       "unknown province",
			addr:       Address{Province: "Kigali Cty", District: "Gasabo", Sector: "Gatsata"},
			wantFields: map[string]string{"province": "unknown province, did you mean Kigali City?"},
		},
		{
			name:       "district of another province",
			addr:       Address{Province: KigaliCity, District: "Bugesera", Sector: "Gashora"},
			wantFields: map[string]string{"district": "district does not belong to this province"},
		},
		{
			name:       "sector of another district",
			addr:       Address{Province: KigaliCity, District: "Gasabo", Sector: "Gahanga"},
			wantFields: map[string]string{"sector": "sector does not belong to this district"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Validate(tt.addr)
			if tt.wantFields == nil {
				require.NoError(t, err)
				assert.Equal(t, Address{Province: KigaliCity, District: "Gasabo", Sector: "Gatsata"}, got)
				return
			}
			vErrs, ok := err.(validator.ValidationErrors)
			require.True(t, ok, "Validate() error = %v", err)

			fldErrs := core.TranslateErrors(vErrs, translator)
			require.Len(t, fldErrs, len(tt.wantFields), "fields = %v", fldErrs)
			for fld, prefix := range tt.wantFields {
				assert.True(t, strings.HasPrefix(fldErrs[fld], prefix), "%s = %q, want prefix %q", fld, fldErrs[fld], prefix)
			}
		})
	}
}

func TestService_IsValid(t *testing.T) {
	svc, _ := setup(t)
	assert.True(t, svc.IsValid(Address{Province: KigaliCity, District: "Gasabo", Sector: " Bumbogo "}))
	assert.False(t, svc.IsValid(Address{Province: KigaliCity, District: "Bugesera", Sector: "Gashora"}))
	assert.False(t, svc.IsValid(Address{}))
	assert.False(t, svc.IsValid(Address{Province: "Kigali  City", District: "Gasabo", Sector: "Bumbogo"}), "inner spaces are kept")
}

func TestService_TableAndSize(t *testing.T) {
	svc, _ := setup(t)
	assert.Equal(t, DefaultTable, svc.Table())

	var n int
	for _, districts := range DefaultTable {
		for _, sectors := range districts {
			n += len(sectors)
		}
	}
	assert.Equal(t, n, svc.Size())
}
