package location

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/trezcool/eneo/core/catalog"
)

func TestAsLookupError(t *testing.T) {
	cat := catalog.MustNew(DefaultTable)

	tests := []struct {
		name            string
		err             error
		wantMessage     string
		wantSuggestions []string
		wantOK          bool
	}{
		{
			name:            "unknown province",
			err:             cat.Resolve("Kigali Cty", "Gasabo", "Remera"),
			wantMessage:     "unknown province Kigali Cty",
			wantSuggestions: []string{KigaliCity},
			wantOK:          true,
		},
		{
			name:        "district of another province",
			err:         errors.Wrap(cat.Resolve(KigaliCity, "Bugesera", "Gashora"), "validating"),
			wantMessage: "district Bugesera does not belong to Kigali City",
			wantOK:      true,
		},
		{
			name:        "sector of another district",
			err:         &catalog.UnknownItemError{Category: KigaliCity, Subcategory: "Gasabo", Item: "Gahanga"},
			wantMessage: "sector Gahanga does not belong to Kigali City/Gasabo",
			wantOK:      true,
		},
		{name: "other error", err: errors.New("boom")},
		{name: "no error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := AsLookupError(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			if !ok {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tt.wantMessage, got.Error())
			assert.ElementsMatch(t, tt.wantSuggestions, got.Suggestions)
		})
	}
}
