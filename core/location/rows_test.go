package location

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/eneo/core/catalog"
)

func TestFlattenTable(t *testing.T) {
	table := catalog.Table{
		"Kigali City":      {"Kicukiro": {"Gatenga", "Gahanga"}, "Gasabo": {"Bumbogo"}},
		"Eastern Province": {"Bugesera": {"Juru"}},
	}
	want := []Row{
		{Province: "Eastern Province", District: "Bugesera", Sector: "Juru", Position: 0},
		{Province: "Kigali City", District: "Gasabo", Sector: "Bumbogo", Position: 0},
		{Province: "Kigali City", District: "Kicukiro", Sector: "Gatenga", Position: 0},
		{Province: "Kigali City", District: "Kicukiro", Sector: "Gahanga", Position: 1},
	}
	assert.Equal(t, want, FlattenTable(table))
	assert.Empty(t, FlattenTable(nil))
}

func TestBuildTable(t *testing.T) {
	rows := []Row{
		{Province: "Kigali City", District: "Kicukiro", Sector: "Gahanga", Position: 1},
		{Province: "Kigali City", District: "Kicukiro", Sector: "Gatenga", Position: 0},
		{Province: "Eastern Province", District: "Bugesera", Sector: "Juru", Position: 0},
	}
	want := catalog.Table{
		"Kigali City":      {"Kicukiro": {"Gatenga", "Gahanga"}},
		"Eastern Province": {"Bugesera": {"Juru"}},
	}
	assert.Equal(t, want, BuildTable(rows))
	assert.Equal(t, DefaultTable, BuildTable(FlattenTable(DefaultTable)))
}
