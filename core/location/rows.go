package location

import (
	"sort"

	"github.com/trezcool/eneo/core/catalog"
)

// Row is one stored (province, district, sector) triple. Position keeps the sector order within its district.
type Row struct {
	Province string `db:"province"`
	District string `db:"district"`
	Sector   string `db:"sector"`
	Position int    `db:"position"`
}

// FlattenTable turns t into rows ordered by province, district, then position.
func FlattenTable(t catalog.Table) []Row {
	rows := make([]Row, 0)
	for province, districts := range t {
		for district, sectors := range districts {
			for i, sector := range sectors {
				rows = append(rows, Row{Province: province, District: district, Sector: sector, Position: i})
			}
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Province != rows[j].Province {
			return rows[i].Province < rows[j].Province
		}
		if rows[i].District != rows[j].District {
			return rows[i].District < rows[j].District
		}
		return rows[i].Position < rows[j].Position
	})
	return rows
}

// BuildTable is the inverse of FlattenTable. Sectors are ordered by Position.
func BuildTable(rows []Row) catalog.Table {
	sorted := make([]Row, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	t := make(catalog.Table)
	for _, r := range sorted {
		districts, ok := t[r.Province]
		if !ok {
			districts = make(map[string][]string)
			t[r.Province] = districts
		}
		districts[r.District] = append(districts[r.District], r.Sector)
	}
	return t
}
