// Package catalog implements an immutable three-level hierarchy
// (category -> subcategory -> ordered items) and the lookups used to
// validate selections made against it.
//
// Subcategory names are scoped to their category and items to their
// (category, subcategory) pair. Lookups over several candidates are
// resolved one candidate at a time and the per-candidate answers are
// unioned afterwards; no key set is ever shared across categories.
package catalog

import (
	"sort"
	"strconv"
	"strings"
)

type (
	// Table is the literal seed of a Catalog: {category: {subcategory: [items...]}}.
	Table map[string]map[string][]string

	// Pair names one subcategory within one category.
	Pair struct {
		Category    string `json:"category" yaml:"category"`
		Subcategory string `json:"subcategory" yaml:"subcategory"`
	}

	// Catalog is safe for concurrent use: nothing mutates it after New returns.
	Catalog struct {
		names   []string // sorted
		entries map[string]*category
	}

	category struct {
		names   []string // sorted
		entries map[string]*subcategory
	}

	subcategory struct {
		items []string // as configured
		index map[string]struct{}
	}
)

// New builds a Catalog from a deep copy of t.
// It returns an *InvalidTableError if t is empty, holds a blank or untrimmed name, a category without subcategories,
// a subcategory without items or a subcategory listing the same item twice.
func New(t Table) (*Catalog, error) {
	if len(t) == 0 {
		return nil, invalidTable("no categories")
	}

	cat := &Catalog{
		names:   make([]string, 0, len(t)),
		entries: make(map[string]*category, len(t)),
	}
	for catName, subs := range t {
		if err := checkName("category", catName, ""); err != nil {
			return nil, err
		}
		if len(subs) == 0 {
			return nil, invalidTable("category %q has no subcategories", catName)
		}

		entry := &category{
			names:   make([]string, 0, len(subs)),
			entries: make(map[string]*subcategory, len(subs)),
		}
		for subName, items := range subs {
			if err := checkName("subcategory", subName, " in category "+strconv.Quote(catName)); err != nil {
				return nil, err
			}
			if len(items) == 0 {
				return nil, invalidTable("subcategory %q of category %q has no items", subName, catName)
			}

			sub := &subcategory{
				items: make([]string, 0, len(items)),
				index: make(map[string]struct{}, len(items)),
			}
			for _, item := range items {
				if err := checkName("item", item, " in "+strconv.Quote(catName)+"/"+strconv.Quote(subName)); err != nil {
					return nil, err
				}
				if _, dup := sub.index[item]; dup {
					return nil, invalidTable("item %q listed twice in %q/%q", item, catName, subName)
				}
				sub.index[item] = struct{}{}
				sub.items = append(sub.items, item)
			}

			entry.names = append(entry.names, subName)
			entry.entries[subName] = sub
		}
		sort.Strings(entry.names)

		cat.names = append(cat.names, catName)
		cat.entries[catName] = entry
	}
	sort.Strings(cat.names)

	return cat, nil
}

// MustNew is like New but panics on an invalid table. Meant for package-level literals.
func MustNew(t Table) *Catalog {
	cat, err := New(t)
	if err != nil {
		panic(err)
	}
	return cat
}

// Categories returns the sorted category names.
func (c *Catalog) Categories() []string {
	return clone(c.names)
}

// SubcategoriesOf returns the sorted subcategories of category.
func (c *Catalog) SubcategoriesOf(cat string) ([]string, error) {
	entry, err := c.category(cat)
	if err != nil {
		return nil, err
	}
	return clone(entry.names), nil
}

// ItemsOf returns the items of the (cat, sub) pair, in configured order.
func (c *Catalog) ItemsOf(cat, sub string) ([]string, error) {
	entry, err := c.subcategory(cat, sub)
	if err != nil {
		return nil, err
	}
	return clone(entry.items), nil
}

// IsValidTriple reports whether sub belongs to cat and item belongs to that (cat, sub) pair.
func (c *Catalog) IsValidTriple(cat, sub, item string) bool {
	entry, ok := c.entries[cat]
	if !ok {
		return false
	}
	subEntry, ok := entry.entries[sub]
	if !ok {
		return false
	}
	_, ok = subEntry.index[item]
	return ok
}

// Resolve checks the (cat, sub, item) triple top-down and returns the error of the first invalid level.
func (c *Catalog) Resolve(cat, sub, item string) error {
	entry, err := c.subcategory(cat, sub)
	if err != nil {
		return err
	}
	if _, ok := entry.index[item]; !ok {
		return &UnknownItemError{
			Category:    cat,
			Subcategory: sub,
			Item:        item,
			Suggestions: suggest(item, entry.items),
		}
	}
	return nil
}

// Len returns the number of (category, subcategory, item) triples.
func (c *Catalog) Len() int {
	var n int
	for _, entry := range c.entries {
		for _, sub := range entry.entries {
			n += len(sub.items)
		}
	}
	return n
}

// Table returns a deep copy of the data the Catalog was built from.
func (c *Catalog) Table() Table {
	t := make(Table, len(c.entries))
	for catName, entry := range c.entries {
		subs := make(map[string][]string, len(entry.entries))
		for subName, sub := range entry.entries {
			subs[subName] = clone(sub.items)
		}
		t[catName] = subs
	}
	return t
}

func (c *Catalog) category(cat string) (*category, error) {
	entry, ok := c.entries[cat]
	if !ok {
		return nil, &UnknownCategoryError{Category: cat, Suggestions: suggest(cat, c.names)}
	}
	return entry, nil
}

func (c *Catalog) subcategory(cat, sub string) (*subcategory, error) {
	entry, err := c.category(cat)
	if err != nil {
		return nil, err
	}
	subEntry, ok := entry.entries[sub]
	if !ok {
		return nil, &UnknownSubcategoryError{
			Category:    cat,
			Subcategory: sub,
			Suggestions: suggest(sub, entry.names),
		}
	}
	return subEntry, nil
}

// checkName rejects blank names and names with surrounding whitespace: lookups trim their input,
// so such a name could never be matched.
func checkName(kind, name, where string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return invalidTable("blank %s name%s", kind, where)
	}
	if trimmed != name {
		return invalidTable("%s name %q has leading or trailing whitespace%s", kind, name, where)
	}
	return nil
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
