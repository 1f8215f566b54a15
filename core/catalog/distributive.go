package catalog

import "sort"

// SubcategoriesOfAny resolves every candidate category on its own and returns the sorted union
// of their subcategories. It stops at the first unknown category.
func (c *Catalog) SubcategoriesOfAny(cats ...string) ([]string, error) {
	seen := make(map[string]struct{})
	union := make([]string, 0)
	for _, cat := range cats {
		subs, err := c.SubcategoriesOf(cat)
		if err != nil {
			return nil, err
		}
		for _, sub := range subs {
			if _, ok := seen[sub]; !ok {
				seen[sub] = struct{}{}
				union = append(union, sub)
			}
		}
	}
	sort.Strings(union)
	return union, nil
}

// ItemsOfAny validates every pair against its own category and returns the union of their items,
// in first-seen order. It stops at the first invalid pair.
func (c *Catalog) ItemsOfAny(pairs ...Pair) ([]string, error) {
	seen := make(map[string]struct{})
	union := make([]string, 0)
	for _, p := range pairs {
		items, err := c.ItemsOf(p.Category, p.Subcategory)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if _, ok := seen[item]; !ok {
				seen[item] = struct{}{}
				union = append(union, item)
			}
		}
	}
	return union, nil
}
