package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// UnknownCategoryError is returned when a category is not a key of the Catalog.
type UnknownCategoryError struct {
	Category    string
	Suggestions []string
}

func (err *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q%s", err.Category, didYouMean(err.Suggestions))
}

// UnknownSubcategoryError is returned when a subcategory is not a key under one specific category.
type UnknownSubcategoryError struct {
	Category    string
	Subcategory string
	Suggestions []string
}

func (err *UnknownSubcategoryError) Error() string {
	return fmt.Sprintf("unknown subcategory %q in category %q%s", err.Subcategory, err.Category, didYouMean(err.Suggestions))
}

// UnknownItemError is returned by Resolve when an item is not part of a (category, subcategory) sequence.
type UnknownItemError struct {
	Category    string
	Subcategory string
	Item        string
	Suggestions []string
}

func (err *UnknownItemError) Error() string {
	return fmt.Sprintf("unknown item %q in %q/%q%s", err.Item, err.Category, err.Subcategory, didYouMean(err.Suggestions))
}

// InvalidTableError is returned by New when the seed table breaks a structural invariant.
type InvalidTableError struct {
	Reason string
}

func (err *InvalidTableError) Error() string {
	return "invalid catalog table: " + err.Reason
}

func invalidTable(format string, args ...interface{}) error {
	return &InvalidTableError{Reason: fmt.Sprintf(format, args...)}
}

// IsUnknown reports whether err (or its cause) is one of the unknown-name lookup errors.
func IsUnknown(err error) bool {
	switch errors.Cause(err).(type) {
	case *UnknownCategoryError, *UnknownSubcategoryError, *UnknownItemError:
		return true
	}
	return false
}

func didYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	quoted := make([]string, len(suggestions))
	for i, s := range suggestions {
		quoted[i] = strconv.Quote(s)
	}
	return " (did you mean " + strings.Join(quoted, " or ") + "?)"
}
