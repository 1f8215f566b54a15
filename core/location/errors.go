package location

import (
	"github.com/pkg/errors"

	"github.com/trezcool/eneo/core/catalog"
)

// LookupError words a catalog lookup failure in province/district/sector terms.
type LookupError struct {
	Message     string
	Suggestions []string
}

func (err *LookupError) Error() string {
	return err.Message
}

// AsLookupError returns the LookupError for a catalog lookup failure, and false for any other error.
func AsLookupError(err error) (*LookupError, bool) {
	switch e := errors.Cause(err).(type) {
	case *catalog.UnknownCategoryError:
		return &LookupError{
			Message:     "unknown province " + e.Category,
			Suggestions: e.Suggestions,
		}, true
	case *catalog.UnknownSubcategoryError:
		return &LookupError{
			Message:     "district " + e.Subcategory + " does not belong to " + e.Category,
			Suggestions: e.Suggestions,
		}, true
	case *catalog.UnknownItemError:
		return &LookupError{
			Message:     "sector " + e.Item + " does not belong to " + e.Category + "/" + e.Subcategory,
			Suggestions: e.Suggestions,
		}, true
	}
	return nil, false
}
