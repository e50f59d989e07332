package events

import (
	"strconv"
	"strings"
)

// Sentinel category values meaning "all categories".
const (
	categoryAll   = "all"
	categoryAllZh = "全部"
)

// ListFilter is the recognized filter configuration for listing events.
type ListFilter struct {
	// Category filters by exact match; empty or the "all" sentinel applies no filter.
	Category string
	// Status filters by exact match; it has no default.
	Status string
	// PublishedOnly restricts the listing to published events; the public
	// endpoint defaults it to true.
	PublishedOnly bool
}

func isAllCategories(category string) bool {
	return category == "" || category == categoryAll || category == categoryAllZh
}

// buildListWhere turns a ListFilter into a WHERE clause (without the keyword)
// and its positional arguments.
func buildListWhere(f ListFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	placeholder := func(arg interface{}) string {
		args = append(args, arg)
		return "$" + strconv.Itoa(len(args))
	}

	if f.PublishedOnly {
		conds = append(conds, "published = TRUE")
	}
	if !isAllCategories(f.Category) {
		conds = append(conds, "category = "+placeholder(f.Category))
	}
	if f.Status != "" {
		conds = append(conds, "status = "+placeholder(f.Status))
	}

	return strings.Join(conds, " AND "), args
}
