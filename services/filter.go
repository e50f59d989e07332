package services

import (
	"strconv"
	"strings"
)

// Sentinel category values meaning "all categories".
const (
	categoryAll   = "all"
	categoryAllZh = "全部"
)

// ListFilter is the recognized filter configuration for listing services.
type ListFilter struct {
	// Category filters by exact match; empty or the "all" sentinel applies no filter.
	Category string
	// ActiveOnly restricts the listing to active services; the public
	// endpoint defaults it to true.
	ActiveOnly bool
}

func isAllCategories(category string) bool {
	return category == "" || category == categoryAll || category == categoryAllZh
}

// buildListWhere turns a ListFilter into a WHERE clause (without the keyword)
// and its positional arguments.
func buildListWhere(f ListFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if f.ActiveOnly {
		conds = append(conds, "active = TRUE")
	}
	if !isAllCategories(f.Category) {
		args = append(args, f.Category)
		conds = append(conds, "category = $"+strconv.Itoa(len(args)))
	}

	return strings.Join(conds, " AND "), args
}
