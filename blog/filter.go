// List-filter construction. The query is built as a WHERE clause plus
// positional arguments so the construction logic is a pure function, tested
// without a database.
package blog

import (
	"strconv"
	"strings"
)

// Sentinel category values meaning "all categories". They disable the
// category filter instead of matching literally.
const (
	categoryAll   = "all"
	categoryAllZh = "全部"
)

// ListFilter is the recognized filter configuration for listing blog posts.
type ListFilter struct {
	// Category filters by exact match; empty or the "all" sentinel applies no filter.
	Category string
	// Search is a case-insensitive substring matched against title, excerpt,
	// content and tags; matching any one field suffices.
	Search string
	// PublishedOnly restricts the listing to published posts. The public
	// endpoint defaults it to true; admin tooling passes false explicitly to
	// see drafts too.
	PublishedOnly bool
}

// isAllCategories reports whether the category value disables the filter.
func isAllCategories(category string) bool {
	return category == "" || category == categoryAll || category == categoryAllZh
}

// escapeLike escapes LIKE/ILIKE metacharacters so user input is always a
// literal substring match.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// buildListWhere turns a ListFilter into a WHERE clause (without the keyword)
// and its positional arguments. An empty clause means no filtering.
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
	if f.Search != "" {
		pattern := "%" + escapeLike(f.Search) + "%"
		p := placeholder(pattern)
		conds = append(conds, "(title ILIKE "+p+
			" OR excerpt ILIKE "+p+
			" OR content ILIKE "+p+
			" OR array_to_string(tags, ' ') ILIKE "+p+")")
	}

	return strings.Join(conds, " AND "), args
}
