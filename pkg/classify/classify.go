// Package classify infers an organization category from free-text
// organization names using ordered keyword heuristics.
package classify

import "strings"

// Category is the closed set of organization categories.
type Category string

const (
	Healthcare   Category = "Healthcare"
	Government   Category = "Government"
	Nonprofit    Category = "Nonprofit"
	Education    Category = "Education"
	Private      Category = "Private"
	Unaffiliated Category = "Unaffiliated"
)

// Keyword sets are checked in order; the first matching rule wins. A name
// like "State University Health Foundation" is Healthcare because the
// healthcare rule precedes the government, education and nonprofit rules.
var rules = []struct {
	category Category
	keywords []string
}{
	{Healthcare, []string{"hospital", "health", "medical", "medicine", "clinic", "care"}},
	{Government, []string{"state", "county", "city", "government", "governor", "department", "hfs"}},
	{Education, []string{"university", "college", "uic"}},
	{Nonprofit, []string{"foundation", "trust", "committee", "association", "network", "coalition"}},
}

// Classify maps an organization name to its category. It is pure and
// total: every string, including the empty string, yields a category.
// Matching is case-insensitive substring containment; names with no
// matching keyword fall back to Private.
func Classify(name string) Category {
	lower := strings.ToLower(name)

	if strings.TrimSpace(name) == "" || strings.Contains(lower, "unaffiliated") {
		return Unaffiliated
	}

	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.category
			}
		}
	}

	return Private
}
