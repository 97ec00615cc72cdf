package tools

import (
	"fmt"
	"strings"

	"hotel-assistant/internal/knowledge"
)

// LinkCategory maps source keywords to the sentence that presents the link.
type LinkCategory struct {
	Name     string
	Keywords []string
	Template string
}

// GenericLinkTemplate presents a top source URL that matches no category.
const GenericLinkTemplate = "🔗 You can read more about this [on our website](%s)."

// DefaultLinkTable is checked in order; earlier categories win.
var DefaultLinkTable = []LinkCategory{
	{
		Name:     "environment",
		Keywords: []string{"environment", "eco", "green", "sustainab"},
		Template: "🌱 You can read more about this on our [Environmental Commitment page](%s).",
	},
	{
		Name:     "rooms",
		Keywords: []string{"rooms", "accommodation", "suites", "staying"},
		Template: "🛏️ You can check out more details on our [Rooms page](%s).",
	},
	{
		Name:     "breakfast",
		Keywords: []string{"breakfast", "dining", "food", "menu", "amenities", "facilities", "services", "features"},
		Template: "🍳 You can find details about [Breakfast and Guest Amenities](%s).",
	},
	{
		Name:     "policy",
		Keywords: []string{"policy", "policies", "rules", "terms", "conditions", "pets"},
		Template: "📄 You can find more details on our [Hotel Policy page](%s).",
	},
	{
		Name:     "contact",
		Keywords: []string{"contact", "location", "address", "directions", "map"},
		Template: "📍 You can find details about [Contact and Location](%s).",
	},
}

// Categorize returns the first category whose keyword occurs in source.
func Categorize(table []LinkCategory, source string) (LinkCategory, bool) {
	s := strings.ToLower(source)
	if s == "" {
		return LinkCategory{}, false
	}
	for _, c := range table {
		for _, kw := range c.Keywords {
			if strings.Contains(s, kw) {
				return c, true
			}
		}
	}
	return LinkCategory{}, false
}

// SourceLink picks at most one link line for the passages. The top passage's
// source always wins when present: with its category template, or the generic
// one when it is a URL outside every category. Otherwise categories are
// scanned in table order and the first passage matching one supplies the link.
func SourceLink(table []LinkCategory, passages []knowledge.Passage) (string, bool) {
	if len(passages) == 0 {
		return "", false
	}
	top := passages[0].Source
	if c, ok := Categorize(table, top); ok {
		return fmt.Sprintf(c.Template, top), true
	}
	if isURL(top) {
		return fmt.Sprintf(GenericLinkTemplate, top), true
	}
	for _, c := range table {
		for _, p := range passages {
			if p.Source == "" {
				continue
			}
			if got, ok := Categorize([]LinkCategory{c}, p.Source); ok {
				return fmt.Sprintf(got.Template, p.Source), true
			}
		}
	}
	return "", false
}

func isURL(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "http://")
}
