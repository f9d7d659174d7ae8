package sections

import (
	"sort"
	"strings"

	"github.com/truenorthdata/newsdash/internal/config"
	"github.com/truenorthdata/newsdash/pkg/models"
)

// FallbackCount is how many rows a section shows when its windowed subset
// is empty and the consumer falls back to older content.
const FallbackCount = 10

// Rule decides whether a source label belongs to a section: exact
// membership in Sources, or containing any of Keywords. Rules are not
// exclusive across sections.
type Rule struct {
	Sources  []string
	Keywords []string
}

func RuleOf(sc config.SectionConfig) Rule {
	return Rule{Sources: sc.Sources, Keywords: sc.Keywords}
}

func (r Rule) Matches(source string) bool {
	for _, s := range r.Sources {
		if source == s {
			return true
		}
	}
	for _, kw := range r.Keywords {
		if strings.Contains(source, kw) {
			return true
		}
	}
	return false
}

// Classify partitions items into the configured sections. An item appears
// in every section whose rule matches its source, and possibly in none; the
// input order is preserved within each section.
func Classify(items []models.NewsItem, secs []config.SectionConfig) map[string][]models.NewsItem {
	out := make(map[string][]models.NewsItem, len(secs))
	for _, sc := range secs {
		out[sc.Name] = Filter(items, RuleOf(sc))
	}
	return out
}

// Filter returns the items whose source matches rule.
func Filter(items []models.NewsItem, rule Rule) []models.NewsItem {
	var matched []models.NewsItem
	for _, item := range items {
		if rule.Matches(item.Source) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Latest returns the n most recent items matching rule regardless of any
// recency window: the degraded-but-nonempty display policy for sections
// whose windowed subset came up empty.
func Latest(items []models.NewsItem, rule Rule, n int) []models.NewsItem {
	matched := Filter(items, rule)
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.After(matched[j].Date)
	})
	if len(matched) > n {
		matched = matched[:n]
	}
	return matched
}
