package clean

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/truenorthdata/newsdash/pkg/models"
)

// MaxDescriptionLen bounds normalized description text.
const MaxDescriptionLen = 500

// Normalizer turns raw aggregated articles into the date-filtered, sorted,
// plain-text news table.
type Normalizer struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Normalizer {
	return &Normalizer{log: log}
}

// StripHTML extracts the concatenated text content of an HTML-bearing
// string, discarding tags and attributes. Input that cannot be parsed is
// logged and returned unchanged rather than dropped.
func (n *Normalizer) StripHTML(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		n.log.Warn("failed to parse description markup", slog.Any("error", err))
		return raw
	}
	return doc.Text()
}

// Normalize applies the full cleanup pipeline: extract each row's date,
// drop unparseable rows, keep rows inside the window, sort by date
// descending, and replace descriptions with their stripped, truncated,
// newline-free text. The raw published field is not carried over.
func (n *Normalizer) Normalize(articles []models.Article, w Window) []models.NewsItem {
	if len(articles) == 0 {
		return nil
	}

	items := make([]models.NewsItem, 0, len(articles))
	for _, article := range articles {
		date, ok := ExtractDate(article.Published)
		if !ok {
			n.log.Debug("dropping article with unparseable date",
				slog.String("source", article.Source),
				slog.String("published", article.Published),
			)
			continue
		}
		if !w.Contains(date) {
			continue
		}
		items = append(items, models.NewsItem{
			Title:       article.Title,
			Link:        article.Link,
			Description: n.cleanDescription(article.Description),
			Source:      article.Source,
			Date:        date,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items
}

// cleanDescription strips markup, truncates to MaxDescriptionLen runes,
// then removes literal newlines, in that order.
func (n *Normalizer) cleanDescription(raw string) string {
	text := n.StripHTML(raw)
	if runes := []rune(text); len(runes) > MaxDescriptionLen {
		text = string(runes[:MaxDescriptionLen])
	}
	return strings.ReplaceAll(text, "\n", "")
}
