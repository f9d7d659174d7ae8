package feed

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/truenorthdata/newsdash/pkg/models"
)

// Placeholders for entry fields the source feed left empty.
const (
	NoTitle       = "No Title"
	NoLink        = "No Link"
	NoDate        = "No Date"
	NoDescription = "No Description"
)

type Fetcher struct {
	parser *gofeed.Parser
	log    *slog.Logger
}

func NewFetcher(timeout time.Duration, userAgent string, log *slog.Logger) *Fetcher {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = userAgent
	return &Fetcher{
		parser: parser,
		log:    log,
	}
}

// FetchFeed retrieves and parses one endpoint into raw articles. A bad
// endpoint never aborts the batch: any failure is logged and yields an
// empty slice. No retries at this layer.
func (f *Fetcher) FetchFeed(ctx context.Context, endpoint models.Feed) []models.Article {
	parsed, err := f.parser.ParseURLWithContext(endpoint.URL, ctx)
	if err != nil {
		f.log.Warn("feed fetch failed",
			slog.String("source", endpoint.Name),
			slog.String("url", endpoint.URL),
			slog.Any("error", err),
		)
		return nil
	}

	articles := make([]models.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		articles = append(articles, convertItem(item, endpoint.Name))
	}

	f.log.Debug("feed fetched",
		slog.String("source", endpoint.Name),
		slog.Int("items", len(articles)),
	)
	return articles
}

// convertItem maps a gofeed item to a raw article, filling defaults for
// absent fields. Atom entries without a published date fall back to their
// updated date.
func convertItem(item *gofeed.Item, source string) models.Article {
	article := models.Article{
		Title:       item.Title,
		Link:        item.Link,
		Published:   item.Published,
		Description: item.Description,
		Source:      source,
	}
	if article.Published == "" {
		article.Published = item.Updated
	}

	if article.Title == "" {
		article.Title = NoTitle
	}
	if article.Link == "" {
		article.Link = NoLink
	}
	if article.Published == "" {
		article.Published = NoDate
	}
	if article.Description == "" {
		article.Description = NoDescription
	}
	return article
}
