package news

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/truenorthdata/newsdash/internal/clean"
	"github.com/truenorthdata/newsdash/internal/config"
	"github.com/truenorthdata/newsdash/internal/feed"
	"github.com/truenorthdata/newsdash/internal/sections"
	"github.com/truenorthdata/newsdash/pkg/models"
)

// Aggregator is the fan-out half of the pipeline.
type Aggregator interface {
	FetchAll(ctx context.Context, endpoints []models.Feed) []models.Article
}

// Service runs the fetch → normalize pipeline and caches its result for the
// configured TTL. Downstream consumers read the returned table but never
// mutate it; each refresh supersedes the previous table wholesale.
type Service struct {
	cfg        *config.Config
	aggregator Aggregator
	normalizer *clean.Normalizer
	cache      *cache
	budget     time.Duration
	log        *slog.Logger
	now        func() time.Time
}

func NewService(cfg *config.Config, log *slog.Logger) (*Service, error) {
	fetchTimeout, err := cfg.Pipeline.GetFetchTimeout()
	if err != nil {
		return nil, fmt.Errorf("parsing fetch_timeout: %w", err)
	}
	budget, err := cfg.Pipeline.GetTotalBudget()
	if err != nil {
		return nil, fmt.Errorf("parsing total_budget: %w", err)
	}
	ttl, err := cfg.Pipeline.GetCacheTTL()
	if err != nil {
		return nil, fmt.Errorf("parsing cache_ttl: %w", err)
	}

	fetcher := feed.NewFetcher(fetchTimeout, cfg.Pipeline.UserAgent, log)
	return &Service{
		cfg:        cfg,
		aggregator: feed.NewAggregator(fetcher, cfg.Pipeline.Workers, log),
		normalizer: clean.New(log),
		cache:      newCache(ttl),
		budget:     budget,
		log:        log,
		now:        time.Now,
	}, nil
}

// News returns the current normalized table, recomputing it when the cached
// copy is older than the TTL. Pipeline failures never escape: the worst
// case is an empty table, which consumers present as "no data available".
func (s *Service) News(ctx context.Context) []models.NewsItem {
	items, _ := s.tables(ctx)
	return items
}

// Refresh busts the cache and runs the full pipeline synchronously: fan-out
// fetch under the wall-clock budget, then normalize into the recency window.
func (s *Service) Refresh(ctx context.Context) []models.NewsItem {
	items, _ := s.refresh(ctx)
	return items
}

// tables returns the windowed table and the all-dates table it degrades to,
// recomputing both when the cache has expired.
func (s *Service) tables(ctx context.Context) (items, all []models.NewsItem) {
	if items, all, ok := s.cache.get(s.now()); ok {
		return items, all
	}
	return s.refresh(ctx)
}

func (s *Service) refresh(ctx context.Context) (items, all []models.NewsItem) {
	start := s.now()
	ctx, cancel := context.WithTimeout(ctx, s.budget)
	defer cancel()

	raw := s.aggregator.FetchAll(ctx, s.endpoints())
	window := clean.WindowFor(s.cfg.Pipeline.Window, s.now())
	items = s.normalizer.Normalize(raw, window)
	all = s.normalizer.Normalize(raw, clean.Window{})

	s.log.Info("news table refreshed",
		slog.Int("raw_articles", len(raw)),
		slog.Int("items", len(items)),
		slog.Duration("duration", time.Since(start)),
	)

	s.cache.set(items, all, s.now())
	return items, all
}

// Invalidate drops the cached table; the next News call recomputes.
func (s *Service) Invalidate() {
	s.cache.invalidate()
}

// Sections partitions the current table by the configured section rules. A
// section whose windowed subset is empty falls back to its most recent rows
// regardless of window, so a stale feed still shows something.
func (s *Service) Sections(ctx context.Context) map[string][]models.NewsItem {
	items, all := s.tables(ctx)
	out := sections.Classify(items, s.cfg.Sections)
	for _, sc := range s.cfg.Sections {
		if len(out[sc.Name]) == 0 {
			out[sc.Name] = sections.Latest(all, sections.RuleOf(sc), sections.FallbackCount)
		}
	}
	return out
}

func (s *Service) endpoints() []models.Feed {
	feeds := make([]models.Feed, 0, len(s.cfg.Feeds))
	for _, f := range s.cfg.Feeds {
		feeds = append(feeds, models.Feed{URL: f.URL, Name: f.Name})
	}
	return feeds
}

// CountBySource reports how many items each source contributed, backing the
// feed-count diagnostics view.
func CountBySource(items []models.NewsItem) map[string]int {
	counts := make(map[string]int, len(items))
	for _, item := range items {
		counts[item.Source]++
	}
	return counts
}
