package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/truenorthdata/newsdash/pkg/models"
)

// Feeder fetches one endpoint's entries.
type Feeder interface {
	FetchFeed(ctx context.Context, endpoint models.Feed) []models.Article
}

// Aggregator fans fetches out across a fixed worker pool and fans results
// back into one combined table. Tasks are fully isolated: no task can
// observe or influence another's outcome.
type Aggregator struct {
	fetcher Feeder
	workers int
	log     *slog.Logger
}

func NewAggregator(fetcher Feeder, workers int, log *slog.Logger) *Aggregator {
	if workers <= 0 {
		workers = 10
	}
	return &Aggregator{
		fetcher: fetcher,
		workers: workers,
		log:     log,
	}
}

// FetchAll submits one fetch task per endpoint to the pool and concatenates
// each task's articles in completion order. The table is returned when all
// tasks finish or when ctx expires, whichever comes first; collection fails
// open, dropping endpoints that have not answered within the budget.
func (a *Aggregator) FetchAll(ctx context.Context, endpoints []models.Feed) []models.Article {
	if len(endpoints) == 0 {
		return nil
	}

	jobs := make(chan models.Feed)
	results := make(chan []models.Article)

	var wg sync.WaitGroup
	for i := 0; i < a.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for endpoint := range jobs {
				a.run(ctx, endpoint, results)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, endpoint := range endpoints {
			select {
			case jobs <- endpoint:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []models.Article
	for {
		select {
		case batch, ok := <-results:
			if !ok {
				return all
			}
			all = append(all, batch...)
		case <-ctx.Done():
			a.log.Warn("fetch budget exhausted, returning partial table",
				slog.Int("articles", len(all)),
			)
			return all
		}
	}
}

// run executes one fetch task. A panicking fetch contributes an empty
// result and must not take down its siblings.
func (a *Aggregator) run(ctx context.Context, endpoint models.Feed, results chan<- []models.Article) {
	var articles []models.Article
	func() {
		defer func() {
			if r := recover(); r != nil {
				a.log.Error("fetch task panicked",
					slog.String("source", endpoint.Name),
					slog.Any("panic", r),
				)
				articles = nil
			}
		}()
		articles = a.fetcher.FetchFeed(ctx, endpoint)
	}()

	select {
	case results <- articles:
	case <-ctx.Done():
	}
}
