package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/truenorthdata/newsdash/pkg/models"
)

// stubFeeder serves canned articles per endpoint name, with optional
// per-endpoint panics and delays.
type stubFeeder struct {
	articles map[string][]models.Article
	panicOn  string
	delayOn  string
	delay    time.Duration
}

func (s *stubFeeder) FetchFeed(ctx context.Context, endpoint models.Feed) []models.Article {
	if endpoint.Name == s.panicOn {
		panic("stub feeder exploded")
	}
	if endpoint.Name == s.delayOn {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil
		}
	}
	return s.articles[endpoint.Name]
}

func nArticles(source string, n int) []models.Article {
	out := make([]models.Article, n)
	for i := range out {
		out[i] = models.Article{
			Title:     fmt.Sprintf("%s-%d", source, i),
			Published: "2023-05-01",
			Source:    source,
		}
	}
	return out
}

func TestFetchAllCombinesEndpoints(t *testing.T) {
	feeder := &stubFeeder{articles: map[string][]models.Article{
		"a": nArticles("a", 3),
		"b": nArticles("b", 2),
		"c": nArticles("c", 4),
	}}
	agg := NewAggregator(feeder, 10, discardLogger())

	endpoints := []models.Feed{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	all := agg.FetchAll(context.Background(), endpoints)

	if len(all) != 9 {
		t.Fatalf("FetchAll returned %d articles, want 9", len(all))
	}
	counts := map[string]int{}
	for _, a := range all {
		counts[a.Source]++
	}
	if counts["a"] != 3 || counts["b"] != 2 || counts["c"] != 4 {
		t.Errorf("per-source counts = %v", counts)
	}
}

// One panicking task contributes nothing and must not disturb its siblings;
// the total row count stays deterministic across completion orders.
func TestFetchAllIsolatesFailedTask(t *testing.T) {
	feeder := &stubFeeder{
		articles: map[string][]models.Article{
			"a": nArticles("a", 3),
			"b": nArticles("b", 2),
		},
		panicOn: "bad",
	}
	agg := NewAggregator(feeder, 2, discardLogger())

	endpoints := []models.Feed{{Name: "a"}, {Name: "bad"}, {Name: "b"}}
	for i := 0; i < 5; i++ {
		all := agg.FetchAll(context.Background(), endpoints)
		if len(all) != 5 {
			t.Fatalf("run %d: FetchAll returned %d articles, want 5", i, len(all))
		}
	}
}

func TestFetchAllEmptyEndpointList(t *testing.T) {
	agg := NewAggregator(&stubFeeder{}, 10, discardLogger())
	if all := agg.FetchAll(context.Background(), nil); len(all) != 0 {
		t.Errorf("FetchAll(nil) = %v, want empty", all)
	}
}

// A slow endpoint must not hold the batch past its budget: collection fails
// open with whatever has arrived.
func TestFetchAllFailsOpenOnBudget(t *testing.T) {
	feeder := &stubFeeder{
		articles: map[string][]models.Article{
			"fast": nArticles("fast", 2),
			"slow": nArticles("slow", 2),
		},
		delayOn: "slow",
		delay:   5 * time.Second,
	}
	agg := NewAggregator(feeder, 2, discardLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	all := agg.FetchAll(ctx, []models.Feed{{Name: "fast"}, {Name: "slow"}})
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("FetchAll blocked for %v past the budget", elapsed)
	}
	for _, a := range all {
		if a.Source == "slow" {
			t.Errorf("slow endpoint leaked into result: %+v", a)
		}
	}
}

// End-to-end over real HTTP: of three endpoints, the failing one
// contributes nothing and the union of the other two comes back intact.
func TestFetchAllOverHTTP(t *testing.T) {
	good1 := rssServer(t, rssBody(`
    <item><title>g1</title><link>https://example.com/g1</link><pubDate>Mon, 01 May 2023 10:00:00 GMT</pubDate></item>`))
	good2 := rssServer(t, rssBody(`
    <item><title>g2a</title><link>https://example.com/g2a</link><pubDate>Tue, 02 May 2023 10:00:00 GMT</pubDate></item>
    <item><title>g2b</title><link>https://example.com/g2b</link><pubDate>Wed, 03 May 2023 10:00:00 GMT</pubDate></item>`))
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(bad.Close)

	fetcher := NewFetcher(5*time.Second, "newsdash-test", discardLogger())
	agg := NewAggregator(fetcher, 10, discardLogger())

	endpoints := []models.Feed{
		{URL: good1.URL, Name: "Good One"},
		{URL: bad.URL, Name: "Bad"},
		{URL: good2.URL, Name: "Good Two"},
	}
	all := agg.FetchAll(context.Background(), endpoints)

	if len(all) != 3 {
		t.Fatalf("FetchAll returned %d articles, want 3", len(all))
	}
	for _, a := range all {
		if a.Source == "Bad" {
			t.Errorf("failed endpoint contributed article %+v", a)
		}
	}
}
