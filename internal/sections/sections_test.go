package sections

import (
	"testing"
	"time"

	"github.com/truenorthdata/newsdash/internal/config"
	"github.com/truenorthdata/newsdash/pkg/models"
)

func item(source string, day int) models.NewsItem {
	return models.NewsItem{
		Title:  source + " article",
		Source: source,
		Date:   time.Date(2023, 5, day, 0, 0, 0, 0, time.UTC),
	}
}

func TestRuleKeywordMatch(t *testing.T) {
	rule := Rule{Keywords: []string{"AI"}}
	tests := []struct {
		source string
		want   bool
	}{
		{"OpenAI News", true},
		{"EIA Press Releases", false},
		{"AI Weekly", true},
		{"Plain Energy", false},
	}
	for _, tt := range tests {
		if got := rule.Matches(tt.source); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.source, got, tt.want)
		}
	}
}

func TestRuleSourceMembership(t *testing.T) {
	rule := Rule{Sources: []string{"CIO Dive", "TechCrunch Enterprise"}}
	if !rule.Matches("CIO Dive") {
		t.Error("exact member not matched")
	}
	if rule.Matches("CIO") {
		t.Error("partial source name matched exact-membership rule")
	}
}

func TestClassify(t *testing.T) {
	items := []models.NewsItem{
		item("OpenAI News", 1),
		item("EIA Press Releases", 2),
		item("CIO Dive", 3),
	}
	secs := []config.SectionConfig{
		{Name: "ai", Keywords: []string{"AI"}},
		{Name: "energy", Keywords: []string{"EIA", "Oil"}},
		{Name: "erp", Sources: []string{"CIO Dive"}},
		{Name: "empty", Keywords: []string{"Quantum"}},
	}

	got := Classify(items, secs)

	if len(got["ai"]) != 1 || got["ai"][0].Source != "OpenAI News" {
		t.Errorf("ai section = %+v", got["ai"])
	}
	if len(got["energy"]) != 1 || got["energy"][0].Source != "EIA Press Releases" {
		t.Errorf("energy section = %+v", got["energy"])
	}
	if len(got["erp"]) != 1 || got["erp"][0].Source != "CIO Dive" {
		t.Errorf("erp section = %+v", got["erp"])
	}
	if len(got["empty"]) != 0 {
		t.Errorf("empty section = %+v", got["empty"])
	}
}

// Sections are not exclusive: a source may satisfy several rules at once.
func TestClassifyNonExclusive(t *testing.T) {
	items := []models.NewsItem{item("Bloomberg AI Desk", 1)}
	secs := []config.SectionConfig{
		{Name: "ai", Keywords: []string{"AI"}},
		{Name: "energy", Keywords: []string{"Bloomberg"}},
	}

	got := Classify(items, secs)
	if len(got["ai"]) != 1 || len(got["energy"]) != 1 {
		t.Errorf("Classify = %+v, want item in both sections", got)
	}
}

func TestLatest(t *testing.T) {
	items := []models.NewsItem{
		item("OpenAI News", 3),
		item("OpenAI News", 9),
		item("EIA Press Releases", 5),
		item("OpenAI News", 1),
	}
	rule := Rule{Keywords: []string{"AI"}}

	got := Latest(items, rule, 2)
	if len(got) != 2 {
		t.Fatalf("Latest returned %d items, want 2", len(got))
	}
	if got[0].Date.Day() != 9 || got[1].Date.Day() != 3 {
		t.Errorf("Latest order = [%d, %d], want [9, 3]", got[0].Date.Day(), got[1].Date.Day())
	}
}
