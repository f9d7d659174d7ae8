package config

// DefaultFeeds is the curated list of subscribed endpoints. Each entry is
// independent: adding or removing one never requires touching anything else.
var DefaultFeeds = []FeedConfig{
	// AI industry
	{Name: "OpenAI News", URL: "https://openai.com/news/rss.xml"},
	{Name: "Anthropic News", URL: "https://www.anthropic.com/rss.xml"},
	{Name: "Google DeepMind Blog", URL: "https://deepmind.google/blog/rss.xml"},
	{Name: "MIT Technology Review - AI", URL: "https://www.technologyreview.com/topic/artificial-intelligence/feed"},
	{Name: "VentureBeat - Data and AI", URL: "https://venturebeat.com/category/ai/feed/"},

	// Fuel & energy
	{Name: "EIA Press Releases", URL: "https://www.eia.gov/rss/press_rss.xml"},
	{Name: "Oil & Gas Journal", URL: "https://www.ogj.com/rss"},
	{Name: "Reuters Energy", URL: "https://www.reutersagency.com/feed/?best-topics=energy"},
	{Name: "Bloomberg Energy", URL: "https://feeds.bloomberg.com/energy/news.rss"},
	{Name: "Colorado Traffic Alerts", URL: "https://www.codot.gov/news/rss"},

	// ERP & automation
	{Name: "TechCrunch Enterprise", URL: "https://techcrunch.com/category/enterprise/feed/"},
	{Name: "CIO Dive", URL: "https://www.ciodive.com/feeds/news/"},
	{Name: "Google Workspace Blog", URL: "https://workspace.google.com/blog/rss/"},
	{Name: "Intuit Developer Blog", URL: "https://blogs.intuit.com/feed/"},
	{Name: "Stack Overflow - Apps Script", URL: "https://stackoverflow.com/feeds/tag/google-apps-script"},
}

// DefaultSections mirrors the three reference dashboard sections. The AI and
// fuel sections match by source-label keyword, the ERP section by exact
// source membership; both rule kinds are supported on purpose.
var DefaultSections = []SectionConfig{
	{
		Name:    "ERP & Automation Feeds",
		Sources: []string{"TechCrunch Enterprise", "CIO Dive", "Google Workspace Blog", "Intuit Developer Blog", "Stack Overflow - Apps Script"},
	},
	{
		Name:     "AI Industry News",
		Keywords: []string{"AI", "Anthropic", "DeepMind", "OpenAI"},
	},
	{
		Name:     "Fuel & Energy News",
		Keywords: []string{"Oil", "Bloomberg", "Reuters", "EIA", "Colorado Traffic", "Colorado Weather", "DTN"},
	},
}
