package models

import "time"

// Feed is one subscribed endpoint: a URL publishing RSS/Atom articles
// paired with a human-readable source label.
type Feed struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

// Article is one raw entry as returned by a feed endpoint. Published holds
// the feed's date string verbatim; Description may carry HTML.
type Article struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Published   string `json:"published"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// NewsItem is a normalized article: Date is always a valid timestamp inside
// the recency window it was built with, Description is plain text.
type NewsItem struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Description string    `json:"description"`
	Source      string    `json:"source"`
	Date        time.Time `json:"date"`
}

// Comment is one row of the per-section comment board.
type Comment struct {
	ID        int64     `json:"id"`
	Section   string    `json:"section"`
	Comment   string    `json:"comment"`
	UserName  string    `json:"user_name"`
	CreatedAt time.Time `json:"created_at"`
}
