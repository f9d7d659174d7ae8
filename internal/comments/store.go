package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/truenorthdata/newsdash/pkg/models"
)

var (
	// ErrEmptyComment rejects blank submissions before any store round-trip.
	ErrEmptyComment = errors.New("comment cannot be empty")

	// ErrStoreUnavailable wraps failures reaching the comment store; callers
	// render it as a message, never a crash.
	ErrStoreUnavailable = errors.New("comment store unavailable")
)

// DefaultUserName is used when a comment arrives without one.
const DefaultUserName = "Anonymous"

// Store is the comment board client. The board is append-only from the
// pipeline's point of view: single-row inserts and read-all-for-section
// queries, never read-modify-write.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

// New opens the comment database, creating it and its schema if needed.
func New(dbPath string, log *slog.Logger) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, log: log}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return s, nil
}

// initSchema creates the comments table if it doesn't exist
func (s *Store) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS comments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			section TEXT NOT NULL,
			comment TEXT NOT NULL,
			user_name TEXT NOT NULL DEFAULT 'Anonymous',
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_comments_section ON comments(section);
		CREATE INDEX IF NOT EXISTS idx_comments_created_at ON comments(created_at);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	return nil
}

// SaveComment appends one comment to a section's board. Empty or
// whitespace-only text is rejected locally with ErrEmptyComment; a store
// failure comes back wrapped in ErrStoreUnavailable.
func (s *Store) SaveComment(ctx context.Context, section, text, userName string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyComment
	}
	if userName == "" {
		userName = DefaultUserName
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO comments (section, comment, user_name, created_at) VALUES (?, ?, ?, ?)",
		section, text, userName, time.Now().UTC(),
	)
	if err != nil {
		s.log.Error("failed to save comment",
			slog.String("section", section),
			slog.Any("error", err),
		)
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return nil
}

// ListComments returns a section's comments, newest first.
func (s *Store) ListComments(ctx context.Context, section string) ([]models.Comment, error) {
	return s.list(ctx,
		"SELECT id, section, comment, user_name, created_at FROM comments WHERE section = ? ORDER BY created_at DESC, id DESC",
		section,
	)
}

// ListAll returns every comment across all sections, newest first.
func (s *Store) ListAll(ctx context.Context) ([]models.Comment, error) {
	return s.list(ctx,
		"SELECT id, section, comment, user_name, created_at FROM comments ORDER BY created_at DESC, id DESC",
	)
}

func (s *Store) list(ctx context.Context, query string, args ...any) ([]models.Comment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.log.Error("failed to query comments", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		if err := rows.Scan(&c.ID, &c.Section, &c.Comment, &c.UserName, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (s *Store) Close() error {
	return s.db.Close()
}
