package pages

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/inkwell/content"
	"github.com/dmitrymomot/inkwell/newsletter"
	"github.com/dmitrymomot/inkwell/pkg/pg"
)

// Store persists page content as opaque JSON blobs keyed by page slug.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Get returns the stored content for a page, or ErrPageNotFound when the
// page has never been saved.
func (s *Store) Get(ctx context.Context, kind content.Kind) (json.RawMessage, error) {
	var raw json.RawMessage
	err := s.db.QueryRow(ctx,
		`SELECT content FROM page_settings WHERE slug = $1`,
		string(kind),
	).Scan(&raw)
	if pg.IsNotFoundError(err) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("pages: get %q: %w", kind, err)
	}
	return raw, nil
}

// Save upserts a page's content.
func (s *Store) Save(ctx context.Context, kind content.Kind, raw json.RawMessage) error {
	_, err := s.db.Exec(ctx,
		`INSERT INTO page_settings (slug, content, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (slug) DO UPDATE SET content = EXCLUDED.content, updated_at = now()`,
		string(kind), raw,
	)
	if err != nil {
		return fmt.Errorf("pages: save %q: %w", kind, err)
	}
	return nil
}

// EmailSettings loads and parses the email-settings page for the newsletter
// dispatcher. A page that was never saved parses as empty settings, which
// resolves to the environment fallback.
func (s *Store) EmailSettings(ctx context.Context) (newsletter.Settings, error) {
	raw, err := s.Get(ctx, content.KindEmailSettings)
	if errors.Is(err, ErrPageNotFound) {
		return newsletter.Settings{}, nil
	}
	if err != nil {
		return newsletter.Settings{}, err
	}
	return newsletter.ParseSettings(raw), nil
}
