package audience

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/inkwell/newsletter"
	"github.com/dmitrymomot/inkwell/pkg/email"
)

// Store persists the subscriber roster in Postgres.
type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Subscribe adds a reader to the roster. Subscribing an address that is
// already on the roster re-activates it, so an unsubscribed reader can come
// back through the same form.
func (s *Store) Subscribe(ctx context.Context, address, name, source string) error {
	address = strings.ToLower(strings.TrimSpace(address))
	if !email.IsValidAddress(address) {
		return ErrInvalidEmail
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO subscribers (id, email, name, status, source, subscribed_at)
		 VALUES ($1, $2, $3, $4, $5, now())
		 ON CONFLICT (email) DO UPDATE
		 SET status = EXCLUDED.status, name = EXCLUDED.name, subscribed_at = now(), unsubscribed_at = NULL`,
		uuid.New(), address, name, StatusSubscribed, source,
	)
	if err != nil {
		return fmt.Errorf("audience: subscribe: %w", err)
	}
	return nil
}

// Unsubscribe marks a reader as unsubscribed. Unknown addresses are a no-op
// so unsubscribe links stay idempotent.
func (s *Store) Unsubscribe(ctx context.Context, address string) error {
	address = strings.ToLower(strings.TrimSpace(address))
	if address == "" {
		return ErrInvalidEmail
	}

	_, err := s.db.Exec(ctx,
		`UPDATE subscribers SET status = $1, unsubscribed_at = now() WHERE email = $2`,
		StatusUnsubscribed, address,
	)
	if err != nil {
		return fmt.Errorf("audience: unsubscribe: %w", err)
	}
	return nil
}

// ListSubscribed returns every reader currently receiving announcements.
func (s *Store) ListSubscribed(ctx context.Context) ([]Subscriber, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, email, COALESCE(name, ''), status, COALESCE(source, ''), subscribed_at, unsubscribed_at
		 FROM subscribers
		 WHERE status = $1
		 ORDER BY subscribed_at`,
		StatusSubscribed,
	)
	if err != nil {
		return nil, fmt.Errorf("audience: list subscribed: %w", err)
	}
	defer rows.Close()

	var subscribers []Subscriber
	for rows.Next() {
		var sub Subscriber
		if err := rows.Scan(&sub.ID, &sub.Email, &sub.Name, &sub.Status, &sub.Source, &sub.SubscribedAt, &sub.UnsubscribedAt); err != nil {
			return nil, fmt.Errorf("audience: scan subscriber: %w", err)
		}
		subscribers = append(subscribers, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("audience: list subscribed: %w", err)
	}

	return subscribers, nil
}

// Roster adapts the store to the newsletter dispatcher's recipient listing.
type Roster struct {
	store *Store
}

func NewRoster(store *Store) *Roster {
	return &Roster{store: store}
}

func (r *Roster) ListSubscribed(ctx context.Context) ([]newsletter.Recipient, error) {
	subscribers, err := r.store.ListSubscribed(ctx)
	if err != nil {
		return nil, err
	}

	recipients := make([]newsletter.Recipient, 0, len(subscribers))
	for _, sub := range subscribers {
		recipients = append(recipients, newsletter.Recipient{Email: sub.Email, Name: sub.Name})
	}
	return recipients, nil
}
