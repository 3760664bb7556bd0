package pages

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/inkwell/content"
	"github.com/dmitrymomot/inkwell/newsletter"
	"github.com/dmitrymomot/inkwell/pkg/async"
)

// PageStore is the persistence surface the coordinator needs.
type PageStore interface {
	Get(ctx context.Context, kind content.Kind) (json.RawMessage, error)
	Save(ctx context.Context, kind content.Kind, raw json.RawMessage) error
}

// Announcer dispatches announcement emails for one newly published item.
type Announcer interface {
	Announce(ctx context.Context, kind content.Kind, item content.Item) (newsletter.Result, error)
}

// Service coordinates admin page saves with subscriber announcements.
type Service struct {
	store     PageStore
	announcer Announcer
	log       *slog.Logger
}

// NewService creates the save-and-announce coordinator. A nil logger
// defaults to slog.Default().
func NewService(store PageStore, announcer Announcer, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, announcer: announcer, log: log}
}

// Get returns a page's stored content.
func (s *Service) Get(ctx context.Context, kind content.Kind) (json.RawMessage, error) {
	return s.store.Get(ctx, kind)
}

// Save persists a page save and returns the saved content for the admin's
// response. The returned error reflects the persistence write only.
//
// For notifying pages the prior content is snapshotted before the write, and
// when the page already existed the newly added items are announced in a
// goroutine detached from the request context. The very first save of a page
// never announces, so bulk-importing historical content cannot flood
// subscribers.
func (s *Service) Save(ctx context.Context, kind content.Kind, raw json.RawMessage) (json.RawMessage, error) {
	var before json.RawMessage
	existed := false

	if kind.Notifying() {
		prev, err := s.store.Get(ctx, kind)
		switch {
		case err == nil:
			before, existed = prev, true
		case errors.Is(err, ErrPageNotFound):
			// First-ever save: no diff, no announcements.
		default:
			return nil, err
		}
	}

	if err := s.store.Save(ctx, kind, raw); err != nil {
		return nil, err
	}

	if existed {
		fresh := content.NewItems(
			content.Collection(before, kind),
			content.Collection(raw, kind),
		)
		if len(fresh) > 0 {
			// The admin's response must never wait on announcement work.
			detached := context.WithoutCancel(ctx)
			async.Async(detached, fresh, func(ctx context.Context, items []content.Item) (struct{}, error) {
				s.announceAll(ctx, kind, items)
				return struct{}{}, nil
			})
		}
	}

	return raw, nil
}

// announceAll dispatches one announcement per new item, sequentially. A
// failed dispatch is logged and never affects sibling items.
func (s *Service) announceAll(ctx context.Context, kind content.Kind, items []content.Item) {
	for _, item := range items {
		result, err := s.announcer.Announce(ctx, kind, item)
		if err != nil {
			s.log.ErrorContext(ctx, "announcement dispatch failed",
				slog.String("page", string(kind)),
				slog.String("slug", item.CanonicalSlug()),
				slog.Any("error", err))
			continue
		}
		s.log.InfoContext(ctx, "announcement dispatched",
			slog.String("page", string(kind)),
			slog.String("slug", item.CanonicalSlug()),
			slog.Int("sent", result.Sent),
			slog.Int("total", result.Total))
	}
}
