package audience

import (
	"time"

	"github.com/google/uuid"
)

// Status is a subscriber's lifecycle state.
type Status string

const (
	StatusSubscribed   Status = "subscribed"
	StatusUnsubscribed Status = "unsubscribed"
)

// Subscriber is one reader on the roster.
type Subscriber struct {
	ID             uuid.UUID  `json:"id"`
	Email          string     `json:"email"`
	Name           string     `json:"name,omitempty"`
	Status         Status     `json:"status"`
	Source         string     `json:"source,omitempty"`
	SubscribedAt   time.Time  `json:"subscribed_at"`
	UnsubscribedAt *time.Time `json:"unsubscribed_at,omitempty"`
}
