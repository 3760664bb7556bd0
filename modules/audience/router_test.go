package audience_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inkwell/modules/audience"
)

type mockRoster struct {
	mock.Mock
}

func (m *mockRoster) Subscribe(ctx context.Context, address, name, source string) error {
	args := m.Called(ctx, address, name, source)
	return args.Error(0)
}

func (m *mockRoster) Unsubscribe(ctx context.Context, address string) error {
	args := m.Called(ctx, address)
	return args.Error(0)
}

func TestRouter_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("subscribes a reader", func(t *testing.T) {
		t.Parallel()

		roster := new(mockRoster)
		roster.On("Subscribe", mock.Anything, "reader@example.com", "Reader", "site").Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/subscribe",
			strings.NewReader(`{"email":"reader@example.com","name":"Reader"}`))
		rec := httptest.NewRecorder()
		audience.Router(roster, nil).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "subscribed")
		roster.AssertExpectations(t)
	})

	t.Run("rejects invalid email", func(t *testing.T) {
		t.Parallel()

		roster := new(mockRoster)
		roster.On("Subscribe", mock.Anything, "nope", "", "site").Return(audience.ErrInvalidEmail)

		req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(`{"email":"nope"}`))
		rec := httptest.NewRecorder()
		audience.Router(roster, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects malformed payload", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(`{broken`))
		rec := httptest.NewRecorder()
		audience.Router(new(mockRoster), nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		t.Parallel()

		roster := new(mockRoster)
		roster.On("Subscribe", mock.Anything, "reader@example.com", "", "site").Return(errors.New("db down"))

		req := httptest.NewRequest(http.MethodPost, "/subscribe", strings.NewReader(`{"email":"reader@example.com"}`))
		rec := httptest.NewRecorder()
		audience.Router(roster, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRouter_Unsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("unsubscribes via personalized link", func(t *testing.T) {
		t.Parallel()

		roster := new(mockRoster)
		roster.On("Unsubscribe", mock.Anything, "r@x.com").Return(nil)

		req := httptest.NewRequest(http.MethodGet, "/unsubscribe?email=r%40x.com", nil)
		rec := httptest.NewRecorder()
		audience.Router(roster, nil).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
		assert.Contains(t, rec.Body.String(), "unsubscribed")
		roster.AssertExpectations(t)
	})

	t.Run("missing email is a 400", func(t *testing.T) {
		t.Parallel()

		roster := new(mockRoster)
		roster.On("Unsubscribe", mock.Anything, "").Return(audience.ErrInvalidEmail)

		req := httptest.NewRequest(http.MethodGet, "/unsubscribe", nil)
		rec := httptest.NewRecorder()
		audience.Router(roster, nil).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
