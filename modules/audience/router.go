package audience

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RosterWriter is the roster mutation surface the public endpoints need.
type RosterWriter interface {
	Subscribe(ctx context.Context, address, name, source string) error
	Unsubscribe(ctx context.Context, address string) error
}

// Router exposes the public subscribe/unsubscribe endpoints. The unsubscribe
// route matches the personalized links embedded in announcement emails.
func Router(roster RosterWriter, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Post("/subscribe", subscribe(roster, log))
	r.Get("/unsubscribe", unsubscribe(roster, log))
	return r
}

type subscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func subscribe(roster RosterWriter, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req subscribeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}

		err := roster.Subscribe(r.Context(), req.Email, req.Name, "site")
		if errors.Is(err, ErrInvalidEmail) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid email address"})
			return
		}
		if err != nil {
			log.ErrorContext(r.Context(), "subscribe failed", slog.Any("error", err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to subscribe"})
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{"status": string(StatusSubscribed)})
	}
}

func unsubscribe(roster RosterWriter, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address := r.URL.Query().Get("email")

		err := roster.Unsubscribe(r.Context(), address)
		if errors.Is(err, ErrInvalidEmail) {
			http.Error(w, "missing email address", http.StatusBadRequest)
			return
		}
		if err != nil {
			log.ErrorContext(r.Context(), "unsubscribe failed", slog.Any("error", err))
			http.Error(w, "failed to unsubscribe", http.StatusInternalServerError)
			return
		}

		// Unsubscribe links are opened in a browser; answer with a tiny page
		// rather than JSON.
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<!DOCTYPE html><html><body style="font-family:Georgia,serif;text-align:center;padding:48px;"><p>You have been unsubscribed. Sorry to see you go.</p></body></html>`))
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
