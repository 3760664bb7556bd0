package pages

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/inkwell/content"
)

// maxPayloadBytes bounds admin save payloads; page content is form-sized
// JSON, not uploads.
const maxPayloadBytes = 1 << 20

// Router exposes the admin console's page-settings endpoints.
func Router(svc *Service, log *slog.Logger) chi.Router {
	if log == nil {
		log = slog.Default()
	}

	r := chi.NewRouter()
	r.Get("/pages/{slug}", getPage(svc))
	r.Put("/pages/{slug}", savePage(svc, log))
	return r
}

func getPage(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := content.ParseKind(chi.URLParam(r, "slug"))
		if err != nil {
			writeError(w, http.StatusNotFound, "unknown page")
			return
		}

		raw, err := svc.Get(r.Context(), kind)
		if errors.Is(err, ErrPageNotFound) {
			writeError(w, http.StatusNotFound, "page not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load page")
			return
		}

		writeJSON(w, http.StatusOK, raw)
	}
}

func savePage(svc *Service, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		kind, err := content.ParseKind(chi.URLParam(r, "slug"))
		if err != nil {
			writeError(w, http.StatusNotFound, "unknown page")
			return
		}

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxPayloadBytes))
		if err != nil {
			writeError(w, http.StatusBadRequest, "failed to read payload")
			return
		}
		if !json.Valid(body) {
			writeError(w, http.StatusBadRequest, ErrInvalidPayload.Error())
			return
		}

		saved, err := svc.Save(r.Context(), kind, body)
		if err != nil {
			log.ErrorContext(r.Context(), "page save failed",
				slog.String("page", string(kind)),
				slog.Any("error", err))
			writeError(w, http.StatusInternalServerError, "failed to save page")
			return
		}

		writeJSON(w, http.StatusOK, saved)
	}
}

func writeJSON(w http.ResponseWriter, status int, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	writeJSON(w, status, body)
}
