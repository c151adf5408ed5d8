package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/api/shared"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/platform/logger"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
)

// StateSource provides the state as it is persisted.
type StateSource interface {
	Snapshot() *state.AppState
}

// StateHandler serves the persisted form of the application state.
type StateHandler struct {
	source StateSource
	logger *slog.Logger
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(source StateSource, log *slog.Logger) *StateHandler {
	if source == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("source cannot be nil for StateHandler")
	}
	if log == nil {
		log = slog.Default()
	}
	return &StateHandler{
		source: source,
		logger: log.With(slog.String("component", "state_handler")),
	}
}

// GetState handles GET /api/state. The optional domain query parameter
// narrows the response to one domain.
func (h *StateHandler) GetState(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	raw, err := json.Marshal(h.source.Snapshot())
	if err != nil {
		respondWithServiceError(w, r, err, "Failed to read state")
		return
	}

	domainKey := r.URL.Query().Get("domain")
	if domainKey == "" {
		shared.RespondWithRawJSON(w, r, http.StatusOK, raw)
		return
	}

	var domains map[string]json.RawMessage
	if err := json.Unmarshal(raw, &domains); err != nil {
		respondWithServiceError(w, r, err, "Failed to read state")
		return
	}
	section, ok := domains[domainKey]
	if !ok {
		respondWithServiceError(w, r, fmt.Errorf("%w: %s", state.ErrDomainMissing, domainKey), "Failed to read state")
		return
	}

	log.Debug("serving state domain", slog.String("domain", domainKey))
	shared.RespondWithRawJSON(w, r, http.StatusOK, section)
}
