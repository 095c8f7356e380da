package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/internal/models"
	"github.com/iudanet/agendasync/internal/server/ledger"
	"github.com/iudanet/agendasync/internal/server/rules"
	"github.com/iudanet/agendasync/pkg/api"
)

// AgendaService - операции version ledger, которые использует handler
type AgendaService interface {
	UpdateAgenda(ctx context.Context, auth *rules.Auth, groupID, agendaID string, p ledger.Payload, expectedVersion *int64) (int64, error)
	UpdateAgendaForce(ctx context.Context, auth *rules.Auth, groupID, agendaID string, p ledger.Payload) (int64, error)
	FetchAgenda(ctx context.Context, auth *rules.Auth, groupID, agendaID string) (*models.Agenda, error)
	FetchAgendasSince(ctx context.Context, auth *rules.Auth, groupID string, since int64) ([]*models.Agenda, int64, error)
}

// AgendaHandler обрабатывает запросы к документам повестки
type AgendaHandler struct {
	logger  *slog.Logger
	service AgendaService
}

// NewAgendaHandler создает handler документов
func NewAgendaHandler(logger *slog.Logger, service AgendaService) *AgendaHandler {
	return &AgendaHandler{
		logger:  logger,
		service: service,
	}
}

// Update обрабатывает PUT /api/v1/groups/{group}/agendas/{agenda}
// CAS запись: 412 при несовпадении expected_version
func (h *AgendaHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.UpdateAgendaRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(h.logger, w, err)
		return
	}

	version, err := h.service.UpdateAgenda(ctx, AuthFromContext(ctx),
		r.PathValue("group"), r.PathValue("agenda"), toPayload(req.Payload), req.ExpectedVersion)
	if err != nil {
		handleServiceError(ctx, h.logger, w, "update agenda", err)
		return
	}

	sendJSON(h.logger, w, api.UpdateAgendaResponse{Version: version}, http.StatusOK)
}

// UpdateForce обрабатывает PUT /api/v1/groups/{group}/agendas/{agenda}/force
func (h *AgendaHandler) UpdateForce(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.UpdateAgendaForceRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(h.logger, w, err)
		return
	}

	version, err := h.service.UpdateAgendaForce(ctx, AuthFromContext(ctx),
		r.PathValue("group"), r.PathValue("agenda"), toPayload(req.Payload))
	if err != nil {
		handleServiceError(ctx, h.logger, w, "force update agenda", err)
		return
	}

	sendJSON(h.logger, w, api.UpdateAgendaResponse{Version: version}, http.StatusOK)
}

// Get обрабатывает GET /api/v1/groups/{group}/agendas/{agenda}
func (h *AgendaHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	a, err := h.service.FetchAgenda(ctx, AuthFromContext(ctx), r.PathValue("group"), r.PathValue("agenda"))
	if err != nil {
		handleServiceError(ctx, h.logger, w, "fetch agenda", err)
		return
	}

	sendJSON(h.logger, w, toAPIAgenda(a), http.StatusOK)
}

// List обрабатывает GET /api/v1/groups/{group}/agendas?since=N
func (h *AgendaHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var since int64
	if s := r.URL.Query().Get("since"); s != "" {
		var err error
		since, err = strconv.ParseInt(s, 10, 64)
		if err != nil {
			h.logger.WarnContext(ctx, "invalid since parameter", slog.String("since", s))
			WriteError(h.logger, w, apperr.InvalidArgument("invalid since parameter"))
			return
		}
	}

	agendas, cursor, err := h.service.FetchAgendasSince(ctx, AuthFromContext(ctx), r.PathValue("group"), since)
	if err != nil {
		handleServiceError(ctx, h.logger, w, "list agendas", err)
		return
	}

	resp := api.AgendaListResponse{
		Agendas: make([]api.Agenda, 0, len(agendas)),
		Cursor:  cursor,
	}
	for _, a := range agendas {
		resp.Agendas = append(resp.Agendas, toAPIAgenda(a))
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

func toPayload(p api.AgendaPayload) ledger.Payload {
	return ledger.Payload{
		Content: p.Content,
		Title:   p.Title,
		Date:    p.Date,
		Status:  p.Status,
	}
}

func toAPIAgenda(a *models.Agenda) api.Agenda {
	return api.Agenda{
		ID:        a.ID,
		GroupID:   a.GroupID,
		Title:     a.Title,
		Date:      a.Date,
		Status:    a.Status,
		Content:   a.Content,
		Version:   a.Version,
		Seq:       a.Seq,
		UpdatedAt: a.UpdatedAt,
		UpdatedBy: a.UpdatedBy,
	}
}
