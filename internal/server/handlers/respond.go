package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/agendasync/internal/apperr"
	"github.com/iudanet/agendasync/pkg/api"
)

// sendJSON отправляет JSON ответ
func sendJSON(logger *slog.Logger, w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", slog.Any("error", err))
	}
}

// WriteError отправляет ErrorResponse. Ошибки вне apperr скрываются за internal
func WriteError(logger *slog.Logger, w http.ResponseWriter, err error) {
	code := apperr.CodeOf(err)
	status := apperr.HTTPStatus(code)

	msg := "internal server error"
	var appErr *apperr.Error
	if errors.As(err, &appErr) && code != apperr.CodeInternal {
		msg = appErr.Message
	}

	sendJSON(logger, w, api.ErrorResponse{
		Error:   http.StatusText(status),
		Code:    string(code),
		Message: msg,
	}, status)
}

// handleServiceError логирует ошибку сервиса и отправляет ответ
func handleServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, op string, err error) {
	switch apperr.CodeOf(err) {
	case apperr.CodeInternal:
		logger.ErrorContext(ctx, op+" failed", slog.Any("error", err))
	default:
		logger.WarnContext(ctx, op+" rejected", slog.String("error", err.Error()))
	}
	WriteError(logger, w, err)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperr.InvalidArgument("invalid request body")
	}
	return nil
}
