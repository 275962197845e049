package handlers

import (
	"Catalog/internal/service"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"

	maxBodyBytes = 1 << 20
)

// envelope — общий формат ответа API.
type envelope struct {
	Status  string `json:"status"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// respondData отвечает {"status":"success","data":{key: value}}.
func respondData(w http.ResponseWriter, status int, key string, value any) {
	writeJSON(w, status, envelope{Status: statusSuccess, Data: map[string]any{key: value}})
}

// respondList добавляет к ответу количество элементов в results.
func respondList(w http.ResponseWriter, key string, value any, n int) {
	writeJSON(w, http.StatusOK, envelope{Status: statusSuccess, Results: &n, Data: map[string]any{key: value}})
}

func respondMessage(w http.ResponseWriter, status int, msg string) {
	st := statusSuccess
	if status >= http.StatusBadRequest {
		st = statusFail
	}
	writeJSON(w, status, envelope{Status: st, Message: msg})
}

// respondNoContent — 204; тело у такого ответа клиенту не передаётся.
func respondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// respondError переводит ошибку сервиса в код ответа. Неизвестные ошибки логируются и отдаются как 500.
func respondError(w http.ResponseWriter, logger *zap.SugaredLogger, op string, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		respondMessage(w, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		respondMessage(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrBrandForbidden),
		errors.Is(err, service.ErrProductHidden),
		errors.Is(err, service.ErrProductEditForbidden),
		errors.Is(err, service.ErrProductDeleteForbidden):
		respondMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrBlockTargetNotFound),
		errors.Is(err, service.ErrBrandNotFound),
		errors.Is(err, service.ErrProductNotFound):
		respondMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrEmailTaken),
		errors.Is(err, service.ErrSelfBlock),
		errors.Is(err, service.ErrAlreadyBlocked),
		errors.Is(err, service.ErrNotBlocked),
		errors.Is(err, service.ErrBrandNameTaken),
		errors.Is(err, service.ErrBrandHasProducts),
		errors.Is(err, service.ErrBrandDoesNotExist),
		errors.Is(err, service.ErrCategoryNotInBrand):
		respondMessage(w, http.StatusBadRequest, err.Error())
	default:
		logger.Errorw(op+": service error", "error", err)
		respondMessage(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON читает тело запроса; неизвестные поля — ошибка.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("request body is empty")
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
