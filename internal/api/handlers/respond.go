package handlers

import (
	"encoding/json"
	"net/http"
)

const msgInternalError = "internal server error"

// ErrorResponse единый формат ошибки для всех каналов
// Поле reason заполняется только для конфликтов бронирования
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
}

// DecodeJSON декодирует тело запроса в переданную структуру
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// RespondJSON отправляет JSON ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError отправляет ошибку с указанным статусом и сообщением
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Success: false, Error: message})
}

// RespondBadRequest отправляет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondNotFound отправляет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondConflict отправляет 409 Conflict с причиной недоступности слота
func RespondConflict(w http.ResponseWriter, message, reason string) {
	RespondJSON(w, http.StatusConflict, ErrorResponse{Success: false, Error: message, Reason: reason})
}

// RespondServiceUnavailable отправляет 503 Service Unavailable
func RespondServiceUnavailable(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusServiceUnavailable, message)
}

// RespondInternalError отправляет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, msgInternalError)
}
