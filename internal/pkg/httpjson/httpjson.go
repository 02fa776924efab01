package httpjson

import (
	"encoding/json"
	"net/http"

	"order-service/internal/generated/dto"
)

const contentType = "application/json"

// Write отдаёт v как JSON с указанным статусом.
func Write(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// Message отдаёт ошибку в форме {"message": "..."}.
func Message(w http.ResponseWriter, status int, message string) error {
	return Write(w, status, dto.ErrorResponse{Message: message})
}
