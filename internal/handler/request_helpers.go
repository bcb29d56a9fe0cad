package handler

import (
	"encoding/json"
	"net/http"

	"github.com/yumbiru/yumvalues/internal/logger"
)

// ValidationErrorResponse lists the offending fields of a rejected body
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// On failure the 400 response is already written; the caller just returns.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}, opName string) bool {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Warn(LogMsgDecodeFailed, "operation", opName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return false
	}

	if err := GetValidator().ValidateStruct(dst); err != nil {
		log.Debug(LogMsgValidationFailed, "operation", opName, "error", err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return false
	}
	return true
}

// queryParam returns the named query value, or def when it is absent
func queryParam(r *http.Request, name, def string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return def
}
