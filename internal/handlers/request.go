package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/GregMSThompson/ledger-backend/internal/errs"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errs.NewValidationError("invalid request body")
	}
	return nil
}
