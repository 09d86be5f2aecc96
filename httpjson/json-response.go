package httpjson

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/praxis-dev/client/srvcerr"
)

// The Praxis backend speaks plain JSON: success responses are the bare
// resource, failures are {"detail": "<message>"} with a non-2xx status.
// The stub server reproduces that shape so the client wrapper and the
// error classifier see the same wire format in tests as in production.

type DetailResponse struct {
	Detail string `json:"detail"`
}

func WriteJson(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func WriteDetail(w http.ResponseWriter, status int, detail string) {
	WriteJson(w, status, DetailResponse{Detail: detail})
}

func HandleError(logger *slog.Logger, w http.ResponseWriter, err error) {
	srvcErr := &srvcerr.Error{}
	if errors.As(err, &srvcErr) {
		if srvcErr.DebugInfo() != nil {
			logger.Warn("service error", "error", err, "debug", srvcErr.DebugInfo())
		} else {
			logger.Warn("service error", "error", err)
		}
		if srvcErr.HttpStatusCode() == http.StatusInternalServerError {
			logger.Error("internal server error", "error", err)
		}
		WriteDetail(w, srvcErr.HttpStatusCode(), srvcErr.Error())
		return
	}
	logger.Error("internal server error", "error", err)
	WriteDetail(w, http.StatusInternalServerError,
		http.StatusText(http.StatusInternalServerError))
}
