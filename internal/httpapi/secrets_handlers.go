package httpapi

import (
	"encoding/json"
	"net/http"

	"careermatch-engine/internal/secrets"
)

type SecretsHandler struct{}

type setAdzunaReq struct {
	AppID  string `json:"app_id"`
	AppKey string `json:"app_key"`
}

func (h SecretsHandler) SetAdzunaCredentials(w http.ResponseWriter, r *http.Request) {
	var req setAdzunaReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", "invalid json")
		return
	}

	if err := secrets.SetAdzunaCredentials(req.AppID, req.AppKey); err != nil {
		WriteError(w, r, http.StatusBadRequest, "keyring_failed", "failed to store credentials: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h SecretsHandler) DeleteAdzunaCredentials(w http.ResponseWriter, r *http.Request) {
	if err := secrets.DeleteAdzunaCredentials(); err != nil {
		WriteError(w, r, http.StatusInternalServerError, "keyring_failed", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
