package profile

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fintrack/fintrack/internal/auth"
)

// syncRequest is the optional POST body: extra metadata stored alongside
// the identity claims.
type syncRequest struct {
	Extra map[string]any `json:"extra"`
}

// SyncHandler handles POST /api/users/sync: verify the caller's ID token,
// upsert their profile and echo the stored record.
type SyncHandler struct {
	verifier auth.Verifier
	store    Store
	now      func() time.Time
}

// NewSyncHandler wires the handler to its token verifier and store.
func NewSyncHandler(verifier auth.Verifier, store Store) *SyncHandler {
	return &SyncHandler{verifier: verifier, store: store, now: time.Now}
}

func (h *SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	token, err := auth.ExtractTokenFromHeader(r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "missing or malformed authorization header")
		return
	}

	claims, err := h.verifier.VerifyToken(r.Context(), token)
	if err != nil {
		log.Printf("[Sync] token verification failed: %v", err)
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}
	if !claims.Verified {
		writeError(w, http.StatusForbidden, "email not verified")
		return
	}

	// Body is optional; anything present must decode.
	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	metadata := make(map[string]any, len(req.Extra)+1)
	for k, v := range req.Extra {
		metadata[k] = v
	}
	metadata["emailVerified"] = claims.Verified

	now := h.now().UTC()
	p := &Profile{
		UID:         claims.UID,
		Email:       claims.Email,
		DisplayName: claims.DisplayName,
		Provider:    "password",
		Metadata:    metadata,
		LastSeen:    now,
		CreatedAt:   now,
	}
	if err := h.store.UpsertProfile(r.Context(), p); err != nil {
		log.Printf("[Sync] upsert failed for user %s: %v", claims.UID, err)
		writeError(w, http.StatusInternalServerError, "failed to sync profile")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Printf("[Sync] response encode failed for user %s: %v", claims.UID, err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
