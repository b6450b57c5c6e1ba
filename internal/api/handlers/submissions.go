package handlers

import (
	"encoding/json"
	"net/http"

	"tourist-route-service/internal/api/dto"
	"tourist-route-service/internal/api/middleware"
	"tourist-route-service/internal/domain"
	"tourist-route-service/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// SubmissionHandler exposes the content-trust endpoints: the quota
// pre-check, the submission write path, and per-POI listing.
type SubmissionHandler struct {
	Quota   *services.QuotaGuard
	Service *services.SubmissionService
	Logger  *zap.Logger
}

// Check is the reject-fast quota gate clients call before composing a
// submission. It reads and decides; it creates nothing.
func (h *SubmissionHandler) Check(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.Logger, domain.ErrUnauthenticated)
		return
	}

	var req dto.SubmissionCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Logger, domain.ErrInvalidInput)
		return
	}
	defer r.Body.Close()

	remaining, err := h.Quota.Check(r.Context(), userID, domain.ContentType(req.ContentType), req.POIID)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	writeJSON(w, r, h.Logger, http.StatusOK, dto.SubmissionCheckResponse{RemainingQuota: remaining})
}

// Create runs the full write path: quota gate, duplicate reservation,
// store write, moderation hand-off.
func (h *SubmissionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.Logger, domain.ErrUnauthenticated)
		return
	}

	var req dto.CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.Logger, domain.ErrInvalidInput)
		return
	}
	defer r.Body.Close()

	sub, err := h.Service.Create(r.Context(), userID, domain.ContentType(req.ContentType), req.POIID, req.Text)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	writeJSON(w, r, h.Logger, http.StatusCreated, toSubmissionResponse(sub))
}

// ListForPOI returns visible submissions of one type for a POI. Hidden
// content stays hidden until a moderator resolves it.
func (h *SubmissionHandler) ListForPOI(w http.ResponseWriter, r *http.Request) {
	poiID := mux.Vars(r)["id"]

	ct := domain.ContentType(r.URL.Query().Get("type"))
	if ct == "" {
		ct = domain.ContentTypeReview
	}

	subs, err := h.Service.ListForPOI(r.Context(), poiID, ct)
	if err != nil {
		writeError(w, r, h.Logger, err)
		return
	}

	res := dto.ListSubmissionsResponse{Submissions: make([]dto.SubmissionResponse, 0, len(subs))}
	for _, sub := range subs {
		res.Submissions = append(res.Submissions, toSubmissionResponse(sub))
	}

	writeJSON(w, r, h.Logger, http.StatusOK, res)
}

func toSubmissionResponse(sub domain.ContentSubmission) dto.SubmissionResponse {
	return dto.SubmissionResponse{
		ID:          sub.ID,
		ContentType: string(sub.Type),
		POIID:       sub.POIID,
		Text:        sub.Text,
		CreatedAt:   sub.CreatedAt,
	}
}
