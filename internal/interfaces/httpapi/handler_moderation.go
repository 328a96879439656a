package httpapi

import (
	"net/http"
	"time"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/moderation"
)

type editRequestChangeDTO struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type submitEditRequestBody struct {
	Changes []editRequestChangeDTO `json:"changes" validate:"required,min=1,dive"`
}

type editRequestDTO struct {
	ID          int64                  `json:"id"`
	PlayerID    int64                  `json:"player_id"`
	Status      string                 `json:"status"`
	Changes     []editRequestChangeDTO `json:"changes"`
	RequestedAt time.Time              `json:"requested_at"`
	ApprovedAt  *time.Time             `json:"approved_at"`
}

func editRequestToDTO(req moderation.EditRequest) editRequestDTO {
	changes := make([]editRequestChangeDTO, 0, len(req.Changes))
	for _, change := range req.Changes {
		changes = append(changes, editRequestChangeDTO{Field: string(change.Field), Value: change.Value})
	}
	return editRequestDTO{
		ID:          req.ID,
		PlayerID:    req.PlayerID,
		Status:      string(req.Status),
		Changes:     changes,
		RequestedAt: req.RequestedAt,
		ApprovedAt:  req.ApprovedAt,
	}
}

func (h *Handler) SubmitEditRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitEditRequest")
	defer span.End()

	playerID, err := pathID(r, "playerID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var payload submitEditRequestBody
	if err := h.decodeRequest(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	changes := make([]moderation.Change, 0, len(payload.Changes))
	for _, change := range payload.Changes {
		changes = append(changes, moderation.Change{
			Field: moderation.Field(change.Field),
			Value: change.Value,
		})
	}

	created, err := h.moderationService.SubmitEditRequest(ctx, playerID, changes)
	if err != nil {
		h.logger.WarnContext(ctx, "submit edit request failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, editRequestToDTO(created))
}

func (h *Handler) ListEditRequests(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEditRequests")
	defer span.End()

	status := moderation.Status(r.URL.Query().Get("status"))
	if status == "" {
		status = moderation.StatusPending
	}

	requests, err := h.moderationService.ListEditRequests(ctx, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list edit requests failed", "status", string(status), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]editRequestDTO, 0, len(requests))
	for _, req := range requests {
		items = append(items, editRequestToDTO(req))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ApproveEditRequest(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ApproveEditRequest")
	defer span.End()

	requestID, err := pathID(r, "requestID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	approved, err := h.moderationService.ApproveEditRequest(ctx, requestID)
	if err != nil {
		h.logger.WarnContext(ctx, "approve edit request failed", "request_id", requestID, "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "edit request approved",
		"request_id", requestID,
		"player_id", approved.PlayerID,
	)
	writeSuccess(ctx, w, http.StatusOK, editRequestToDTO(approved))
}
