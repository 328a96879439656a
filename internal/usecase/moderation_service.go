package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/moderation"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
)

// ModerationService owns the edit-request workflow: proposed player edits are
// stored pending and only touch the player when explicitly approved.
type ModerationService struct {
	moderationRepo moderation.Repository
	playerRepo     player.Repository
	now            func() time.Time
}

func NewModerationService(moderationRepo moderation.Repository, playerRepo player.Repository) *ModerationService {
	return &ModerationService{
		moderationRepo: moderationRepo,
		playerRepo:     playerRepo,
		now:            time.Now,
	}
}

func (s *ModerationService) SubmitEditRequest(ctx context.Context, playerID int64, changes []moderation.Change) (moderation.EditRequest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.SubmitEditRequest")
	defer span.End()

	req := moderation.EditRequest{
		PlayerID:    playerID,
		Changes:     changes,
		Status:      moderation.StatusPending,
		RequestedAt: s.now().UTC(),
	}
	if err := req.Validate(); err != nil {
		return moderation.EditRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	for _, change := range req.Changes {
		if change.Field == moderation.FieldName && strings.TrimSpace(change.Value) == "" {
			return moderation.EditRequest{}, fmt.Errorf("%w: player name cannot be cleared", ErrInvalidInput)
		}
	}

	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return moderation.EditRequest{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return moderation.EditRequest{}, fmt.Errorf("%w: player=%d", ErrNotFound, playerID)
	}

	created, err := s.moderationRepo.Create(ctx, req)
	if err != nil {
		return moderation.EditRequest{}, fmt.Errorf("create edit request: %w", err)
	}
	return created, nil
}

func (s *ModerationService) ListEditRequests(ctx context.Context, status moderation.Status) ([]moderation.EditRequest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.ListEditRequests")
	defer span.End()

	switch status {
	case moderation.StatusPending, moderation.StatusApproved:
	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}

	requests, err := s.moderationRepo.ListByStatus(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list edit requests: %w", err)
	}
	return requests, nil
}

// ApproveEditRequest applies a pending request's changes to the player and
// marks the request approved. Approving anything but a pending request is an
// input error, so a double approve cannot apply the changes twice.
func (s *ModerationService) ApproveEditRequest(ctx context.Context, requestID int64) (moderation.EditRequest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ModerationService.ApproveEditRequest")
	defer span.End()

	if requestID <= 0 {
		return moderation.EditRequest{}, fmt.Errorf("%w: request id is required", ErrInvalidInput)
	}

	req, exists, err := s.moderationRepo.GetByID(ctx, requestID)
	if err != nil {
		return moderation.EditRequest{}, fmt.Errorf("get edit request: %w", err)
	}
	if !exists {
		return moderation.EditRequest{}, fmt.Errorf("%w: edit request=%d", ErrNotFound, requestID)
	}
	if req.Status != moderation.StatusPending {
		return moderation.EditRequest{}, fmt.Errorf("%w: edit request %d is %s, not pending", ErrInvalidInput, requestID, req.Status)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, req.PlayerID)
	if err != nil {
		return moderation.EditRequest{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return moderation.EditRequest{}, fmt.Errorf("%w: player=%d", ErrNotFound, req.PlayerID)
	}

	for _, change := range req.Changes {
		switch change.Field {
		case moderation.FieldName:
			p.Name = player.CleanName(change.Value)
		case moderation.FieldPlayingRole:
			p.PlayingRole = change.Value
		case moderation.FieldBattingStyle:
			p.BattingStyle = change.Value
		case moderation.FieldBowlingStyle:
			p.BowlingStyle = change.Value
		}
	}
	if err := p.Validate(); err != nil {
		return moderation.EditRequest{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.playerRepo.Update(ctx, p); err != nil {
		return moderation.EditRequest{}, fmt.Errorf("apply edit request: %w", err)
	}

	approvedAt := s.now().UTC()
	if err := s.moderationRepo.MarkApproved(ctx, requestID, approvedAt); err != nil {
		return moderation.EditRequest{}, fmt.Errorf("mark edit request approved: %w", err)
	}

	req.Status = moderation.StatusApproved
	req.ApprovedAt = &approvedAt
	return req, nil
}
