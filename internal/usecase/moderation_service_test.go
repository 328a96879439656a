package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/moderation"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
	"github.com/shrujal-srinath/GECC-Database/internal/infrastructure/repository/memory"
)

func newModerationFixture(ctx context.Context, t *testing.T) (*memory.PlayerRepository, *ModerationService, player.Player) {
	t.Helper()

	players := memory.NewPlayerRepository()
	p, err := players.Create(ctx, player.Player{Name: "Ms Dhoni", PlayingRole: "Wicketkeeper"})
	if err != nil {
		t.Fatalf("seed player: %v", err)
	}

	return players, NewModerationService(memory.NewModerationRepository(), players), p
}

func TestSubmitEditRequestStoresPending(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, svc, p := newModerationFixture(ctx, t)

	req, err := svc.SubmitEditRequest(ctx, p.ID, []moderation.Change{
		{Field: moderation.FieldPlayingRole, Value: "Batter"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	if req.Status != moderation.StatusPending {
		t.Fatalf("expected pending status, got %s", req.Status)
	}
	if req.RequestedAt.IsZero() {
		t.Fatalf("expected requested_at to be set")
	}
	if req.ApprovedAt != nil {
		t.Fatalf("approved_at must be empty on submit")
	}

	pending, err := svc.ListEditRequests(ctx, moderation.StatusPending)
	if err != nil {
		t.Fatalf("list pending: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != req.ID {
		t.Fatalf("pending list mismatch: %+v", pending)
	}
}

func TestSubmitEditRequestRejectsUnknownField(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, svc, p := newModerationFixture(ctx, t)

	_, err := svc.SubmitEditRequest(ctx, p.ID, []moderation.Change{
		{Field: "shoe_size", Value: "11"},
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSubmitEditRequestUnknownPlayer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, svc, _ := newModerationFixture(ctx, t)

	_, err := svc.SubmitEditRequest(ctx, 99, []moderation.Change{
		{Field: moderation.FieldPlayingRole, Value: "Batter"},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestApproveEditRequestAppliesChanges(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, svc, p := newModerationFixture(ctx, t)

	req, err := svc.SubmitEditRequest(ctx, p.ID, []moderation.Change{
		{Field: moderation.FieldName, Value: "m s   dhoni"},
		{Field: moderation.FieldBattingStyle, Value: "Right Hand"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	approved, err := svc.ApproveEditRequest(ctx, req.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != moderation.StatusApproved || approved.ApprovedAt == nil {
		t.Fatalf("approval not recorded: %+v", approved)
	}

	got, _, err := players.GetByID(ctx, p.ID)
	if err != nil {
		t.Fatalf("get player: %v", err)
	}
	if got.Name != "M S Dhoni" {
		t.Fatalf("name change must go through cleaning, got %q", got.Name)
	}
	if got.BattingStyle != "Right Hand" {
		t.Fatalf("batting style not applied: %+v", got)
	}
	if got.PlayingRole != "Wicketkeeper" {
		t.Fatalf("untouched fields must survive approval: %+v", got)
	}
}

func TestApproveEditRequestTwice(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, svc, p := newModerationFixture(ctx, t)

	req, err := svc.SubmitEditRequest(ctx, p.ID, []moderation.Change{
		{Field: moderation.FieldPlayingRole, Value: "Batter"},
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.ApproveEditRequest(ctx, req.ID); err != nil {
		t.Fatalf("first approve: %v", err)
	}

	_, err = svc.ApproveEditRequest(ctx, req.ID)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("second approve must be rejected, got %v", err)
	}
}

func TestApproveEditRequestUnknownID(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, svc, _ := newModerationFixture(ctx, t)

	_, err := svc.ApproveEditRequest(ctx, 1234)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
