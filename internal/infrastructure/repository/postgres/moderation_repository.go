package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/moderation"
	qb "github.com/shrujal-srinath/GECC-Database/internal/platform/querybuilder"
)

type ModerationRepository struct {
	db *sqlx.DB
}

var editRequestSelectColumns = []string{
	"id",
	"player_id",
	"status",
	"changes",
	"requested_at",
	"approved_at",
}

func NewModerationRepository(db *sqlx.DB) *ModerationRepository {
	return &ModerationRepository{db: db}
}

func (r *ModerationRepository) Create(ctx context.Context, req moderation.EditRequest) (moderation.EditRequest, error) {
	changes, err := encodeChanges(req.Changes)
	if err != nil {
		return moderation.EditRequest{}, err
	}

	query, args, err := qb.InsertModel("player_edit_requests", editRequestInsertModel{
		PlayerID:    req.PlayerID,
		Status:      string(req.Status),
		Changes:     changes,
		RequestedAt: req.RequestedAt,
	}, "RETURNING id")
	if err != nil {
		return moderation.EditRequest{}, fmt.Errorf("build insert edit request query: %w", err)
	}

	if err := r.db.GetContext(ctx, &req.ID, query, args...); err != nil {
		return moderation.EditRequest{}, fmt.Errorf("insert edit request: %w", err)
	}

	return req, nil
}

func (r *ModerationRepository) GetByID(ctx context.Context, id int64) (moderation.EditRequest, bool, error) {
	query, args, err := qb.Select(editRequestSelectColumns...).From("player_edit_requests").
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return moderation.EditRequest{}, false, fmt.Errorf("build select edit request query: %w", err)
	}

	var row editRequestTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return moderation.EditRequest{}, false, nil
		}
		return moderation.EditRequest{}, false, fmt.Errorf("select edit request: %w", err)
	}

	req, err := editRequestFromRow(row)
	if err != nil {
		return moderation.EditRequest{}, false, err
	}

	return req, true, nil
}

func (r *ModerationRepository) ListByStatus(ctx context.Context, status moderation.Status) ([]moderation.EditRequest, error) {
	query, args, err := qb.Select(editRequestSelectColumns...).From("player_edit_requests").
		Where(qb.Eq("status", string(status))).
		OrderBy("requested_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select edit requests query: %w", err)
	}

	var rows []editRequestTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select edit requests: %w", err)
	}

	out := make([]moderation.EditRequest, 0, len(rows))
	for _, row := range rows {
		req, err := editRequestFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}

	return out, nil
}

func (r *ModerationRepository) MarkApproved(ctx context.Context, id int64, at time.Time) error {
	query, args, err := qb.Update("player_edit_requests").
		Set("status", string(moderation.StatusApproved)).
		Set("approved_at", at).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build approve edit request query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("approve edit request id=%d: %w", id, err)
	}

	return nil
}
