package moderation

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r EditRequest) (EditRequest, error)
	GetByID(ctx context.Context, id int64) (EditRequest, bool, error)
	ListByStatus(ctx context.Context, status Status) ([]EditRequest, error)
	MarkApproved(ctx context.Context, id int64, at time.Time) error
}
