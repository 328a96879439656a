package memory

import (
	"context"
	"sync"
	"time"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/moderation"
)

type ModerationRepository struct {
	mu     sync.RWMutex
	items  map[int64]moderation.EditRequest
	orders []int64
	nextID int64
}

func NewModerationRepository() *ModerationRepository {
	return &ModerationRepository{
		items:  make(map[int64]moderation.EditRequest),
		nextID: 1,
	}
}

func (r *ModerationRepository) Create(_ context.Context, req moderation.EditRequest) (moderation.EditRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req.ID = r.nextID
	r.nextID++
	req.Changes = append([]moderation.Change(nil), req.Changes...)
	r.items[req.ID] = req
	r.orders = append(r.orders, req.ID)

	return req, nil
}

func (r *ModerationRepository) GetByID(_ context.Context, id int64) (moderation.EditRequest, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	req, ok := r.items[id]
	if !ok {
		return moderation.EditRequest{}, false, nil
	}

	return req, true, nil
}

func (r *ModerationRepository) ListByStatus(_ context.Context, status moderation.Status) ([]moderation.EditRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []moderation.EditRequest
	for _, id := range r.orders {
		if req := r.items[id]; req.Status == status {
			out = append(out, req)
		}
	}

	return out, nil
}

func (r *ModerationRepository) MarkApproved(_ context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	req, ok := r.items[id]
	if !ok {
		return nil
	}
	req.Status = moderation.StatusApproved
	req.ApprovedAt = &at
	r.items[id] = req

	return nil
}
