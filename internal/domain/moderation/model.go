package moderation

import (
	"fmt"
	"time"
)

// Field enumerates the player attributes an edit request may change. Keeping
// the set closed makes apply-on-approval type-safe instead of an open-ended
// field/value map.
type Field string

const (
	FieldName         Field = "name"
	FieldPlayingRole  Field = "playing_role"
	FieldBattingStyle Field = "batting_style"
	FieldBowlingStyle Field = "bowling_style"
)

var AllFields = map[Field]struct{}{
	FieldName:         {},
	FieldPlayingRole:  {},
	FieldBattingStyle: {},
	FieldBowlingStyle: {},
}

// Change is one proposed field edit.
type Change struct {
	Field Field
	Value string
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
)

// EditRequest is a proposed player edit held until explicit approval.
type EditRequest struct {
	ID          int64
	PlayerID    int64
	Changes     []Change
	Status      Status
	RequestedAt time.Time
	ApprovedAt  *time.Time
}

func (r EditRequest) Validate() error {
	if r.PlayerID <= 0 {
		return fmt.Errorf("edit request player id is required")
	}
	if len(r.Changes) == 0 {
		return fmt.Errorf("edit request needs at least one change")
	}
	for _, change := range r.Changes {
		if _, ok := AllFields[change.Field]; !ok {
			return fmt.Errorf("unknown editable field: %s", change.Field)
		}
	}
	return nil
}
