package postgres

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/moderation"
)

type editRequestTableModel struct {
	ID          int64      `db:"id"`
	PlayerID    int64      `db:"player_id"`
	Status      string     `db:"status"`
	Changes     []byte     `db:"changes"`
	RequestedAt time.Time  `db:"requested_at"`
	ApprovedAt  *time.Time `db:"approved_at"`
}

type editRequestInsertModel struct {
	PlayerID    int64     `db:"player_id"`
	Status      string    `db:"status"`
	Changes     []byte    `db:"changes"`
	RequestedAt time.Time `db:"requested_at"`
}

type changeDocument struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

func encodeChanges(changes []moderation.Change) ([]byte, error) {
	docs := make([]changeDocument, 0, len(changes))
	for _, change := range changes {
		docs = append(docs, changeDocument{Field: string(change.Field), Value: change.Value})
	}
	raw, err := sonic.Marshal(docs)
	if err != nil {
		return nil, errors.Wrap(err, "encode edit request changes")
	}
	return raw, nil
}

func decodeChanges(raw []byte) ([]moderation.Change, error) {
	var docs []changeDocument
	if err := sonic.Unmarshal(raw, &docs); err != nil {
		return nil, errors.Wrap(err, "decode edit request changes")
	}
	out := make([]moderation.Change, 0, len(docs))
	for _, doc := range docs {
		out = append(out, moderation.Change{Field: moderation.Field(doc.Field), Value: doc.Value})
	}
	return out, nil
}

func editRequestFromRow(row editRequestTableModel) (moderation.EditRequest, error) {
	changes, err := decodeChanges(row.Changes)
	if err != nil {
		return moderation.EditRequest{}, err
	}
	return moderation.EditRequest{
		ID:          row.ID,
		PlayerID:    row.PlayerID,
		Changes:     changes,
		Status:      moderation.Status(row.Status),
		RequestedAt: row.RequestedAt,
		ApprovedAt:  row.ApprovedAt,
	}, nil
}
