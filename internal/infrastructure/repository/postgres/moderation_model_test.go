package postgres

import (
	"testing"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/moderation"
)

func TestEncodeChangesDocumentShape(t *testing.T) {
	raw, err := encodeChanges([]moderation.Change{
		{Field: moderation.FieldName, Value: "Ms Dhoni"},
		{Field: moderation.FieldBattingStyle, Value: "Right Hand"},
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	want := `[{"field":"name","value":"Ms Dhoni"},{"field":"batting_style","value":"Right Hand"}]`
	if string(raw) != want {
		t.Fatalf("unexpected jsonb document:\n got %s\nwant %s", raw, want)
	}
}

func TestDecodeChanges(t *testing.T) {
	changes, err := decodeChanges([]byte(`[{"field":"playing_role","value":"Batter"}]`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("expected 1 change, got %d", len(changes))
	}
	if changes[0].Field != moderation.FieldPlayingRole || changes[0].Value != "Batter" {
		t.Fatalf("unexpected change: %+v", changes[0])
	}
}
