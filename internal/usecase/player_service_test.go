package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
	"github.com/shrujal-srinath/GECC-Database/internal/infrastructure/repository/memory"
)

func newPlayerFixture() (*memory.PlayerRepository, *PlayerService) {
	players := memory.NewPlayerRepository()
	return players, NewPlayerService(players, memory.NewStatsRepository(players))
}

func TestCreatePlayerCleansName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, svc := newPlayerFixture()

	created, err := svc.CreatePlayer(ctx, player.Player{Name: "  ms   DHONI "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Ms Dhoni" {
		t.Fatalf("expected cleaned name, got %q", created.Name)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}
}

func TestCreatePlayerRejectsDuplicateName(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, svc := newPlayerFixture()

	if _, err := svc.CreatePlayer(ctx, player.Player{Name: "Ms Dhoni"}); err != nil {
		t.Fatalf("first create: %v", err)
	}

	// Spelling variants collapse to the same cleaned name.
	_, err := svc.CreatePlayer(ctx, player.Player{Name: "MS   dhoni"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for duplicate, got %v", err)
	}
}

func TestUpdatePlayerUnknownID(t *testing.T) {
	t.Parallel()

	_, svc := newPlayerFixture()
	_, err := svc.UpdatePlayer(context.Background(), player.Player{ID: 7, Name: "Nobody"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeletePlayer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	players, svc := newPlayerFixture()
	created, err := svc.CreatePlayer(ctx, player.Player{Name: "V Kohli"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.DeletePlayer(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, exists, _ := players.GetByID(ctx, created.ID); exists {
		t.Fatalf("player still present after delete")
	}
	if err := svc.DeletePlayer(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestSearchPlayersMatchesCaseInsensitively(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	_, svc := newPlayerFixture()
	for _, name := range []string{"Ms Dhoni", "V Kohli", "J Bumrah"} {
		if _, err := svc.CreatePlayer(ctx, player.Player{Name: name}); err != nil {
			t.Fatalf("seed %q: %v", name, err)
		}
	}

	got, err := svc.SearchPlayers(ctx, "dho")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Ms Dhoni" {
		t.Fatalf("unexpected search result: %+v", got)
	}

	all, err := svc.SearchPlayers(ctx, "  ")
	if err != nil {
		t.Fatalf("search empty: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("empty query must list everyone, got %d", len(all))
	}
}
