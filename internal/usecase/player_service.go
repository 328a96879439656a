package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
	"github.com/shrujal-srinath/GECC-Database/internal/domain/stats"
)

type PlayerService struct {
	playerRepo player.Repository
	statsRepo  stats.Repository
}

func NewPlayerService(playerRepo player.Repository, statsRepo stats.Repository) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		statsRepo:  statsRepo,
	}
}

func (s *PlayerService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, id int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	if id <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}
	return p, nil
}

// GetPlayerStats returns the player's per-tournament stat rows, absent values
// left as nil.
func (s *PlayerService) GetPlayerStats(ctx context.Context, id int64) ([]stats.TournamentStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayerStats")
	defer span.End()

	if id <= 0 {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	rows, err := s.statsRepo.ListByPlayer(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list player stats: %w", err)
	}
	return rows, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	p.Name = player.CleanName(p.Name)
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, exists, err := s.playerRepo.GetByName(ctx, p.Name); err != nil {
		return player.Player{}, fmt.Errorf("check player name: %w", err)
	} else if exists {
		return player.Player{}, fmt.Errorf("%w: player %q already exists", ErrInvalidInput, p.Name)
	}

	created, err := s.playerRepo.Create(ctx, p)
	if err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return created, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	if p.ID <= 0 {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	p.Name = player.CleanName(p.Name)
	if err := p.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, exists, err := s.playerRepo.GetByID(ctx, p.ID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%d", ErrNotFound, p.ID)
	}

	if p.Name != current.Name {
		if _, taken, err := s.playerRepo.GetByName(ctx, p.Name); err != nil {
			return player.Player{}, fmt.Errorf("check player name: %w", err)
		} else if taken {
			return player.Player{}, fmt.Errorf("%w: player %q already exists", ErrInvalidInput, p.Name)
		}
	}

	if err := s.playerRepo.Update(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return p, nil
}

// DeletePlayer removes the player; stat rows follow via the schema's cascade.
func (s *PlayerService) DeletePlayer(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	if id <= 0 {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	_, exists, err := s.playerRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%d", ErrNotFound, id)
	}

	if err := s.playerRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

// SearchPlayers filters by a case-insensitive name fragment. Empty query
// behaves like ListPlayers.
func (s *PlayerService) SearchPlayers(ctx context.Context, query string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.SearchPlayers")
	defer span.End()

	query = strings.ToLower(strings.TrimSpace(query))

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	if query == "" {
		return players, nil
	}

	matched := make([]player.Player, 0, len(players))
	for _, p := range players {
		if strings.Contains(strings.ToLower(p.Name), query) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
