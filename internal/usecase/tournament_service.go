package usecase

import (
	"context"
	"fmt"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/tournament"
)

type TournamentService struct {
	tournamentRepo tournament.Repository
}

func NewTournamentService(tournamentRepo tournament.Repository) *TournamentService {
	return &TournamentService{tournamentRepo: tournamentRepo}
}

func (s *TournamentService) ListTournaments(ctx context.Context) ([]tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ListTournaments")
	defer span.End()

	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tournaments: %w", err)
	}
	return tournaments, nil
}

func (s *TournamentService) GetTournament(ctx context.Context, id int64) (tournament.Tournament, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.GetTournament")
	defer span.End()

	if id <= 0 {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament id is required", ErrInvalidInput)
	}

	t, exists, err := s.tournamentRepo.GetByID(ctx, id)
	if err != nil {
		return tournament.Tournament{}, fmt.Errorf("get tournament: %w", err)
	}
	if !exists {
		return tournament.Tournament{}, fmt.Errorf("%w: tournament=%d", ErrNotFound, id)
	}
	return t, nil
}
