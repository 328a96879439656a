package memory

import (
	"context"
	"sync"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/tournament"
)

type TournamentRepository struct {
	mu     sync.RWMutex
	items  map[int64]tournament.Tournament
	byName map[string]int64
	orders []int64
	nextID int64
}

func NewTournamentRepository() *TournamentRepository {
	return &TournamentRepository{
		items:  make(map[int64]tournament.Tournament),
		byName: make(map[string]int64),
		nextID: 1,
	}
}

func (r *TournamentRepository) List(_ context.Context) ([]tournament.Tournament, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Tournament, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *TournamentRepository) GetByID(_ context.Context, id int64) (tournament.Tournament, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.items[id]
	if !ok {
		return tournament.Tournament{}, false, nil
	}

	return t, true, nil
}

func (r *TournamentRepository) GetOrCreateByName(_ context.Context, name string, year int) (tournament.Tournament, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byName[name]; ok {
		return r.items[id], false, nil
	}

	t := tournament.Tournament{ID: r.nextID, Name: name, Year: year}
	r.nextID++
	r.items[t.ID] = t
	r.byName[t.Name] = t.ID
	r.orders = append(r.orders, t.ID)

	return t, true, nil
}
