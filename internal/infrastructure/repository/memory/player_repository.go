package memory

import (
	"context"
	"sync"

	"github.com/shrujal-srinath/GECC-Database/internal/domain/player"
)

type PlayerRepository struct {
	mu     sync.RWMutex
	items  map[int64]player.Player
	byName map[string]int64
	orders []int64
	nextID int64
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{
		items:  make(map[int64]player.Player),
		byName: make(map[string]int64),
		nextID: 1,
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[id]
	if !ok {
		return player.Player{}, false, nil
	}

	return p, true, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byName[name]
	if !ok {
		return player.Player{}, false, nil
	}

	return r.items[id], true, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) (player.Player, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.createLocked(p), nil
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	current, ok := r.items[p.ID]
	if !ok {
		return nil
	}
	if current.Name != p.Name {
		delete(r.byName, current.Name)
		r.byName[p.Name] = p.ID
	}
	r.items[p.ID] = p

	return nil
}

func (r *PlayerRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[id]
	if !ok {
		return nil
	}
	delete(r.items, id)
	delete(r.byName, p.Name)
	for i, existing := range r.orders {
		if existing == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func (r *PlayerRepository) GetOrCreateByName(_ context.Context, name string) (player.Player, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.byName[name]; ok {
		return r.items[id], false, nil
	}

	return r.createLocked(player.Player{Name: name}), true, nil
}

func (r *PlayerRepository) createLocked(p player.Player) player.Player {
	p.ID = r.nextID
	r.nextID++
	r.items[p.ID] = p
	r.byName[p.Name] = p.ID
	r.orders = append(r.orders, p.ID)

	return p
}
