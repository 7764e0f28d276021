package entity

import (
	"github.com/pkg/errors"

	"github.com/pavanmanishd/framearena"
)

const (
	PlayerName  = "Player1"
	PlayerX     = 100
	PlayerY     = 200
	EnemyPrefix = "Enemy"
	EnemyStepX  = 50
	EnemyStepY  = 30
)

// Wave is the set of entities spawned for a single frame.
type Wave struct {
	Player  *Entity
	Enemies []Entity
}

// SpawnWave allocates a player and a batch of enemies from a and initializes
// all of them. Enemy i is placed at (50i, 30i) and named Enemy<i>.
//
// If the enemy batch does not fit, the error matches framearena.ErrOutOfSpace
// and the returned wave still carries the player, which stays allocated until
// the arena is reset.
func SpawnWave(a *framearena.Arena, enemies int) (Wave, error) {
	var w Wave
	player, err := New(a)
	if err != nil {
		return w, errors.Wrap(err, "allocating player")
	}
	player.Place(PlayerX, PlayerY, PlayerName)
	w.Player = player

	batch, err := NewBatch(a, enemies)
	if err != nil {
		return w, errors.Wrapf(err, "allocating %d enemies", enemies)
	}
	placeEnemies(batch)
	w.Enemies = batch
	return w, nil
}

// SpawnWaveHeap runs the same workload on the Go heap.
func SpawnWaveHeap(enemies int) Wave {
	player := new(Entity)
	player.Place(PlayerX, PlayerY, PlayerName)
	batch := make([]Entity, enemies)
	placeEnemies(batch)
	return Wave{Player: player, Enemies: batch}
}

func placeEnemies(batch []Entity) {
	for i := range batch {
		e := &batch[i]
		e.X = float32(i) * EnemyStepX
		e.Y = float32(i) * EnemyStepY
		e.SetIndexedName(EnemyPrefix, i)
	}
}
