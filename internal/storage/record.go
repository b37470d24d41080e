package storage

import "github.com/vovakirdan/t2048/internal/game"

// RecordFromResult converts a session result into a storable record.
func RecordFromResult(r game.Result) GameRecord {
	return GameRecord{
		Variant:  r.Variant,
		Player:   r.Player,
		Score:    r.Score,
		MaxTile:  r.MaxTile,
		Moves:    r.Moves,
		Seed:     r.Seed,
		MoveLog:  r.MoveLog,
		Duration: r.Duration,
	}
}
