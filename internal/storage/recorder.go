package storage

import (
	"github.com/charmbracelet/log"
)

// Recorder saves the final score of every finished session. It satisfies
// the game's presenter interface. A nil store only logs.
type Recorder struct {
	store  *Store
	gameID string
	player string
	logger *log.Logger
}

// NewRecorder creates a recorder for one player.
func NewRecorder(store *Store, gameID, player string, logger *log.Logger) *Recorder {
	if player == "" {
		player = AnonymousPlayer
	}
	return &Recorder{store: store, gameID: gameID, player: player, logger: logger}
}

// Report logs the score and stores it when it is worth keeping.
func (r *Recorder) Report(score int) {
	r.logger.Info("session over", "player", r.player, "score", score)
	if r.store == nil || score <= 0 {
		return
	}
	if _, err := r.store.SaveScore(r.gameID, r.player, score); err != nil {
		r.logger.Warn("could not save score", "error", err)
	}
}

// Best returns the player's best stored score, 0 without a store.
func (r *Recorder) Best() int {
	if r.store == nil {
		return 0
	}
	best, err := r.store.PlayerBest(r.gameID, r.player)
	if err != nil {
		r.logger.Warn("could not load best score", "error", err)
		return 0
	}
	return best
}
