package debug

import (
	"sync/atomic"

	"github.com/spacehole-rogue/starfield/internal/game"
)

// Publisher hands snapshots from the UI thread to HTTP handlers. Only the
// UI thread publishes; handlers only read.
type Publisher struct {
	latest atomic.Pointer[game.Snapshot]
}

// Publish replaces the current snapshot.
func (p *Publisher) Publish(s *game.Snapshot) {
	p.latest.Store(s)
}

// Latest returns the most recent snapshot, or nil before the first publish.
func (p *Publisher) Latest() *game.Snapshot {
	return p.latest.Load()
}
