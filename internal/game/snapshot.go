package game

// Snapshot captures the complete observable match state with primitive
// types only. Velocities and positions are scaled to integers so the hash
// is stable across platforms.
type Snapshot struct {
	Tick       uint64
	BallX      int64 // position scaled by 1000
	BallY      int64
	BallVX     int64 // velocity scaled by 1000
	BallVY     int64
	PaddleLY   int64
	PaddleRY   int64
	ScoreLeft  int
	ScoreRight int
	Phase      uint8
	Winner     uint8
	ServeTimer int
}

// Snapshot returns the current match state as primitives.
func (m *Match) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       m.tick,
		ScoreLeft:  m.state.scoreLeft,
		ScoreRight: m.state.scoreRight,
		Phase:      uint8(m.state.phase),
		Winner:     uint8(m.state.winner),
		ServeTimer: m.state.serveTimer,
	}
	if pos, ok := m.tabs.pos.Get(m.ball); ok {
		snap.BallX = int64(pos.X * 1000)
		snap.BallY = int64(pos.Y * 1000)
	}
	if vel, ok := m.tabs.vel.Get(m.ball); ok {
		snap.BallVX = int64(vel.DX * 1000)
		snap.BallVY = int64(vel.DY * 1000)
	}
	if pos, ok := m.tabs.pos.Get(m.leftPaddle); ok {
		snap.PaddleLY = int64(pos.Y * 1000)
	}
	if pos, ok := m.tabs.pos.Get(m.rightPaddle); ok {
		snap.PaddleRY = int64(pos.Y * 1000)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.BallX)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallY)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVX)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallVY)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleLY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PaddleRY)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ScoreLeft)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ScoreRight) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)
	h = h*31 + uint64(snap.Winner)
	h = h*31 + uint64(snap.ServeTimer) //#nosec G115 -- hash computation
	return h
}
