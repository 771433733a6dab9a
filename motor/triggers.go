package motor

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/strider/game"
)

// EnterLadder attaches the character to a ladder that is climbed along dir. The direction is sampled
// once here and not re-read during the climb. A zero direction falls back to straight up.
func (m *Motor) EnterLadder(dir mgl32.Vec3) {
	dir = game.NormalizeOrZero(dir)
	if dir == (mgl32.Vec3{}) {
		dir = mgl32.Vec3{0, 1, 0}
	}

	m.mu.Lock()
	old := m.state.Mode
	m.state.Mode = ModeClimbing
	m.state.LadderDirection = dir
	m.state.VerticalVelocity = 0
	m.mu.Unlock()

	m.log.Debug("entered ladder", "from", old, "direction", dir)
}

// ExitLadder detaches the character from the ladder it is climbing. The mode is set from the last
// ground check and corrected by the ground check of the next Step. Calling ExitLadder while not
// climbing, for example after jumping off, has no effect.
func (m *Motor) ExitLadder() {
	m.mu.Lock()
	if m.state.Mode != ModeClimbing {
		m.mu.Unlock()
		return
	}
	if m.state.Grounded {
		m.state.Mode = ModeGrounded
	} else {
		m.state.Mode = ModeAirborne
	}
	m.state.LadderDirection = mgl32.Vec3{}
	mode := m.state.Mode
	m.mu.Unlock()

	m.log.Debug("exited ladder", "to", mode)
}

// SetJumpMultiplier sets the multiplier applied to jumps while no jump boost is active. Negative
// values are treated as zero.
func (m *Motor) SetJumpMultiplier(multiplier float32) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseMultiplier = math32.Max(multiplier, 0)
	m.updateJumpMultiplier()
}

// ApplyJumpBoost registers a jump boost from source, replacing any boost the same source applied
// before. While any boost is active the largest one is used.
func (m *Motor) ApplyJumpBoost(source string, multiplier float32) {
	m.mu.Lock()
	m.boosts.Set(source, math32.Max(multiplier, 0))
	m.updateJumpMultiplier()
	current := m.state.JumpMultiplier
	m.mu.Unlock()

	m.log.Debug("jump boost applied", "source", source, "boost", multiplier, "multiplier", current)
}

// ClearJumpBoost removes the jump boost registered by source. Once no boosts remain the multiplier
// returns to the value set by SetJumpMultiplier.
func (m *Motor) ClearJumpBoost(source string) {
	m.mu.Lock()
	if !m.boosts.Delete(source) {
		m.mu.Unlock()
		return
	}
	m.updateJumpMultiplier()
	current := m.state.JumpMultiplier
	m.mu.Unlock()

	m.log.Debug("jump boost cleared", "source", source, "multiplier", current)
}

// updateJumpMultiplier recomputes the effective jump multiplier. m.mu must be held.
func (m *Motor) updateJumpMultiplier() {
	if m.boosts.Len() == 0 {
		m.state.JumpMultiplier = m.baseMultiplier
		return
	}

	var highest float32
	for _, source := range m.boosts.Keys() {
		boost, _ := m.boosts.Get(source)
		highest = math32.Max(highest, boost)
	}
	m.state.JumpMultiplier = highest
}
