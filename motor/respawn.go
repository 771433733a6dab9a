package motor

// CheckFallRespawn teleports the character to the respawn position if it has fallen below the fall
// threshold, returning true if it did. Collision is suspended on the backend during the teleport.
func (m *Motor) CheckFallRespawn() bool {
	pos := m.body.Position()
	if pos.Y() >= m.conf.FallThreshold {
		return false
	}

	m.mu.Lock()
	m.state.VerticalVelocity = 0
	m.mu.Unlock()

	m.backend.SetEnabled(false)
	m.body.SetPosition(m.conf.RespawnPosition)
	m.backend.SetEnabled(true)

	m.log.Info("character fell out of the world and was respawned", "from", pos, "to", m.conf.RespawnPosition)
	return true
}
