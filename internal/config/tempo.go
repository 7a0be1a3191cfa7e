package config

import "time"

// MoveInterval returns the swarm step interval for the given population.
// It interpolates linearly from MoveSlowMs with the whole swarm alive down to
// MoveFastMs with a single invader left.
func (c SwarmConfig) MoveInterval(alive, total int) time.Duration {
	slow := time.Duration(c.MoveSlowMs) * time.Millisecond
	fast := time.Duration(c.MoveFastMs) * time.Millisecond
	if total <= 1 || alive >= total {
		return slow
	}
	if alive <= 1 {
		return fast
	}

	// progress is 0 with everyone alive and 1 with one survivor
	progress := float64(total-alive) / float64(total-1)
	return slow - time.Duration(progress*float64(slow-fast))
}
