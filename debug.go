package pretender

import (
	"time"

	"go.uber.org/zap"
)

// debugStats holds per-frame timing and population metrics.
// Only populated when Scene debug mode is on.
type debugStats struct {
	updateTime  time.Duration
	drawTime    time.Duration
	live        int
	pending     int
	tweens      int
	poolFree    int
	poolCreated int
	drawn       int
	culled      int
	spawned     int
	retired     int
}

// debugLog writes the stats at Debug level.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	if ce := s.logger.Check(zap.DebugLevel, "frame"); ce != nil {
		ce.Write(
			zap.Uint64("frame", s.frame),
			zap.Duration("update", stats.updateTime),
			zap.Duration("draw", stats.drawTime),
			zap.Int("live", stats.live),
			zap.Int("pending", stats.pending),
			zap.Int("tweens", stats.tweens),
			zap.Int("pool_free", stats.poolFree),
			zap.Int("pool_created", stats.poolCreated),
			zap.Int("drawn", stats.drawn),
			zap.Int("culled", stats.culled),
			zap.Int("spawned", stats.spawned),
			zap.Int("retired", stats.retired),
		)
	}
}

// collectStats fills the population half of the stats from the subsystems.
func (s *Scene) collectStats(stats *debugStats) {
	stats.live = s.registry.Len()
	stats.pending = s.registry.Pending()
	stats.tweens = s.tweens.Len()
	stats.poolFree = s.pool.Free()
	stats.poolCreated = s.pool.Created()
	stats.drawn, stats.culled = s.compositor.Stats()
	stats.spawned = s.spawner.Spawned()
	stats.retired = s.killer.Retired()
}

// debugMaxLive is the population above which a warning is logged once.
const debugMaxLive = 2000

func (s *Scene) debugCheckPopulation() {
	if s.warnedPopulation || s.registry.Len() <= debugMaxLive {
		return
	}
	s.warnedPopulation = true
	s.logger.Warn("street population exceeds threshold",
		zap.Int("live", s.registry.Len()),
		zap.Int("threshold", debugMaxLive))
}
