package scheduler

import (
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/config"
	"github.com/JoseNeto-93/almoxarifado-digital-dn3j/internal/repository/memory"
)

// Scheduler periodically sweeps idle sessions out of the in-memory registry
// so abandoned browser sessions do not accumulate.
type Scheduler struct {
	cron     *cron.Cron
	sessions *memory.Store
	cfg      config.SessionConfig
	logger   *zap.Logger
}

// NewScheduler creates a new scheduler instance.
func NewScheduler(cfg config.SessionConfig, sessions *memory.Store, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:     cron.New(),
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}

// Start registers the sweep job and starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler", zap.String("schedule", s.cfg.SweepSchedule))

	_, err := s.cron.AddFunc(s.cfg.SweepSchedule, s.sweepIdleSessions)
	if err != nil {
		s.logger.Error("failed to schedule session sweep", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) sweepIdleSessions() {
	pruned := s.sessions.PruneIdle(s.cfg.IdleTTL)
	if pruned > 0 {
		s.logger.Info("pruned idle sessions",
			zap.Int("pruned", pruned),
			zap.Int("remaining", s.sessions.Len()))
	}
}
