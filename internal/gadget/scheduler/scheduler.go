package scheduler

import (
	"time"

	authrepo "imf-gadget-backend/internal/auth/repository"
	gadgetrepo "imf-gadget-backend/internal/gadget/repository"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Sweeper is the background reconciliation process: it flips gadgets whose
// decommission_at has passed to Decommissioned (the guard self-heals the
// same condition on demand, this closes the gap for untouched records) and
// prunes blacklist rows old enough that their token has expired anyway.
type Sweeper struct {
	gadgetRepo  gadgetrepo.GadgetRepository
	tokenRepo   authrepo.TokenRepository
	tokenExpiry time.Duration
	cron        *cron.Cron
	logger      *zap.SugaredLogger
}

// NewSweeper creates a new sweeper
func NewSweeper(gadgetRepo gadgetrepo.GadgetRepository, tokenRepo authrepo.TokenRepository, tokenExpiry time.Duration, logger *zap.SugaredLogger) *Sweeper {
	return &Sweeper{
		gadgetRepo:  gadgetRepo,
		tokenRepo:   tokenRepo,
		tokenExpiry: tokenExpiry,
		cron:        cron.New(),
		logger:      logger,
	}
}

// Start registers the sweep on the given cron schedule (e.g. "@hourly") and
// runs one sweep immediately so restarts don't wait a full interval.
func (s *Sweeper) Start(schedule string) error {
	if _, err := s.cron.AddFunc(schedule, s.sweep); err != nil {
		return err
	}

	go s.sweep()
	s.cron.Start()
	s.logger.Infow("sweeper started", "schedule", schedule)
	return nil
}

// Stop waits for a running sweep to finish.
func (s *Sweeper) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("sweeper stopped")
}

func (s *Sweeper) sweep() {
	now := time.Now()

	reconciled, err := s.gadgetRepo.MarkOverdueDecommissioned(now)
	if err != nil {
		s.logger.Errorw("reconcile overdue decommissions", "error", err)
	} else if reconciled > 0 {
		s.logger.Infow("reconciled overdue decommissions", "count", reconciled)
	}

	pruned, err := s.tokenRepo.DeleteBlacklistedBefore(now.Add(-s.tokenExpiry))
	if err != nil {
		s.logger.Errorw("prune blacklisted tokens", "error", err)
	} else if pruned > 0 {
		s.logger.Infow("pruned blacklisted tokens", "count", pruned)
	}
}
