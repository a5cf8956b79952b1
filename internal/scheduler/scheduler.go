package scheduler

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Announcer delivers the monthly announcement to the group.
type Announcer interface {
	SendMonthlyAnnouncement() error
}

type Config struct {
	Day  int // day of month
	Hour int // local hour
}

// Scheduler fires the monthly announcement once per month at the configured
// day and hour, in the configured timezone. Delivery failures are logged
// here and never retried: a missed announcement is a presentation problem,
// not a rotation-state problem.
type Scheduler struct {
	cfg       Config
	announcer Announcer
	loc       *time.Location
	log       zerolog.Logger

	cron *cron.Cron
}

func New(cfg Config, announcer Announcer, loc *time.Location, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cfg:       cfg,
		announcer: announcer,
		loc:       loc,
		log:       log,
	}
}

func (s *Scheduler) Start() error {
	if s.cron != nil {
		return nil
	}

	s.cron = cron.New(cron.WithLocation(s.loc))

	spec := cronSpec(s.cfg)
	if _, err := s.cron.AddFunc(spec, s.announce); err != nil {
		s.cron = nil
		return fmt.Errorf("failed to schedule monthly announcement: %w", err)
	}

	s.cron.Start()
	s.log.Info().Str("spec", spec).Str("timezone", s.loc.String()).
		Msg("monthly announcement scheduled")
	return nil
}

func (s *Scheduler) Stop() {
	if s.cron == nil {
		return
	}
	// Wait for an in-flight announcement before returning.
	<-s.cron.Stop().Done()
	s.cron = nil
	s.log.Info().Msg("scheduler stopped")
}

func (s *Scheduler) announce() {
	if err := s.announcer.SendMonthlyAnnouncement(); err != nil {
		s.log.Error().Err(err).Msg("failed to send monthly announcement")
		return
	}
	s.log.Info().Msg("monthly announcement sent")
}

// cronSpec renders "minute hour day * *", e.g. "0 8 1 * *" for the 1st of
// the month at 08:00.
func cronSpec(cfg Config) string {
	return fmt.Sprintf("0 %d %d * *", cfg.Hour, cfg.Day)
}
