package reporting

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/curaclinic/curaclinic/internal/domain/report"
)

// Snapshotter periodically logs the current month's report so operators
// get a running trail of clinic activity without querying the API.
type Snapshotter struct {
	reports *report.Service
	logger  zerolog.Logger
	cron    *cron.Cron
	nowFn   func() time.Time
}

func NewSnapshotter(reports *report.Service, logger zerolog.Logger) *Snapshotter {
	return &Snapshotter{
		reports: reports,
		logger:  logger,
		cron:    cron.New(),
		nowFn:   time.Now,
	}
}

// Start registers the job on the given cron schedule and launches the
// scheduler. An empty schedule disables snapshots.
func (s *Snapshotter) Start(schedule string) error {
	if schedule == "" {
		s.logger.Info().Msg("report snapshots disabled")
		return nil
	}
	if _, err := s.cron.AddFunc(schedule, s.run); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info().Str("schedule", schedule).Msg("report snapshots scheduled")
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *Snapshotter) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Snapshotter) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := s.nowFn()
	r, err := s.reports.Monthly(ctx, now.Year(), int(now.Month()))
	if err != nil {
		s.logger.Error().Err(err).Msg("report snapshot failed")
		return
	}
	s.logger.Info().
		Int("year", r.Year).
		Int("month", r.Month).
		Str("start_date", r.StartDate.Format("2006-01-02")).
		Str("end_date", r.EndDate.Format("2006-01-02")).
		Int("avanzada", r.Avanzada).
		Int("pie_diabetico", r.PieDiabetico).
		Int("ulcera_venosa", r.UlceraVenosa).
		Int("total", r.Total).
		Msg("monthly report snapshot")
}
