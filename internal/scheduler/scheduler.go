// Package scheduler runs jobs at fixed local times of day, such as the
// morning reminder digest.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/julianstephens/cadence/internal/constants"
	"github.com/julianstephens/cadence/internal/logger"
	"github.com/julianstephens/cadence/internal/models"
	"github.com/julianstephens/cadence/internal/utils"
)

type Scheduler struct {
	cron *cron.Cron
	loc  *time.Location
}

func New(loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc)),
		loc:  loc,
	}
}

// DailySpec converts an HH:MM time into a standard five-field cron spec.
func DailySpec(at string) (string, error) {
	if err := models.ValidateTime(at); err != nil {
		return "", err
	}
	t, err := utils.ParseTime(at)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%d %d * * *", t.Minute(), t.Hour()), nil
}

// NextRun returns the first instant after now at which a job scheduled
// daily at "at" fires, in loc.
func NextRun(at string, now time.Time, loc *time.Location) (time.Time, error) {
	spec, err := DailySpec(at)
	if err != nil {
		return time.Time{}, err
	}
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return time.Time{}, err
	}
	return schedule.Next(now.In(loc)), nil
}

// Daily registers job to run every day at the HH:MM time at.
func (s *Scheduler) Daily(at string, job func()) error {
	spec, err := DailySpec(at)
	if err != nil {
		return err
	}
	return s.add(spec, job)
}

func (s *Scheduler) add(spec string, job func()) error {
	if _, err := s.cron.AddFunc(spec, job); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	logger.Debug("Scheduled job", "spec", spec, "location", s.loc.String())
	return nil
}

// Run starts the scheduler and blocks until ctx is done. Jobs already
// running are given constants.ShutdownTimeout to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	s.cron.Start()
	<-ctx.Done()

	stopped := s.cron.Stop()
	select {
	case <-stopped.Done():
		return nil
	case <-time.After(constants.ShutdownTimeout):
		return fmt.Errorf("timed out after %s waiting for running jobs", constants.ShutdownTimeout)
	}
}
