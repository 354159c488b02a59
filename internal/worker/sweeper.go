package worker

import (
	"context"
	"log/slog"
	"time"

	"stayops/internal/usecase/commands"
)

const sweepTimeout = 5 * time.Minute

// Sweeper runs the lifecycle sweeps at the top of every hour: expiring
// overdue pending reservations and cancelling no-shows.
type Sweeper struct {
	cmds commands.SweepCommands
	stop chan struct{}
	done chan struct{}
}

func NewSweeper(cmds commands.SweepCommands) *Sweeper {
	return &Sweeper{
		cmds: cmds,
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

func (s *Sweeper) run() {
	defer close(s.done)

	// Catch up immediately on boot, then align to hour boundaries.
	s.sweep()

	timer := time.NewTimer(untilNextHour(time.Now()))
	defer timer.Stop()

	for {
		select {
		case <-s.stop:
			return
		case now := <-timer.C:
			s.sweep()
			timer.Reset(untilNextHour(now))
		}
	}
}

func (s *Sweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	if _, err := s.cmds.ExpireOverdue(ctx); err != nil {
		slog.Error("expiry sweep failed", "error", err)
	}
	if _, err := s.cmds.CancelNoShows(ctx); err != nil {
		slog.Error("no-show sweep failed", "error", err)
	}
}

func untilNextHour(now time.Time) time.Duration {
	next := now.Truncate(time.Hour).Add(time.Hour)
	return next.Sub(now)
}
