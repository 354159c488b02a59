package commands

import (
	"context"
	"log/slog"

	"stayops/internal/pkg/clock"
	"stayops/internal/usecase/shared"
)

// SweepCommands are the periodic lifecycle sweeps. Both are set-based
// updates, so re-running them is harmless: a reservation already moved to a
// terminal state never matches again.
type SweepCommands interface {
	// ExpireOverdue moves pending reservations past their stage deadline to
	// expired. Returns the number of reservations affected.
	ExpireOverdue(ctx context.Context) (int, error)
	// CancelNoShows cancels paid reservations whose stay ended without a
	// check-in. Returns the number of reservations affected.
	CancelNoShows(ctx context.Context) (int, error)
}

type sweepCommandsImpl struct {
	uow      shared.UnitOfWork
	settings shared.SettingsReader
	clock    clock.Clock
}

func NewSweepCommands(uow shared.UnitOfWork, settings shared.SettingsReader, clock clock.Clock) SweepCommands {
	return &sweepCommandsImpl{uow: uow, settings: settings, clock: clock}
}

func (c *sweepCommandsImpl) ExpireOverdue(ctx context.Context) (int, error) {
	now := c.clock.Now()

	var affected int
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Reservations().ExpireOverduePending(ctx, now)
		if err != nil {
			return err
		}
		affected = len(ids)
		if affected > 0 {
			slog.Info("expired overdue pending reservations", "count", affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

func (c *sweepCommandsImpl) CancelNoShows(ctx context.Context) (int, error) {
	now := c.clock.Now()

	checkoutHour, err := c.settings.Int(ctx, shared.KeyCheckOutHour)
	if err != nil {
		return 0, err
	}

	var affected int
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		ids, err := tx.Reservations().CancelNoShows(ctx, now, checkoutHour)
		if err != nil {
			return err
		}
		affected = len(ids)
		if affected > 0 {
			slog.Info("cancelled no-show reservations", "count", affected)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
