package jobs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

// StaleOrderSweepJob cancels orders that sat in Ordered status for too long
// without the counter confirming them. Runs every minute; each stale order is
// cancelled on behalf of the counter through the regular cancel command, so
// the usual transition checks and events apply.
type StaleOrderSweepJob struct {
	uowFactory    commands.OrderUoWFactory
	cancelHandler commands.CancelOrderCommandHandler
	staleAfter    time.Duration
	cron          *cron.Cron
	logger        *slog.Logger
}

// NewStaleOrderSweepJob creates the sweep job. Orders older than staleAfter
// that are still in Ordered status get cancelled.
func NewStaleOrderSweepJob(
	uowFactory commands.OrderUoWFactory,
	cancelHandler commands.CancelOrderCommandHandler,
	staleAfter time.Duration,
	logger *slog.Logger,
) *StaleOrderSweepJob {
	return &StaleOrderSweepJob{
		uowFactory:    uowFactory,
		cancelHandler: cancelHandler,
		staleAfter:    staleAfter,
		cron:          cron.New(cron.WithSeconds()),
		logger:        logger.With("component", "stale_order_sweep_job"),
	}
}

// Start begins the sweep job to run every minute.
func (j *StaleOrderSweepJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order sweep job started (running every minute)",
		"stale_after", j.staleAfter)
	return nil
}

// Stop stops the sweep job.
func (j *StaleOrderSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order sweep job stopped")
}

func (j *StaleOrderSweepJob) sweep() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.staleAfter)

	stale, err := j.uowFactory.Create().OrderRepository().GetAllOrderedBefore(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale order sweep failed to list orders", "error", err)
		return
	}

	for _, staleOrder := range stale {
		cmd, cmdErr := commands.NewCancelOrderCommand(staleOrder.ID(), order.CancelledByCounter)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order sweep failed to build cancel command",
				"order_id", staleOrder.ID(), "error", cmdErr)
			continue
		}

		if handleErr := j.cancelHandler.Handle(ctx, cmd); handleErr != nil {
			// An order confirmed or cancelled between the read and the cancel
			// is an expected race, not a failure.
			if errors.Is(handleErr, errs.ErrBusinessRuleBroken) ||
				errors.Is(handleErr, errs.ErrObjectNotFound) {
				continue
			}
			j.logger.ErrorContext(ctx, "Stale order sweep failed to cancel order",
				"order_id", staleOrder.ID(), "error", handleErr)
			continue
		}

		j.logger.InfoContext(ctx, "Stale order cancelled", "order_id", staleOrder.ID())
	}
}
