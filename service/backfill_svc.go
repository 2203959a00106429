package service

import (
	"context"
	"time"

	"github.com/nakamauwu/hirechat/errs"
	"github.com/nakamauwu/hirechat/types"
)

// Backfill seeds the missing application confirmation of job threads
// and attributes legacy confirmations to their candidate.
// It is scoped to the logged in user unless All is set, which only admins can do.
// Running it again changes nothing.
func (svc *Service) Backfill(ctx context.Context, in types.Backfill) (types.BackfillResult, error) {
	var out types.BackfillResult

	caller, err := principalFromContext(ctx)
	if err != nil {
		return out, err
	}

	if in.All && !caller.IsAdmin() {
		return out, errs.Forbidden
	}

	in.SetLoggedInUserID(caller.UserID)

	var scope *string
	if !in.All {
		scope = new(in.LoggedInUserID())
	}

	return svc.backfill(ctx, scope)
}

// BackfillAll runs the system wide backfill.
// It is meant for scheduled runs, without a logged in user.
func (svc *Service) BackfillAll(ctx context.Context) (types.BackfillResult, error) {
	return svc.backfill(ctx, nil)
}

// StartBackfillSchedule runs [Service.BackfillAll] every interval until ctx is done.
// Results and errors are reported through the returned channel,
// which is closed when the schedule stops.
func (svc *Service) StartBackfillSchedule(ctx context.Context, interval time.Duration) <-chan BackfillRun {
	runs := make(chan BackfillRun, 1)
	if interval <= 0 {
		close(runs)
		return runs
	}

	go func() {
		defer close(runs)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				start := time.Now()
				res, err := svc.BackfillAll(ctx)
				select {
				case runs <- BackfillRun{Result: res, Err: err, Took: time.Since(start)}:
				default:
				}
			}
		}
	}()

	return runs
}

type BackfillRun struct {
	Result types.BackfillResult
	Err    error
	Took   time.Duration
}

// backfill handles each conversation in its own transaction,
// so an interrupted run can start over.
func (svc *Service) backfill(ctx context.Context, userID *string) (types.BackfillResult, error) {
	var out types.BackfillResult

	targets, err := svc.Cockroach.UnseededJobThreads(ctx, userID)
	if err != nil {
		return out, err
	}

	for _, target := range targets {
		if err := ctx.Err(); err != nil {
			return out, err
		}

		seeded, err := svc.Cockroach.SeedConfirmation(ctx, target)
		if err != nil {
			return out, err
		}

		if seeded {
			out.Seeded++
		}
	}

	out.Attributed, err = svc.Cockroach.AttributeConfirmations(ctx, userID)
	if err != nil {
		return out, err
	}

	return out, nil
}
