package workers

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/logger"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/services"
)

const jobTimeout = 2 * time.Minute

type SchedulerOptions struct {
	PruneInterval   time.Duration
	RoomStaleAfter  time.Duration
	ArchiveInterval time.Duration
}

// StartScheduler registers room pruning and archival. A zero interval
// disables that job; a nil archiver disables archival. The caller must
// Shutdown the returned scheduler.
func StartScheduler(tournaments *services.TournamentService, archiver *Archiver, opts SchedulerOptions) (gocron.Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	if opts.PruneInterval > 0 {
		_, err = sched.NewJob(
			gocron.DurationJob(opts.PruneInterval),
			gocron.NewTask(func() {
				ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
				defer cancel()
				pruned, err := tournaments.PruneStaleRooms(ctx, opts.RoomStaleAfter)
				if err != nil {
					logger.Error("Room prune failed", "error", err)
					return
				}
				if pruned > 0 {
					logger.Info("Pruned stale rooms", "count", pruned)
				}
			}),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, err
		}
	}

	if opts.ArchiveInterval > 0 && archiver != nil {
		_, err = sched.NewJob(
			gocron.DurationJob(opts.ArchiveInterval),
			gocron.NewTask(func() {
				ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
				defer cancel()
				if _, err := archiver.Snapshot(ctx); err != nil {
					logger.Error("Snapshot failed", "error", err)
				}
			}),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, err
		}
	}

	sched.Start()
	return sched, nil
}
