package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/pkg/apperror"
)

type counter interface {
	Count(ctx context.Context) (int64, error)
}

type HealthHandler struct {
	backend   string
	startedAt time.Time
	joins     counter
	rooms     counter
	deposits  counter
}

func NewHealthHandler(backend string, startedAt time.Time, joins, rooms, deposits counter) *HealthHandler {
	return &HealthHandler{
		backend:   backend,
		startedAt: startedAt,
		joins:     joins,
		rooms:     rooms,
		deposits:  deposits,
	}
}

func (h *HealthHandler) Health(c *fiber.Ctx) error {
	var joins, rooms, deposits int64
	g, ctx := errgroup.WithContext(c.UserContext())
	g.Go(func() (err error) {
		joins, err = h.joins.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		rooms, err = h.rooms.Count(ctx)
		return err
	})
	g.Go(func() (err error) {
		deposits, err = h.deposits.Count(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return respondError(c, apperror.Wrap(err, apperror.ErrCodeInternalError, "health check failed"))
	}

	return c.JSON(fiber.Map{
		"status":        "ok",
		"backend":       h.backend,
		"uptimeSeconds": int64(time.Since(h.startedAt).Seconds()),
		"counters": fiber.Map{
			"joins":    joins,
			"rooms":    rooms,
			"deposits": deposits,
		},
	})
}
