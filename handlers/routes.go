package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/middleware"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/services"
)

type Deps struct {
	Tournaments *services.TournamentService
	Deposits    *services.DepositService
	Authorizer  middleware.Authorizer
	Backend     string
	StartedAt   time.Time
}

func SetupRoutes(app *fiber.App, d Deps) {
	health := NewHealthHandler(d.Backend, d.StartedAt, d.Tournaments.Joins, d.Tournaments.Rooms, d.Deposits.Deposits)
	app.Get("/health", health.Health)

	api := app.Group("/api")
	admin := api.Group("/admin", middleware.AdminAuth(d.Authorizer))

	SetupTournamentRoutes(api, admin, NewTournamentHandler(d.Tournaments))
	SetupDepositRoutes(api, admin, NewDepositHandler(d.Deposits))
}
