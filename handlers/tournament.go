package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/services"
)

type TournamentHandler struct {
	svc *services.TournamentService
}

func NewTournamentHandler(svc *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{svc: svc}
}

func SetupTournamentRoutes(api fiber.Router, admin fiber.Router, h *TournamentHandler) {
	api.Post("/join-tournament", h.Join)
	api.Get("/check-join/:tournamentId", h.CheckJoin)
	api.Get("/tournament-slots-count/:tournamentId", h.SlotCount)
	api.Get("/my-matches", h.MyMatches)

	admin.Get("/joins", h.ListJoins)
	admin.Put("/set-room-by-tournament", h.SetRoom)
	admin.Delete("/tournament/:id", h.DeleteJoin)
}

func (h *TournamentHandler) Join(c *fiber.Ctx) error {
	var req services.JoinRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	res, err := h.svc.Join(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	if !res.Success() {
		return c.JSON(fiber.Map{
			"success": false,
			"message": res.Message(),
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": res.Message(),
		"join":    res.Join,
	})
}

func (h *TournamentHandler) CheckJoin(c *fiber.Ctx) error {
	joined, err := h.svc.CheckJoin(c.UserContext(), c.Params("tournamentId"), c.Query("bgmiId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"joined":  joined,
	})
}

func (h *TournamentHandler) SlotCount(c *fiber.Ctx) error {
	tournamentID := c.Params("tournamentId")
	registered, capacity, err := h.svc.SlotCount(c.UserContext(), tournamentID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"tournamentId": tournamentID,
		"registered":   registered,
		"max":          capacity,
	})
}

func (h *TournamentHandler) MyMatches(c *fiber.Ctx) error {
	matches, err := h.svc.MyMatches(c.UserContext(), c.Query("bgmiId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"matches": matches})
}

func (h *TournamentHandler) ListJoins(c *fiber.Ctx) error {
	joins, err := h.svc.ListAllJoins(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"joins": joins})
}

func (h *TournamentHandler) SetRoom(c *fiber.Ctx) error {
	var req services.SetRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	res, err := h.svc.SetRoom(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Room details saved",
		"room":         res.Room,
		"updatedJoins": res.UpdatedJoins,
	})
}

func (h *TournamentHandler) DeleteJoin(c *fiber.Ctx) error {
	if err := h.svc.DeleteJoin(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
