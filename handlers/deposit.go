package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/models"
	"github.com/bgmiesportsowner-App/bgmi-server-save-tournament-data/services"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type DepositHandler struct {
	svc *services.DepositService
}

func NewDepositHandler(svc *services.DepositService) *DepositHandler {
	return &DepositHandler{svc: svc}
}

func SetupDepositRoutes(api fiber.Router, admin fiber.Router, h *DepositHandler) {
	api.Post("/deposit", h.Submit)
	api.Get("/deposits", h.ListOwn)

	admin.Get("/deposits", h.ListAll)
	admin.Get("/deposits/export", h.Export)
	admin.Put("/deposit-status", h.UpdateStatus)
	admin.Put("/deposit-status/:id", h.UpdateStatus)
	admin.Delete("/deposit/:id", h.Delete)
}

func (h *DepositHandler) Submit(c *fiber.Ctx) error {
	var req services.DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	d, err := h.svc.Submit(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Deposit submitted",
		"deposit": d,
	})
}

// ListOwn returns every deposit unless the caller names a profileId.
func (h *DepositHandler) ListOwn(c *fiber.Ctx) error {
	deposits, err := h.svc.List(c.UserContext(), c.Query("profileId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deposits": deposits})
}

func (h *DepositHandler) ListAll(c *fiber.Ctx) error {
	deposits, err := h.svc.List(c.UserContext(), "")
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"deposits": deposits})
}

func (h *DepositHandler) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		ID     models.FlexString `json:"id" form:"id"`
		Status string            `json:"status" form:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}
	id := c.Params("id")
	if id == "" {
		id = req.ID.String()
	}

	d, err := h.svc.UpdateStatus(c.UserContext(), id, req.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Deposit status updated",
		"deposit": d,
	})
}

func (h *DepositHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *DepositHandler) Export(c *fiber.Ctx) error {
	buf, err := h.svc.ExportWorkbook(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	c.Attachment(fmt.Sprintf("deposits-%s.xlsx", time.Now().UTC().Format("20060102-150405")))
	c.Set(fiber.HeaderContentType, xlsxContentType)
	return c.Send(buf.Bytes())
}
