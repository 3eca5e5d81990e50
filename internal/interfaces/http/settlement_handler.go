package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/depot-api/internal/application/dto"
	"github.com/tu-usuario/depot-api/internal/application/ledger"
)

// SettlementHandler maneja el registro diario de abonos (solo admin).
type SettlementHandler struct {
	uc *ledger.SettlementUseCase
}

// NewSettlementHandler construye el handler.
func NewSettlementHandler(uc *ledger.SettlementUseCase) *SettlementHandler {
	return &SettlementHandler{uc: uc}
}

// List godoc
// @Summary      Listar abonos de un día
// @Description  Sin parámetro date lista los abonos de hoy. date en formato YYYY-MM-DD.
// @Tags         settlements
// @Produce      json
// @Param        date  query  string  false  "día a consultar"
// @Success      200   {array}   dto.SettlementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settlements [get]
func (h *SettlementHandler) List(c *fiber.Ctx) error {
	raw := c.Query("date")
	if raw == "" {
		list, err := h.uc.ListToday(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(list)
	}
	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe ser YYYY-MM-DD"})
	}
	list, err := h.uc.ListByDay(c.Context(), day)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// Today lista los abonos del día en curso.
// GET /api/settlements/today
func (h *SettlementHandler) Today(c *fiber.Ctx) error {
	list, err := h.uc.ListToday(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(list)
}

// PurgeAll vacía el registro de abonos (cierre de caja).
// DELETE /api/settlements
func (h *SettlementHandler) PurgeAll(c *fiber.Ctx) error {
	if err := h.uc.PurgeAll(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
