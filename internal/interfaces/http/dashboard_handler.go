package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"salesbi-api/internal/application/analytics"
	"salesbi-api/internal/application/dto"
	"salesbi-api/internal/domain"
)

// DashboardHandler maneja las tres vistas del dashboard de BI.
// Los fetchs degradados contra el item store nunca producen 5xx: la respuesta
// sale 200 con el diagnóstico en _debug. Solo los parámetros inválidos del
// cliente producen 400.
type DashboardHandler struct {
	svc *analytics.Service
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(svc *analytics.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Executive godoc
// @Summary      Dashboard ejecutivo
// @Tags         dashboard
// @Produce      json
// @Param        fromDate  query  string  false  "YYYY-MM-DD o MM/DD/YYYY"
// @Param        toDate    query  string  false  "YYYY-MM-DD o MM/DD/YYYY"
// @Param        division  query  string  false  "nombre de división o all"
// @Success      200  {object}  dto.ExecutiveDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/dashboard/executive [get]
func (h *DashboardHandler) Executive(c *fiber.Ctx) error {
	var in dto.DashboardRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.svc.Executive(c.Context(), in)
	if err != nil {
		return dashboardError(c, err)
	}
	return c.JSON(out)
}

// Manager godoc
// @Summary      Dashboard de bodega (velocidad de stock y devoluciones)
// @Tags         dashboard
// @Produce      json
// @Param        fromDate  query  string  false  "YYYY-MM-DD o MM/DD/YYYY"
// @Param        toDate    query  string  false  "YYYY-MM-DD o MM/DD/YYYY"
// @Param        division  query  string  false  "nombre de división o all"
// @Param        type      query  string  false  "velocity (default) | returns"
// @Success      200  {object}  dto.ManagerDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/dashboard/manager [get]
func (h *DashboardHandler) Manager(c *fiber.Ctx) error {
	var in dto.ManagerRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.svc.Manager(c.Context(), in)
	if err != nil {
		return dashboardError(c, err)
	}
	return c.JSON(out)
}

// DivisionHead godoc
// @Summary      Dashboard del jefe de división
// @Tags         dashboard
// @Produce      json
// @Param        fromDate    query  string  false  "YYYY-MM-DD o MM/DD/YYYY"
// @Param        toDate      query  string  false  "YYYY-MM-DD o MM/DD/YYYY"
// @Param        salesmanId  query  string  false  "acota a un vendedor"
// @Param        activeTab   query  string  false  "división de la pestaña activa"
// @Success      200  {object}  dto.DivisionHeadDashboardDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Security     BearerAuth
// @Router       /api/dashboard/divisionhead [get]
func (h *DashboardHandler) DivisionHead(c *fiber.Ctx) error {
	var in dto.DivisionHeadRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	// El jefe de división solo ve su propia división si el token la trae.
	if div := GetDivision(c); div != "" && in.ActiveTab == "" {
		in.ActiveTab = div
	}
	out, err := h.svc.DivisionHead(c.Context(), in)
	if err != nil {
		return dashboardError(c, err)
	}
	return c.JSON(out)
}

func dashboardError(c *fiber.Ctx, err error) error {
	if errors.Is(err, domain.ErrInvalidDateRange) || errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
