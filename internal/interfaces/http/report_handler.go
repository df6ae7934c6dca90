package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/salon-api/internal/application/dto"
	"github.com/glowdesk/salon-api/internal/application/reports"
	"github.com/glowdesk/salon-api/internal/domain"
)

// ReportHandler maneja los reportes de uso (protegido).
type ReportHandler struct {
	usage  *reports.UsageReportUseCase
	period *reports.PeriodReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(usage *reports.UsageReportUseCase, period *reports.PeriodReportUseCase) *ReportHandler {
	return &ReportHandler{usage: usage, period: period}
}

// GetUsageReport godoc
// @Summary      Reporte de uso filtrable
// @Description  Entradas "used" por producto, con filtros por category, product_id ("all" o vacío = sin filtro) y rango from/to inclusivo (2006-01-02).
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        category    query  string  false  "Categoría o all"
// @Param        product_id  query  string  false  "ID de producto o all"
// @Param        from        query  string  false  "Fecha inicial 2006-01-02"
// @Param        to          query  string  false  "Fecha final 2006-01-02"
// @Success      200  {object}  dto.UsageReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/usage [get]
func (h *ReportHandler) GetUsageReport(c *fiber.Ctx) error {
	in := dto.UsageReportRequest{
		Category:  c.Query("category"),
		ProductID: c.Query("product_id"),
		From:      c.Query("from"),
		To:        c.Query("to"),
	}
	out, err := h.usage.GetUsageReport(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GeneratePeriodReport godoc
// @Summary      Reporte de período en PDF
// @Description  Documento descargable con resumen y tabla de usos del período (weekly, monthly o quarterly desde start).
// @Tags         reports
// @Security     Bearer
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.PeriodReportRequest  true  "period y start (2006-01-02)"
// @Success      200  {string}  string  "bytes del PDF"
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/period [post]
func (h *ReportHandler) GeneratePeriodReport(c *fiber.Ctx) error {
	var in dto.PeriodReportRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.period.Generate(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="usage-report-%s-%s.pdf"`, in.Period, in.Start))
	return c.Send(out)
}
