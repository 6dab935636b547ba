package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fixbay/booking-api/internal/dto"
	"github.com/fixbay/booking-api/internal/service"
	appErrors "github.com/fixbay/booking-api/pkg/errors"
	"github.com/fixbay/booking-api/pkg/export"
	"github.com/fixbay/booking-api/pkg/response"
)

type availabilityReader interface {
	DayAvailability(ctx context.Context, date, planID string) (*dto.DayAvailabilityResponse, error)
	Recommend(ctx context.Context, req dto.RecommendationRequest) (*dto.RecommendationResponse, error)
}

// AvailabilityHandler exposes slot availability and recommendation endpoints.
type AvailabilityHandler struct {
	service       availabilityReader
	csv           *export.CSVExporter
	pdf           *export.PDFExporter
	exportEnabled bool
}

// NewAvailabilityHandler constructs the handler.
func NewAvailabilityHandler(svc *service.AvailabilityService, exportEnabled bool) *AvailabilityHandler {
	return &AvailabilityHandler{
		service:       svc,
		csv:           export.NewCSVExporter(),
		pdf:           export.NewPDFExporter(),
		exportEnabled: exportEnabled,
	}
}

// Day godoc
// @Summary Full-day slot availability
// @Description Evaluates every slot of the requested day for one service plan, with per-slot verdicts and aggregate stats.
// @Tags Availability
// @Produce json
// @Param date query string true "Day to evaluate (YYYY-MM-DD)"
// @Param planId query string true "Service plan ID"
// @Success 200 {object} response.Envelope
// @Router /availability/day [get]
func (h *AvailabilityHandler) Day(c *gin.Context) {
	date := c.Query("date")
	planID := c.Query("planId")
	if date == "" || planID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date and planId are required"))
		return
	}
	result, err := h.service.DayAvailability(c.Request.Context(), date, planID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Recommend godoc
// @Summary Recommend additional slots
// @Description Suggests up to the remaining selectable budget of non-overlapping slots maximizing achievable daily throughput.
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body dto.RecommendationRequest true "Recommendation payload"
// @Success 200 {object} response.Envelope
// @Router /availability/recommendations [post]
func (h *AvailabilityHandler) Recommend(c *gin.Context) {
	var req dto.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid recommendation payload"))
		return
	}
	result, err := h.service.Recommend(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Export godoc
// @Summary Export the day sheet
// @Description Renders the day's slot verdicts as CSV or PDF for the workshop counter.
// @Tags Availability
// @Produce text/csv,application/pdf
// @Param date query string true "Day to export (YYYY-MM-DD)"
// @Param planId query string true "Service plan ID"
// @Param format query string false "csv or pdf" default(csv)
// @Success 200 {file} binary
// @Router /availability/day/export [get]
func (h *AvailabilityHandler) Export(c *gin.Context) {
	if !h.exportEnabled {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "export disabled"))
		return
	}
	date := c.Query("date")
	planID := c.Query("planId")
	if date == "" || planID == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "date and planId are required"))
		return
	}
	day, err := h.service.DayAvailability(c.Request.Context(), date, planID)
	if err != nil {
		response.Error(c, err)
		return
	}

	sheet := service.DaySheet(day)
	switch c.DefaultQuery("format", "csv") {
	case "csv":
		payload, err := h.csv.Render(sheet)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="day-sheet-`+date+`.csv"`)
		c.Data(http.StatusOK, "text/csv", payload)
	case "pdf":
		payload, err := h.pdf.Render(sheet, "Day Sheet "+date)
		if err != nil {
			response.Error(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="day-sheet-`+date+`.pdf"`)
		c.Data(http.StatusOK, "application/pdf", payload)
	default:
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be csv or pdf"))
	}
}
