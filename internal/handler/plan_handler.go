package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fixbay/booking-api/internal/dto"
	"github.com/fixbay/booking-api/internal/models"
	"github.com/fixbay/booking-api/internal/service"
	"github.com/fixbay/booking-api/pkg/response"
)

type planReader interface {
	GetPlan(ctx context.Context, id string) (*models.ServicePlan, error)
	ListPlans(ctx context.Context) ([]models.ServicePlan, error)
}

// PlanHandler exposes the service plan catalog.
type PlanHandler struct {
	service planReader
}

// NewPlanHandler constructs the handler.
func NewPlanHandler(svc *service.CatalogService) *PlanHandler {
	return &PlanHandler{service: svc}
}

// List godoc
// @Summary List bookable service plans
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /plans [get]
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.service.ListPlans(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	payload := make([]dto.PlanResponse, 0, len(plans))
	for _, p := range plans {
		payload = append(payload, toPlanResponse(p))
	}
	response.JSON(c, http.StatusOK, payload, nil)
}

// Get godoc
// @Summary Get one service plan
// @Tags Catalog
// @Produce json
// @Param id path string true "Plan ID"
// @Success 200 {object} response.Envelope
// @Router /plans/{id} [get]
func (h *PlanHandler) Get(c *gin.Context) {
	plan, err := h.service.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toPlanResponse(*plan), nil)
}

func toPlanResponse(p models.ServicePlan) dto.PlanResponse {
	return dto.PlanResponse{
		ID:              p.ID,
		Name:            p.Name,
		DurationMinutes: p.DurationMinutes,
		Active:          p.Active,
	}
}
