package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-backend/internal/application"
	"github.com/oksasatya/fitness-backend/pkg/response"
)

type PlanHandler struct {
	Service *application.PlanService
	Logger  *logrus.Logger
}

func NewPlanHandler(svc *application.PlanService, logger *logrus.Logger) *PlanHandler {
	return &PlanHandler{Service: svc, Logger: logger}
}

// List GET /api/training-plans?level=
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.Service.List(c.Request.Context(), c.Query("level"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, plans)
}

// Get GET /api/training-plans/:id accepts an id or a slug.
func (h *PlanHandler) Get(c *gin.Context) {
	p, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, p)
}
