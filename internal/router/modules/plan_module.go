package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/fitness-backend/internal/interface/http"
)

type PlanModule struct {
	Handler *handlers.PlanHandler
}

func NewPlanModule(h *handlers.PlanHandler) *PlanModule {
	return &PlanModule{Handler: h}
}

func (m *PlanModule) Register(rg *gin.RouterGroup) {
	rg.GET("/training-plans", m.Handler.List)
	rg.GET("/training-plans/:id", m.Handler.Get)
}
