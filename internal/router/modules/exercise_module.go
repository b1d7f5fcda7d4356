package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/fitness-backend/internal/interface/http"
)

// ExerciseModule serves the public catalog at the root path.
type ExerciseModule struct {
	Handler *handlers.ExerciseHandler
}

func NewExerciseModule(h *handlers.ExerciseHandler) *ExerciseModule {
	return &ExerciseModule{Handler: h}
}

func (m *ExerciseModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Root)
	rg.GET("/bodyparts", m.Handler.BodyParts)
	rg.GET("/exercises", m.Handler.List)
	rg.GET("/exercises/search", m.Handler.Search)
	rg.GET("/exercises/bodypart/:part", m.Handler.ByBodyPart)
	rg.GET("/exercises/:id", m.Handler.Get)
}
