package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/fitness-backend/internal/application"
	"github.com/oksasatya/fitness-backend/pkg/response"
)

const RootBanner = "Server is running! You can now access /exercises and /bodyparts"

type ExerciseHandler struct {
	Service *application.ExerciseService
	Logger  *logrus.Logger
}

func NewExerciseHandler(svc *application.ExerciseService, logger *logrus.Logger) *ExerciseHandler {
	return &ExerciseHandler{Service: svc, Logger: logger}
}

// queryInt returns 0 for missing or non-numeric values so the service applies defaults.
func queryInt(c *gin.Context, key string) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return n
}

func (h *ExerciseHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, RootBanner)
}

// List GET /exercises?page=&limit=
func (h *ExerciseHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.Service.List(queryInt(c, "page"), queryInt(c, "limit")))
}

// BodyParts GET /bodyparts
func (h *ExerciseHandler) BodyParts(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.Service.BodyParts())
}

// ByBodyPart GET /exercises/bodypart/:part
func (h *ExerciseHandler) ByBodyPart(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.Service.ByBodyPart(c.Param("part")))
}

// Search GET /exercises/search?q=&limit=
func (h *ExerciseHandler) Search(c *gin.Context) {
	res, err := h.Service.Search(c.Request.Context(), c.Query("q"), queryInt(c, "limit"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

// Get GET /exercises/:id
func (h *ExerciseHandler) Get(c *gin.Context) {
	e, err := h.Service.Get(c.Param("id"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, e)
}
