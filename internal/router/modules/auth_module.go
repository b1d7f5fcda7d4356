package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/fitness-backend/internal/interface/http"
	"github.com/oksasatya/fitness-backend/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Tokens  middleware.TokenVerifier
}

func NewAuthModule(h *handlers.AuthHandler, tokens middleware.TokenVerifier) *AuthModule {
	return &AuthModule{Handler: h, Tokens: tokens}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/signup", m.Handler.Signup)
	auth.POST("/login", m.Handler.Login)
	auth.GET("/profile", middleware.BearerAuth(m.Tokens), m.Handler.Profile)
}
