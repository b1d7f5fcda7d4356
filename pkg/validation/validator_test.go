package validation

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type signupBody struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,pwd"`
}

func bind(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	c.Request.Header.Set("Content-Type", "application/json")
	var req signupBody
	return c.ShouldBindJSON(&req)
}

func TestToDetails(t *testing.T) {
	Init()

	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(bind(t, `{"username":`)))
	assert.Equal(t, map[string]string{"payload": "invalid json"}, ToDetails(bind(t, `{"username":1}`)))
	assert.Equal(t, map[string]string{
		"username": "is required",
		"password": "must be at least 6 characters long",
	}, ToDetails(bind(t, `{"password":"12345"}`)))
}
