package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"tmht.org/checkin/config"
)

func newLoginRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", Login(cfg))
	return r
}

func TestLogin(t *testing.T) {
	cfg := config.Config{AdminPasscode: "open sesame", JWTSecret: "secret"}
	r := newLoginRouter(cfg)

	w := doJSON(r, http.MethodPost, "/login", `{"passcode":"open sesame"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "token")

	w = doJSON(r, http.MethodPost, "/login", `{"passcode":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodPost, "/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginDisabledWithoutPasscode(t *testing.T) {
	r := newLoginRouter(config.Config{JWTSecret: "secret"})

	w := doJSON(r, http.MethodPost, "/login", `{"passcode":""}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(r, http.MethodPost, "/login", `{"passcode":"anything"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code, "empty configured passcode must not match")
}
