package handlers

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tmht.org/checkin/config"
	"tmht.org/checkin/security"
	"tmht.org/checkin/web/common"
)

const sessionLifetime = 12 * time.Hour

type LoginDTO struct {
	Passcode string `json:"passcode" binding:"required"`
}

// Login checks the shared volunteer passcode and issues a session token.
// This is the placeholder check the login screen has always had, not an
// account system.
func Login(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var dto LoginDTO
		if err := c.ShouldBindJSON(&dto); err != nil {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
			return
		}

		if cfg.AdminPasscode == "" ||
			subtle.ConstantTimeCompare([]byte(dto.Passcode), []byte(cfg.AdminPasscode)) != 1 {
			c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Invalid passcode"))
			return
		}

		token, err := security.CreateSessionToken(cfg.JWTSecret, sessionLifetime)
		if err != nil {
			c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
			return
		}

		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"token": token}))
	}
}
