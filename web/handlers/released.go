package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tmht.org/checkin/web/common"
)

func (ep *Endpoint) ListReleased(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.Ledger.List()))
}

func (ep *Endpoint) RecentlyReleased(c *gin.Context) {
	hours := 24
	if val, err := strconv.Atoi(c.Query("hours")); err == nil && val > 0 {
		hours = val
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.Ledger.RecentlyReleased(hours)))
}

func (ep *Endpoint) ClearReleased(c *gin.Context) {
	if err := ep.Ledger.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{}))
}
