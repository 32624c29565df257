package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tmht.org/checkin/web/common"
)

// how long a poll hangs before answering "nothing changed"
const pollTimeout = 25 * time.Second

// Changes long-polls the remote change feed. The response only says that
// something changed; the caller re-runs the list endpoint for the data.
// Without a remote store the poll always times out to changed=false.
func (ep *Endpoint) Changes(c *gin.Context) {
	select {
	case <-ep.feed.Wait():
		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"changed": true}))
	case <-time.After(pollTimeout):
		c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"changed": false}))
	case <-c.Request.Context().Done():
		c.Status(http.StatusNoContent)
	}
}
