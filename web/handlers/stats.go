package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tmht.org/checkin/model"
	"tmht.org/checkin/utils"
	"tmht.org/checkin/web/common"
)

// StatsDTO carries the dashboard numbers: room usage against capacity plus
// the volunteer headcount from configuration.
type StatsDTO struct {
	CheckedIn  int `json:"checkedIn"`
	CheckedOut int `json:"checkedOut"`
	Capacity   int `json:"capacity"`
	Volunteers int `json:"volunteers"`
}

func (ep *Endpoint) Stats(c *gin.Context) {
	records, err := ep.Repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		return
	}

	checkedIn := utils.Filter(records, func(r model.Record) bool { return !r.Released() })

	c.JSON(http.StatusOK, common.NewSuccessResponse(StatsDTO{
		CheckedIn:  len(checkedIn),
		CheckedOut: len(records) - len(checkedIn),
		Capacity:   ep.Cfg.Capacity,
		Volunteers: ep.Cfg.Volunteers,
	}))
}
