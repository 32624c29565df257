package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"tmht.org/checkin/export"
	"tmht.org/checkin/web/common"
)

func (ep *Endpoint) ExportCSV(c *gin.Context) {
	records, err := ep.Repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, records); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="checkins.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (ep *Endpoint) ExportXLSX(c *gin.Context) {
	records, err := ep.Repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, records); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="checkins.xlsx"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
