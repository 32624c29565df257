package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"tmht.org/checkin/core"
	"tmht.org/checkin/messaging"
	"tmht.org/checkin/model"
	"tmht.org/checkin/qr"
	"tmht.org/checkin/web/common"
)

type CheckInDTO struct {
	ChildName   string `json:"childName" binding:"required"`
	ParentName  string `json:"parentName" binding:"required"`
	Phone       string `json:"phone" binding:"required"`
	ServiceTime string `json:"serviceTime"`
	Notes       string `json:"notes"`
}

// CheckInResult is the registration response: the stored record plus the
// derived artifacts the confirmation screen shows or hands off.
type CheckInResult struct {
	Record       model.Record `json:"record"`
	QRImage      string       `json:"qrImage"`
	WhatsAppLink string       `json:"whatsappLink"`
	SMSLink      string       `json:"smsLink,omitempty"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto CheckInDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if digits := messaging.DigitsOnly(dto.Phone); len(digits) < 6 || len(digits) > 15 {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Invalid phone number"))
		return
	}

	code, err := ep.Gen.Generate(dto.ServiceTime)
	if err != nil {
		if errors.Is(err, core.ErrCodeSpaceExhausted) {
			c.JSON(http.StatusConflict, common.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	pickupURL := fmt.Sprintf("%s/pickup?code=%s", ep.Cfg.BaseURL, code)
	qrImage, err := qr.DataURL(pickupURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}

	rec, err := ep.Repo.Create(c.Request.Context(), model.RecordInput{
		ChildName:   dto.ChildName,
		ParentName:  dto.ParentName,
		Phone:       dto.Phone,
		ServiceTime: dto.ServiceTime,
		Notes:       dto.Notes,
		Code:        code,
		QRUrl:       pickupURL,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		return
	}

	result := CheckInResult{
		Record:       *rec,
		QRImage:      qrImage,
		WhatsAppLink: messaging.WhatsAppLink(rec.Phone, messaging.PickupMessage(rec.ChildName, rec.Code, rec.QRUrl)),
	}
	if ep.Cfg.EnableSMS {
		result.SMSLink = messaging.SMSLink(rec.Phone, messaging.SMSMessage(rec.ChildName, rec.Code))
	}

	c.JSON(http.StatusCreated, common.NewSuccessResponse(result))
}

func (ep *Endpoint) List(c *gin.Context) {
	records, err := ep.Repo.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(records))
}

func (ep *Endpoint) Lookup(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Missing code"))
		return
	}

	rec, err := ep.Repo.FindByCode(c.Request.Context(), code)
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No check-in found for that code"))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(rec))
}

func (ep *Endpoint) Release(c *gin.Context) {
	id := c.Param("id")

	rec, err := ep.Repo.ReleaseByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No check-in found for that id"))
		return
	}

	// the ledger is advisory; a failed write must not fail the pickup
	if err := ep.Ledger.Add(*rec); err != nil {
		log.Printf("released ledger write failed: %v", err)
	}

	c.JSON(http.StatusOK, common.NewSuccessResponse(rec))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id := c.Param("id")
	if !ep.Repo.Delete(c.Request.Context(), id) {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No check-in found for that id"))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(gin.H{"deleted": id}))
}
