package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tmht.org/checkin/infrastructure/localstore"
	"tmht.org/checkin/web/common"
)

type ClassroomDTO struct {
	Name string `json:"name" binding:"required"`
}

func (ep *Endpoint) ListClassrooms(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.Classrooms.List()))
}

func (ep *Endpoint) AddClassroom(c *gin.Context) {
	var dto ClassroomDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	if err := ep.Classrooms.Add(dto.Name); err != nil {
		if errors.Is(err, localstore.ErrDuplicateClassroom) {
			c.JSON(http.StatusBadRequest, common.NewErrorResponse("A classroom with that name already exists"))
			return
		}
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, common.NewSuccessResponse(ep.Classrooms.List()))
}

type ClassroomCorrectionDTO struct {
	Classroom string `json:"classroom"`
}

// CorrectClassroom moves a check-in to a different service grouping, the
// one record correction allowed besides release.
func (ep *Endpoint) CorrectClassroom(c *gin.Context) {
	var dto ClassroomCorrectionDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}

	rec, err := ep.Repo.CorrectClassroom(c.Request.Context(), c.Param("id"), dto.Classroom)
	if err != nil {
		c.JSON(http.StatusBadGateway, common.NewErrorResponse(err.Error()))
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, common.NewErrorResponse("No check-in found for that id"))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(rec))
}

func (ep *Endpoint) GetPrefs(c *gin.Context) {
	c.JSON(http.StatusOK, common.NewSuccessResponse(ep.Prefs.Get()))
}

func (ep *Endpoint) SetPrefs(c *gin.Context) {
	var prefs localstore.Prefs
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingError(err)))
		return
	}
	if err := ep.Prefs.Set(prefs); err != nil {
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, common.NewSuccessResponse(prefs))
}
