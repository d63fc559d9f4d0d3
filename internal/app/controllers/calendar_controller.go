package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ardhiancalwa/Schola/internal/app/models/dto"
	"github.com/ardhiancalwa/Schola/internal/app/services"
	"github.com/ardhiancalwa/Schola/internal/middleware"
	"github.com/ardhiancalwa/Schola/internal/pkg/apperrors"
)

// CalendarController handles agenda endpoints
type CalendarController struct {
	calendarService *services.CalendarService
}

// NewCalendarController creates a new calendar controller
func NewCalendarController(calendarService *services.CalendarService) *CalendarController {
	return &CalendarController{calendarService: calendarService}
}

// CreateEvent godoc
// @Summary Create a calendar event
// @Tags calendar
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} dto.APIResponse{data=models.CalendarEvent}
// @Failure 400 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /calendar/events [post]
func (ctrl *CalendarController) CreateEvent(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	event, err := ctrl.calendarService.CreateEvent(c.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List calendar events for a month
// @Description Returns the month's events padded by a week on both sides
// @Tags calendar
// @Produce json
// @Param month query string false "Month, YYYY-MM (defaults to current)"
// @Success 200 {object} dto.APIResponse{data=[]dto.CalendarEventItem}
// @Security BearerAuth
// @Router /calendar/events [get]
func (ctrl *CalendarController) ListEvents(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrTokenInvalid)
		return
	}

	month := time.Now()
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			middleware.HandleAPIError(c, apperrors.NewBadRequestError("month must be in YYYY-MM format"))
			return
		}
		month = parsed
	}

	events, err := ctrl.calendarService.ListMonth(c.Request.Context(), userID, month)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, events)
}
