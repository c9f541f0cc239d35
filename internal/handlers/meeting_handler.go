package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meetapp/server/internal/helpers"
	"github.com/meetapp/server/internal/models"
	"github.com/meetapp/server/internal/services"
)

func ListMeetings(s *services.MeetingService, pageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		page, ok := pageParam(c)
		if !ok {
			return
		}

		meetings, err := s.List(c.Request.Context(), userID, page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.PaginatedResponse(meetings, page, pageSize))
	}
}

func CreateMeeting(s *services.MeetingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var input services.CreateMeetingInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(models.ErrValidation.Error()))
			return
		}

		meeting, err := s.Create(c.Request.Context(), userID, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(meeting, "meeting created"))
	}
}

func UpdateMeeting(s *services.MeetingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		meetingID, ok := meetingIDParam(c)
		if !ok {
			return
		}

		var patch services.UpdateMeetingInput
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(models.ErrValidation.Error()))
			return
		}

		meeting, err := s.Update(c.Request.Context(), userID, meetingID, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(meeting, "meeting updated"))
	}
}

func CancelMeeting(s *services.MeetingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		meetingID, ok := meetingIDParam(c)
		if !ok {
			return
		}

		meeting, err := s.Cancel(c.Request.Context(), userID, meetingID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(meeting, "meeting canceled"))
	}
}
