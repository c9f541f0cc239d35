package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meetapp/server/internal/helpers"
	"github.com/meetapp/server/internal/models"
	"github.com/meetapp/server/internal/services"
)

func ListSubscriptions(s *services.SubscriptionService, pageSize int) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		page, ok := pageParam(c)
		if !ok {
			return
		}

		subs, err := s.List(c.Request.Context(), userID, page)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.PaginatedResponse(subs, page, pageSize))
	}
}

func CreateSubscription(s *services.SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		meetingID, ok := meetingIDParam(c)
		if !ok {
			return
		}

		// The body is optional; when present its shape must still be valid.
		if c.Request.ContentLength > 0 {
			var input services.SubscribeInput
			if err := c.ShouldBindJSON(&input); err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse(models.ErrValidation.Error()))
				return
			}
		}

		sub, err := s.Subscribe(c.Request.Context(), userID, meetingID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(sub, "subscription created"))
	}
}

func CancelSubscription(s *services.SubscriptionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}
		meetingID, ok := meetingIDParam(c)
		if !ok {
			return
		}

		sub, err := s.Cancel(c.Request.Context(), userID, meetingID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(sub, "subscription canceled"))
	}
}
