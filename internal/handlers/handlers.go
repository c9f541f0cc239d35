package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/meetapp/server/internal/helpers"
	"github.com/meetapp/server/internal/models"
)

// statusFor keeps the original API's status mapping: shape and timing
// problems on the request body are 400, everything tied to lookups,
// ownership and cancellation rules is 401.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrPastDate),
		errors.Is(err, models.ErrDuplicateSubscription),
		errors.Is(err, models.ErrTimeConflict):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrMeetingNotFound),
		errors.Is(err, models.ErrSubscriptionNotFound),
		errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrCancellationWindow),
		errors.Is(err, models.ErrSelfSubscription):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError answers a failed operation. Non-domain errors are deferred to
// the error middleware, which logs them and answers a generic 500.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
		c.Status(status)
		return
	}
	c.JSON(status, helpers.ErrorResponse(err.Error()))
}

func currentUser(c *gin.Context) (uint, bool) {
	id, ok := helpers.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
	}
	return id, ok
}

func meetingIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid meeting ID"))
		return 0, false
	}
	return uint(id), true
}

func pageParam(c *gin.Context) (int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid page parameter"))
		return 0, false
	}
	return page, true
}
