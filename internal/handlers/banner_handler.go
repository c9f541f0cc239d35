package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/meetapp/server/internal/helpers"
	"github.com/meetapp/server/internal/models"
	"github.com/meetapp/server/internal/services"
)

func AttachBanner(s *services.BannerService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := currentUser(c); !ok {
			return
		}
		meetingID, ok := meetingIDParam(c)
		if !ok {
			return
		}

		var input services.AttachBannerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(models.ErrValidation.Error()))
			return
		}

		banner, err := s.Attach(c.Request.Context(), meetingID, input)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, helpers.SuccessResponse(banner, "banner attached"))
	}
}
