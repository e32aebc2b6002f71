package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gcbaptista/court-finder/services"
)

// ListReviewsHandler returns the reviews of a court, oldest first.
func (api *API) ListReviewsHandler(c *gin.Context) {
	courtID := c.Param("courtId")
	if v := ValidateCourtID(courtID); v.HasErrors() {
		SendValidationError(c, v)
		return
	}

	reviews, err := api.courts.Reviews(courtID)
	if err != nil {
		api.handleServiceError(c, "list reviews", err)
		return
	}

	statusOK(c, gin.H{
		"court_id": courtID,
		"reviews":  reviews,
		"total":    len(reviews),
	})
}

// SubmitReviewHandler adds a review to a court.
func (api *API) SubmitReviewHandler(c *gin.Context) {
	courtID := c.Param("courtId")
	if v := ValidateCourtID(courtID); v.HasErrors() {
		SendValidationError(c, v)
		return
	}

	var input services.ReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			SendPayloadTooLargeError(c, tooLarge.Limit)
			return
		}
		SendInvalidJSONError(c, err)
		return
	}

	review, err := api.courts.SubmitReview(courtID, input)
	if err != nil {
		api.handleServiceError(c, "submit review", err)
		return
	}

	c.JSON(http.StatusCreated, review)
}
