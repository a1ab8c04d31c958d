package controllers

import (
	"errors"
	"io"
	"net/http"

	"pokerhands/models"
	"pokerhands/services/poker"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// @Summary Classify poker hands
// @Description Classifies up to 10 five-card hands and flags the strongest one.
// @Description Hands that fail validation are listed under "error" without aborting the others.
// @Tags hands
// @Accept json
// @Produce json
// @Param request body models.EvaluateRequest true "Hands to classify"
// @Success 200 {object} models.EvaluateResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 422 {object} models.ErrorResponse
// @Router /api/v1/hands/evaluate [post]
func EvaluateHands(logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.EvaluateRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid JSON body"})
			return
		}

		hands, err := req.Hands()
		if err != nil {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
			return
		}

		res, err := poker.EvaluateBatch(hands)
		if err != nil {
			if poker.IsBatchShapeError(err) {
				c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Error: err.Error()})
				return
			}
			logger.Error("batch evaluation failed", "err", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
			return
		}

		best, found := res.Best()
		logger.Debug("evaluated hands",
			"hands", len(hands),
			"classified", len(res.Results),
			"errors", len(res.Failures),
			"best", best.Raw,
			"found", found)

		c.JSON(http.StatusOK, models.NewEvaluateResponse(res))
	}
}

// @Summary List hand categories
// @Description Returns the nine hand categories with the rank used to pick the best hand
// @Tags hands
// @Produce json
// @Success 200 {object} models.CategoriesResponse
// @Router /api/v1/hands/categories [get]
func ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, models.NewCategoriesResponse())
}
