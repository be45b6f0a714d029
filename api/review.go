package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placeloop/placeloop-api/schema"
	"github.com/placeloop/placeloop-api/store"
)

// addReview appends a review to a location on behalf of the authenticated
// account. The review author is a snapshot of the account's display name
// at submission time.
func (s *Server) addReview(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocationID)
		return
	}

	account, ok := c.MustGet("account").(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	var body struct {
		Rating     *int   `json:"rating" binding:"required"`
		ReviewText string `json:"reviewText" binding:"required"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	review, err := s.mongoStore.AddReview(locationID, &schema.Review{
		Author:     account.Name,
		Rating:     *body.Rating,
		ReviewText: body.ReviewText,
	})
	if err != nil {
		if ve, ok := err.(*schema.ValidationError); ok {
			abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
				Code:    errorInvalidParameters.Code,
				Message: ve.Error(),
			})
			return
		}

		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorLocationNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

func (s *Server) getReview(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocationID)
		return
	}
	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidReviewID)
		return
	}

	review, err := s.mongoStore.GetReview(locationID, reviewID)
	if err != nil {
		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorLocationNotFound)
		case store.ErrReviewNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorReviewNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

// updateReview applies a partial edit to a review. Any authenticated
// account may edit any review; author matching is a policy decision left
// to the deployment.
func (s *Server) updateReview(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocationID)
		return
	}
	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidReviewID)
		return
	}

	var body struct {
		Author     *string `json:"author"`
		Rating     *int    `json:"rating"`
		ReviewText *string `json:"reviewText"`
	}
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	review, err := s.mongoStore.UpdateReview(locationID, reviewID, schema.ReviewUpdate{
		Author:     body.Author,
		Rating:     body.Rating,
		ReviewText: body.ReviewText,
	})
	if err != nil {
		if ve, ok := err.(*schema.ValidationError); ok {
			abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
				Code:    errorInvalidParameters.Code,
				Message: ve.Error(),
			})
			return
		}

		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorLocationNotFound)
		case store.ErrReviewNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorReviewNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

func (s *Server) deleteReview(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocationID)
		return
	}
	reviewID, err := primitive.ObjectIDFromHex(c.Param("reviewID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidReviewID)
		return
	}

	if err := s.mongoStore.DeleteReview(locationID, reviewID); err != nil {
		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorLocationNotFound)
		case store.ErrReviewNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorReviewNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
