package api

import (
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/placeloop/placeloop-api/schema"
	"github.com/placeloop/placeloop-api/store"
)

type locationRequest struct {
	Name         string               `json:"name"`
	Address      string               `json:"address"`
	Facilities   []string             `json:"facilities"`
	Coords       []float64            `json:"coords"`
	OpeningTimes []schema.OpeningTime `json:"openingTimes"`
}

// toSchema maps a request body onto the client-settable location fields.
// Rating and reviews submitted by clients are dropped here.
func (r *locationRequest) toSchema() *schema.Location {
	location := &schema.Location{
		Name:         r.Name,
		Address:      r.Address,
		Facilities:   r.Facilities,
		OpeningTimes: r.OpeningTimes,
	}

	if r.Coords != nil {
		location.Location = &schema.GeoJSON{
			Type:        "Point",
			Coordinates: r.Coords,
		}
	}

	return location
}

// listLocations responds with locations ordered by distance from the
// queried point, bounded by maxDistance (meters, default 200 km).
func (s *Server) listLocations(c *gin.Context) {
	lng, err := parseFiniteFloat(c.Query("lng"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}
	lat, err := parseFiniteFloat(c.Query("lat"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	maxDistance := float64(store.DefaultSearchRadiusMeters)
	if raw := c.Query("maxDistance"); raw != "" {
		maxDistance, err = parseFiniteFloat(raw)
		if err != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
			return
		}
		if maxDistance < 0 {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
	}

	locations, err := s.mongoStore.NearestLocations(lng, lat, maxDistance)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

func (s *Server) createLocation(c *gin.Context) {
	var body locationRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	location, err := s.mongoStore.CreateLocation(body.toSchema())
	if err != nil {
		if ve, ok := err.(*schema.ValidationError); ok {
			abortWithEncoding(c, http.StatusBadRequest, ErrorResponse{
				Code:    errorInvalidParameters.Code,
				Message: ve.Error(),
			})
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

func (s *Server) getLocation(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocationID)
		return
	}

	location, err := s.mongoStore.GetLocation(locationID)
	if err != nil {
		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorLocationNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, location)
}

func (s *Server) updateLocation(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocationID)
		return
	}

	var body locationRequest
	if err := c.BindJSON(&body); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	location, err := s.mongoStore.UpdateLocation(locationID, body.toSchema())
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

	c.JSON(http.StatusOK, location)
}

func (s *Server) deleteLocation(c *gin.Context) {
	locationID, err := primitive.ObjectIDFromHex(c.Param("locationID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidLocationID)
		return
	}

	if err := s.mongoStore.DeleteLocation(locationID); err != nil {
		switch err {
		case store.ErrLocationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorLocationNotFound)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// parseFiniteFloat rejects anything that does not parse to a finite
// number, NaN and infinities included.
func parseFiniteFloat(raw string) (float64, error) {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, strconv.ErrSyntax
	}
	return value, nil
}
