package schema

import (
	"fmt"
	"math"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	LocationCollection = "locations"
)

// GeoJSON is a point stored in [longitude, latitude] order to match the
// mongodb 2dsphere convention.
type GeoJSON struct {
	Type        string    `json:"type" bson:"type"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates"`
}

// OpeningTime is one day-range record of a location's weekly schedule.
// Closed is a pointer so that a missing boolean can be told apart from false.
type OpeningTime struct {
	Days    string `json:"days" bson:"days"`
	Opening string `json:"opening,omitempty" bson:"opening,omitempty"`
	Closing string `json:"closing,omitempty" bson:"closing,omitempty"`
	Closed  *bool  `json:"closed" bson:"closed"`
}

// Review is a subdocument embedded in its owning location. It has no
// collection of its own.
type Review struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Author     string             `json:"author" bson:"author"`
	Rating     int                `json:"rating" bson:"rating"`
	ReviewText string             `json:"reviewText" bson:"review_text"`
	CreatedOn  time.Time          `json:"createdOn" bson:"created_on"`
}

// ReviewUpdate carries the subset of review fields to change. Nil fields
// are left untouched.
type ReviewUpdate struct {
	Author     *string
	Rating     *int
	ReviewText *string
}

type Location struct {
	ID           primitive.ObjectID `json:"id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Address      string             `json:"address,omitempty" bson:"address,omitempty"`
	Location     *GeoJSON           `json:"coords" bson:"location"`
	Facilities   []string           `json:"facilities" bson:"facilities"`
	OpeningTimes []OpeningTime      `json:"openingTimes" bson:"opening_times"`
	Rating       int                `json:"rating" bson:"rating"`
	Reviews      []Review           `json:"reviews" bson:"reviews"`
}

// LocationDistance is one row of a nearest-location query. Distance is
// meters from the query point.
type LocationDistance struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Name       string             `json:"name" bson:"name"`
	Address    string             `json:"address,omitempty" bson:"address,omitempty"`
	Rating     int                `json:"rating" bson:"rating"`
	Facilities []string           `json:"facilities" bson:"facilities"`
	Distance   float64            `json:"distance" bson:"distance"`
}

// LocationReview is the read model of a single review together with a
// reference to its owning location.
type LocationReview struct {
	Location LocationRef `json:"location"`
	Review   Review      `json:"review"`
}

type LocationRef struct {
	ID   primitive.ObjectID `json:"id"`
	Name string             `json:"name"`
}

// ValidationError reports the request fields that failed validation.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Fields, ", "))
}

// Validate checks the client-settable fields of a location. Rating and
// reviews are derived server-side and are not inspected here.
func (l *Location) Validate() error {
	var fields []string

	if strings.TrimSpace(l.Name) == "" {
		fields = append(fields, "name")
	}

	if l.Location == nil || len(l.Location.Coordinates) != 2 {
		fields = append(fields, "coords")
	} else {
		for _, c := range l.Location.Coordinates {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				fields = append(fields, "coords")
				break
			}
		}
	}

	if len(l.OpeningTimes) != 2 {
		fields = append(fields, "openingTimes")
	} else {
		for i, t := range l.OpeningTimes {
			if strings.TrimSpace(t.Days) == "" {
				fields = append(fields, fmt.Sprintf("openingTimes.%d.days", i))
			}
			if t.Closed == nil {
				fields = append(fields, fmt.Sprintf("openingTimes.%d.closed", i))
			}
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Validate checks a review submission before it is pushed into the
// owning location.
func (r *Review) Validate() error {
	var fields []string

	if strings.TrimSpace(r.Author) == "" {
		fields = append(fields, "author")
	}
	if r.Rating < 0 || r.Rating > 5 {
		fields = append(fields, "rating")
	}
	if strings.TrimSpace(r.ReviewText) == "" {
		fields = append(fields, "reviewText")
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// AverageRating computes the derived location rating from its reviews:
// the mean rating rounded half away from zero, or 0 with no reviews.
func AverageRating(reviews []Review) int {
	if len(reviews) == 0 {
		return 0
	}

	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	return int(math.Round(float64(sum) / float64(len(reviews))))
}
