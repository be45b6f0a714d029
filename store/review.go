package store

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/placeloop/placeloop-api/schema"
)

type ReviewStore interface {
	AddReview(locationID primitive.ObjectID, review *schema.Review) (*schema.Review, error)
	GetReview(locationID, reviewID primitive.ObjectID) (*schema.LocationReview, error)
	UpdateReview(locationID, reviewID primitive.ObjectID, update schema.ReviewUpdate) (*schema.Review, error)
	DeleteReview(locationID, reviewID primitive.ObjectID) error
}

// AddReview validates and appends a review to its owning location, then
// refreshes the location's derived rating.
func (m *mongoDB) AddReview(locationID primitive.ObjectID, review *schema.Review) (*schema.Review, error) {
	if err := review.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	review.ID = primitive.NewObjectID()
	review.CreatedOn = time.Now().UTC()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": locationID},
		bson.M{"$push": bson.M{"reviews": review}},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, ErrLocationNotFound
	}

	m.refreshAverageRating(locationID)

	return review, nil
}

// GetReview finds a single review inside its owning location.
func (m *mongoDB) GetReview(locationID, reviewID primitive.ObjectID) (*schema.LocationReview, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	var result struct {
		ID      primitive.ObjectID `bson:"_id"`
		Name    string             `bson:"name"`
		Reviews []schema.Review    `bson:"reviews"`
	}
	err := c.FindOne(ctx,
		bson.M{"_id": locationID},
		options.FindOne().SetProjection(bson.M{
			"name":    1,
			"reviews": bson.M{"$elemMatch": bson.M{"_id": reviewID}},
		}),
	).Decode(&result)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}
	if len(result.Reviews) == 0 {
		return nil, ErrReviewNotFound
	}

	return &schema.LocationReview{
		Location: schema.LocationRef{
			ID:   result.ID,
			Name: result.Name,
		},
		Review: result.Reviews[0],
	}, nil
}

// UpdateReview applies the provided subset of review fields through the
// positional operator, refreshes the review timestamp and the location's
// derived rating.
func (m *mongoDB) UpdateReview(locationID, reviewID primitive.ObjectID, update schema.ReviewUpdate) (*schema.Review, error) {
	set := bson.M{"reviews.$.created_on": time.Now().UTC()}

	var fields []string
	if update.Author != nil {
		if strings.TrimSpace(*update.Author) == "" {
			fields = append(fields, "author")
		}
		set["reviews.$.author"] = *update.Author
	}
	if update.Rating != nil {
		if *update.Rating < 0 || *update.Rating > 5 {
			fields = append(fields, "rating")
		}
		set["reviews.$.rating"] = *update.Rating
	}
	if update.ReviewText != nil {
		if strings.TrimSpace(*update.ReviewText) == "" {
			fields = append(fields, "reviewText")
		}
		set["reviews.$.review_text"] = *update.ReviewText
	}
	if len(fields) > 0 {
		return nil, &schema.ValidationError{Fields: fields}
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": locationID, "reviews._id": reviewID},
		bson.M{"$set": set},
	)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		// distinguish an unknown location from an unknown review
		if _, err := m.GetLocation(locationID); err != nil {
			return nil, err
		}
		return nil, ErrReviewNotFound
	}

	m.refreshAverageRating(locationID)

	updated, err := m.GetReview(locationID, reviewID)
	if err != nil {
		return nil, err
	}
	return &updated.Review, nil
}

// DeleteReview pulls a review out of its owning location and refreshes
// the derived rating.
func (m *mongoDB) DeleteReview(locationID, reviewID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	result, err := c.UpdateOne(ctx,
		bson.M{"_id": locationID},
		bson.M{"$pull": bson.M{"reviews": bson.M{"_id": reviewID}}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrLocationNotFound
	}
	if result.ModifiedCount == 0 {
		return ErrReviewNotFound
	}

	m.refreshAverageRating(locationID)

	return nil
}

// refreshAverageRating recomputes the derived rating from the current
// review sequence. The surrounding review mutation has already succeeded,
// so a failure here is logged and swallowed; the rating converges on the
// next recomputation.
func (m *mongoDB) refreshAverageRating(locationID primitive.ObjectID) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	var location struct {
		Reviews []schema.Review `bson:"reviews"`
	}
	err := c.FindOne(ctx,
		bson.M{"_id": locationID},
		options.FindOne().SetProjection(bson.M{"reviews.rating": 1}),
	).Decode(&location)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location_id": locationID.Hex(),
			"error":       err,
		}).Error("reload reviews for rating recomputation")
		return
	}

	rating := schema.AverageRating(location.Reviews)
	if _, err := c.UpdateOne(ctx,
		bson.M{"_id": locationID},
		bson.M{"$set": bson.M{"rating": rating}},
	); err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"location_id": locationID.Hex(),
			"rating":      rating,
			"error":       err,
		}).Error("persist recomputed rating")
	}
}
