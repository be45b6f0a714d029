package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/placeloop/placeloop-api/schema"
)

var (
	ErrLocationNotFound = fmt.Errorf("location not found")
	ErrReviewNotFound   = fmt.Errorf("review not found")
)

// DefaultSearchRadiusMeters bounds a nearest-location query when the
// caller does not supply a radius.
const DefaultSearchRadiusMeters = 200000

type LocationStore interface {
	CreateLocation(location *schema.Location) (*schema.Location, error)
	GetLocation(id primitive.ObjectID) (*schema.Location, error)
	UpdateLocation(id primitive.ObjectID, location *schema.Location) (*schema.Location, error)
	DeleteLocation(id primitive.ObjectID) error
	NearestLocations(lng, lat, maxDistanceMeters float64) ([]schema.LocationDistance, error)
}

// CreateLocation validates and inserts a new location. The derived rating
// starts at 0 and the review sequence starts empty regardless of input.
func (m *mongoDB) CreateLocation(location *schema.Location) (*schema.Location, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	location.ID = primitive.NewObjectID()
	location.Rating = 0
	location.Reviews = []schema.Review{}
	if location.Facilities == nil {
		location.Facilities = []string{}
	}

	if location.Address == "" && m.geoClient != nil {
		address, err := m.geoClient.ReverseGeocode(
			location.Location.Coordinates[0], location.Location.Coordinates[1])
		if err != nil {
			log.WithField("prefix", mongoLogPrefix).WithError(err).Warn("resolve location address")
		} else {
			location.Address = address
		}
	}

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	if _, err := c.InsertOne(ctx, location); err != nil {
		return nil, err
	}

	return location, nil
}

// GetLocation finds a location together with its embedded reviews.
func (m *mongoDB) GetLocation(id primitive.ObjectID) (*schema.Location, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	var location schema.Location
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&location); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	return &location, nil
}

// UpdateLocation replaces the client-settable fields of a location.
// Rating and reviews are never written from this path.
func (m *mongoDB) UpdateLocation(id primitive.ObjectID, location *schema.Location) (*schema.Location, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if location.Facilities == nil {
		location.Facilities = []string{}
	}

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	result := c.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"name":          location.Name,
			"address":       location.Address,
			"facilities":    location.Facilities,
			"location":      location.Location,
			"opening_times": location.OpeningTimes,
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	var updated schema.Location
	if err := result.Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrLocationNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// DeleteLocation removes a location document. Embedded reviews go with it
// in the same write.
func (m *mongoDB) DeleteLocation(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)
	result, err := c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrLocationNotFound
	}

	return nil
}

// NearestLocations runs a spherical $geoNear over locations with valid
// coordinates, bounded by maxDistanceMeters and ordered by increasing
// distance. Distances are reported in meters.
func (m *mongoDB) NearestLocations(lng, lat, maxDistanceMeters float64) ([]schema.LocationDistance, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.LocationCollection)

	cursor, err := c.Aggregate(ctx, []bson.M{
		aggStageGeoProximity(lng, lat, maxDistanceMeters),
	})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearest locations with error: %s", err)
		return nil, err
	}

	locations := make([]schema.LocationDistance, 0)
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearest query gets %d records near long:%v lat:%v",
		len(locations), lng, lat)

	return locations, nil
}
