package store

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/placeloop/placeloop-api/external/geoinfo"
	"github.com/placeloop/placeloop-api/external/mocks"
	"github.com/placeloop/placeloop-api/schema"
)

func boolPtr(b bool) *bool {
	return &b
}

func testOpeningTimes() []schema.OpeningTime {
	return []schema.OpeningTime{
		{Days: "Monday - Friday", Opening: "7:00am", Closing: "7:00pm", Closed: boolPtr(false)},
		{Days: "Saturday - Sunday", Closed: boolPtr(true)},
	}
}

func testLocation(name string, lng, lat float64) *schema.Location {
	return &schema.Location{
		Name: name,
		Location: &schema.GeoJSON{
			Type:        "Point",
			Coordinates: []float64{lng, lat},
		},
		Facilities:   []string{"wifi"},
		OpeningTimes: testOpeningTimes(),
	}
}

type LocationTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewLocationTestSuite(connURI, dbName string) *LocationTestSuite {
	return &LocationTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *LocationTestSuite) SetupSuite() {
	if s.connURI == "" || s.testDBName == "" {
		s.T().Fatal("invalid test suite configuration")
	}

	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)

	// make sure the test suite is run with a clean environment
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	schema.NewMongoDBIndexer(s.connURI, s.testDBName).IndexAll()

	s.store = NewMongoStore(s.mongoClient, s.testDBName, nil)
}

// CleanMongoDB drop the whole test mongodb
func (s *LocationTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *LocationTestSuite) TestCreateLocation() {
	created, err := s.store.CreateLocation(testLocation("Café A", 127.0, 37.0))
	s.NoError(err)
	s.False(created.ID.IsZero())
	s.Equal("Café A", created.Name)
	s.Equal(0, created.Rating)
	s.Len(created.Reviews, 0)

	var stored schema.Location
	err = s.testDatabase.Collection(schema.LocationCollection).
		FindOne(context.Background(), bson.M{"_id": created.ID}).Decode(&stored)
	s.NoError(err)
	s.Equal([]float64{127.0, 37.0}, stored.Location.Coordinates)
	s.Equal(0, stored.Rating)
	s.NotNil(stored.Reviews)
}

func (s *LocationTestSuite) TestCreateLocationInvalid() {
	location := testLocation("", 127.0, 37.0)
	location.OpeningTimes = nil

	_, err := s.store.CreateLocation(location)
	s.Error(err)

	ve, ok := err.(*schema.ValidationError)
	s.True(ok)
	s.Contains(ve.Fields, "name")
	s.Contains(ve.Fields, "openingTimes")
}

// An absent address gets resolved from the coordinates when a geo
// client is configured. A submitted address is left alone.
func (s *LocationTestSuite) TestCreateLocationAddressAutofill() {
	ctl := gomock.NewController(s.T())
	defer ctl.Finish()

	geoClient := mocks.NewMockGeoInfo(ctl)
	geoClient.EXPECT().ReverseGeocode(127.0, 37.0).Return("1 Resolved Street", nil).Times(1)

	geoStore := NewMongoStore(s.mongoClient, s.testDBName, geoClient)

	created, err := geoStore.CreateLocation(testLocation("Café C", 127.0, 37.0))
	s.NoError(err)
	s.Equal("1 Resolved Street", created.Address)

	submitted := testLocation("Café D", 127.0, 37.0)
	submitted.Address = "2 Client Road"
	created, err = geoStore.CreateLocation(submitted)
	s.NoError(err)
	s.Equal("2 Client Road", created.Address)
}

// A geocoding failure never blocks the insert.
func (s *LocationTestSuite) TestCreateLocationAddressAutofillFailure() {
	ctl := gomock.NewController(s.T())
	defer ctl.Finish()

	geoClient := mocks.NewMockGeoInfo(ctl)
	geoClient.EXPECT().ReverseGeocode(127.0, 37.0).
		Return("", geoinfo.ErrNoGeoInfoFound).Times(1)

	geoStore := NewMongoStore(s.mongoClient, s.testDBName, geoClient)

	created, err := geoStore.CreateLocation(testLocation("Café E", 127.0, 37.0))
	s.NoError(err)
	s.Equal("", created.Address)
}

func (s *LocationTestSuite) TestGetLocationNotFound() {
	_, err := s.store.GetLocation(primitive.NewObjectID())
	s.Equal(ErrLocationNotFound, err)
}

func (s *LocationTestSuite) TestUpdateLocation() {
	created, err := s.store.CreateLocation(testLocation("Old Name", 127.0, 37.0))
	s.NoError(err)

	update := testLocation("New Name", 128.0, 36.5)
	update.Address = "1 High Street"
	update.Facilities = []string{"wifi", "power"}

	updated, err := s.store.UpdateLocation(created.ID, update)
	s.NoError(err)
	s.Equal("New Name", updated.Name)
	s.Equal("1 High Street", updated.Address)
	s.Equal([]float64{128.0, 36.5}, updated.Location.Coordinates)
	s.Equal([]string{"wifi", "power"}, updated.Facilities)
}

// Rating and the review sequence are derived state; an update request
// must never write them even when the caller supplies values.
func (s *LocationTestSuite) TestUpdateLocationIgnoresDerivedFields() {
	created, err := s.store.CreateLocation(testLocation("Café B", 127.0, 37.0))
	s.NoError(err)

	_, err = s.store.AddReview(created.ID, &schema.Review{
		Author:     "alice",
		Rating:     5,
		ReviewText: "flat whites done right",
	})
	s.NoError(err)

	update := testLocation("Café B", 127.0, 37.0)
	update.Rating = 1
	update.Reviews = []schema.Review{}

	updated, err := s.store.UpdateLocation(created.ID, update)
	s.NoError(err)
	s.Equal(5, updated.Rating)
	s.Len(updated.Reviews, 1)
}

func (s *LocationTestSuite) TestUpdateLocationNotFound() {
	_, err := s.store.UpdateLocation(primitive.NewObjectID(), testLocation("Ghost", 127.0, 37.0))
	s.Equal(ErrLocationNotFound, err)
}

func (s *LocationTestSuite) TestDeleteLocation() {
	created, err := s.store.CreateLocation(testLocation("Doomed", 127.0, 37.0))
	s.NoError(err)

	review, err := s.store.AddReview(created.ID, &schema.Review{
		Author:     "bob",
		Rating:     3,
		ReviewText: "average at best",
	})
	s.NoError(err)

	s.NoError(s.store.DeleteLocation(created.ID))

	_, err = s.store.GetLocation(created.ID)
	s.Equal(ErrLocationNotFound, err)

	// embedded reviews are gone with the aggregate
	_, err = s.store.GetReview(created.ID, review.ID)
	s.Equal(ErrLocationNotFound, err)

	s.Equal(ErrLocationNotFound, s.store.DeleteLocation(created.ID))
}

func (s *LocationTestSuite) TestNearestLocations() {
	// ordering assertions need full control over the collection content
	_, err := s.testDatabase.Collection(schema.LocationCollection).
		DeleteMany(context.Background(), bson.M{})
	s.NoError(err)

	center, err := s.store.CreateLocation(testLocation("Center", 127.0, 37.0))
	s.NoError(err)
	near, err := s.store.CreateLocation(testLocation("Near", 127.01, 37.0))
	s.NoError(err)
	far, err := s.store.CreateLocation(testLocation("Far", 127.1, 37.0))
	s.NoError(err)
	_, err = s.store.CreateLocation(testLocation("Out of range", 130.0, 37.0))
	s.NoError(err)

	results, err := s.store.NearestLocations(127.0, 37.0, DefaultSearchRadiusMeters)
	s.NoError(err)
	s.Len(results, 3)

	s.Equal(center.ID, results[0].ID)
	s.Equal(near.ID, results[1].ID)
	s.Equal(far.ID, results[2].ID)

	for i, r := range results {
		s.True(r.Distance <= DefaultSearchRadiusMeters)
		if i > 0 {
			s.True(results[i-1].Distance <= r.Distance)
		}
	}

	// a tighter radius truncates the result set
	results, err = s.store.NearestLocations(127.0, 37.0, 1000)
	s.NoError(err)
	s.Len(results, 2)
	s.Equal(center.ID, results[0].ID)
	s.Equal(near.ID, results[1].ID)
}

func (s *LocationTestSuite) TearDownSuite() {
	if s.mongoClient != nil {
		_ = s.mongoClient.Disconnect(context.Background())
	}
}

func TestLocationTestSuite(t *testing.T) {
	suite.Run(t, NewLocationTestSuite("mongodb://127.0.0.1:27017/?compressors=disabled", "test-db"))
}
