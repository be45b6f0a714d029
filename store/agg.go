package store

import (
	"go.mongodb.org/mongo-driver/bson"
)

// aggStageGeoProximity builds a $geoNear stage over the locations 2dsphere
// index. Coordinates are [longitude, latitude]; the computed distance is
// written to the "distance" field in meters.
func aggStageGeoProximity(lng, lat, maxDistanceMeters float64) bson.M {
	return bson.M{
		"$geoNear": bson.M{
			"near": bson.M{
				"type":        "Point",
				"coordinates": bson.A{lng, lat},
			},
			"distanceField": "distance",
			"maxDistance":   maxDistanceMeters,
			"spherical":     true,
			"key":           "location",
		},
	}
}
