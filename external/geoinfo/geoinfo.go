package geoinfo

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "geoinfo"
	defaultTimeout = 5 * time.Second
)

var ErrNoGeoInfoFound = fmt.Errorf("no geo information found")

// GeoInfo - interface to operate google maps
type GeoInfo interface {
	ReverseGeocode(lng, lat float64) (string, error)
}

type geoInfo struct {
	client *maps.Client
}

// ReverseGeocode resolves a formatted street address for a coordinate
// pair given in [longitude, latitude] order.
func (g geoInfo) ReverseGeocode(lng, lat float64) (string, error) {
	log.WithFields(log.Fields{
		"prefix": logPrefix,
		"lat":    lat,
		"lng":    lng,
	}).Debug("query geo info")

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{LatLng: &maps.LatLng{
		Lat: lat,
		Lng: lng,
	}})
	if err != nil {
		return "", err
	}
	if len(results) == 0 {
		return "", ErrNoGeoInfoFound
	}

	return results[0].FormattedAddress, nil
}

// New - new GeoInfo interface
func New(apiKey string) (GeoInfo, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geoInfo{
		client: client,
	}, nil
}
