package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/placeloop/placeloop-api/logmodule"
	"github.com/placeloop/placeloop-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	mongoStore store.MongoStore

	// JWT signing secret
	jwtSecret []byte
}

// NewServer new instance of server
func NewServer(mongoStore store.MongoStore, jwtSecret []byte) *Server {
	return &Server{
		mongoStore: mongoStore,
		jwtSecret:  jwtSecret,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute.POST("/register", s.accountRegister)
	apiRoute.POST("/login", s.accountLogin)

	locationRoute := apiRoute.Group("/locations")
	{
		locationRoute.GET("", s.listLocations)
		locationRoute.POST("", s.createLocation)
		locationRoute.GET("/:locationID", s.getLocation)
		locationRoute.PUT("/:locationID", s.updateLocation)
		locationRoute.DELETE("/:locationID", s.deleteLocation)

		locationRoute.GET("/:locationID/reviews/:reviewID", s.getReview)
	}

	// review mutations require a verified bearer token resolved to a
	// known account
	reviewRoute := apiRoute.Group("/locations/:locationID/reviews")
	reviewRoute.Use(s.authMiddleware())
	reviewRoute.Use(s.recognizeAccountMiddleware())
	{
		reviewRoute.POST("", s.addReview)
		reviewRoute.PUT("/:reviewID", s.updateReview)
		reviewRoute.DELETE("/:reviewID", s.deleteReview)
	}

	r.GET("/healthz", s.healthz)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
