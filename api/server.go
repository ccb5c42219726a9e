package api

import (
	"context"
	"net/http"
	"time"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gutsafe/gutsafe-api/logmodule"
	"github.com/gutsafe/gutsafe-api/report"
	"github.com/gutsafe/gutsafe-api/store"
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
	mongoStore store.GutSafeStore

	// Report pipeline
	reportGenerator *report.Generator

	// Cache backend, pinged by healthz
	redisClient *redis.Client
}

// NewServer new instance of server
func NewServer(mongoClient *mongo.Client, redisClient *redis.Client) *Server {
	mongoStore := store.NewGutSafeStore(mongoClient, viper.GetString("mongo.database"))

	return &Server{
		mongoStore:      mongoStore,
		reportGenerator: report.NewGenerator(mongoStore, report.NewRedisCache(redisClient), nil),
		redisClient:     redisClient,
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
	r.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-GutSafe-Account"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))

	apiRoute := r.Group("/api")
	apiRoute.Use(logmodule.Ginrus("API"))
	apiRoute.GET("/information", s.information)

	// api route other than `/information` requires an account
	apiRoute.Use(s.recognizeAccountMiddleware())

	symptomRoute := apiRoute.Group("/symptoms")
	{
		symptomRoute.GET("", s.getSymptoms)
		symptomRoute.POST("", s.createSymptom)
	}

	logRoute := apiRoute.Group("/symptom-logs")
	{
		logRoute.POST("", s.appendSymptomLog)
		logRoute.GET("", s.getSymptomLogs)
		logRoute.GET("/export", s.exportSymptomLogs)
		logRoute.POST("/import", s.importSymptomLogs)
		logRoute.PATCH("/:logID", s.updateSymptomLog)
		logRoute.DELETE("/:logID", s.removeSymptomLog)
	}

	reportRoute := apiRoute.Group("/reports")
	{
		reportRoute.GET("/:period", s.getReport)
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

// recognizeAccountMiddleware attaches the account number resolved by the
// auth gateway in front of this service. It attaches an "account" key in
// gin's context.
func (s *Server) recognizeAccountMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		accountNumber := c.GetHeader("X-GutSafe-Account")
		if accountNumber == "" {
			abortWithEncoding(c, http.StatusUnauthorized, errorAccountNotFound)
			return
		}

		c.Set("account", accountNumber)
		c.Next()
	}
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.mongoStore.Ping()
	if shouldInterupt(err, c) {
		return
	}

	if s.redisClient != nil {
		if err := s.redisClient.Ping(c.Request.Context()).Err(); shouldInterupt(err, c) {
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"android":        viper.GetStringMap("clients.android"),
			"ios":            viper.GetStringMap("clients.ios"),
			"system_version": "GutSafe 0.1",
			"docs":           viper.GetStringMap("docs"),
		},
	})
}

func responseWithEncoding(c *gin.Context, code int, obj ErrorResponse) {
	acceptEncoding := c.GetHeader("Accept-Encoding")
	switch acceptEncoding {
	default:
		c.JSON(code, obj)
	}
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	responseWithEncoding(c, code, obj)
	c.Abort()
}
