package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cryptoetl/internal/logger"
	"cryptoetl/internal/resolver"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(r resolver.Resolver, metricsHandler http.Handler, log *logger.Log) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger(log))
	router.Use(cors.Default())

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "welcome to cryptoetl"})
	})

	router.GET("/health", func(c *gin.Context) {
		out, ok := r.Health(c.Request.Context())
		code := http.StatusOK
		if !ok {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, out)
	})

	router.GET("/summary", func(c *gin.Context) {
		out, err := r.GetSummary(c.Request.Context())
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	router.GET("/stats", func(c *gin.Context) {
		out, err := r.GetMarketStats(c.Request.Context())
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	router.GET("/runs/latest", func(c *gin.Context) {
		out, err := r.GetLatestRun(c.Request.Context())
		if errors.Is(err, resolver.ErrNoCompletedRun) {
			returnErrorJsonCode(err, c, http.StatusNotFound)
			return
		}
		if err != nil {
			returnErrorJson(err, c)
			return
		}
		c.JSON(http.StatusOK, out)
	})

	if metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(metricsHandler))
	}

	return router
}

// Serve blocks until ctx is cancelled, then drains in-flight requests
func Serve(ctx context.Context, port int, handler http.Handler) error {
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("api server stopped: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down api server: %w", err)
	}
	return nil
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, http.StatusInternalServerError)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func requestLogger(log *logger.Log) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithComponent("api").WithFields(logger.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		})
		if len(c.Errors) > 0 {
			entry.WithError(c.Errors.Last()).Warn("request failed")
			return
		}
		entry.Debug("request served")
	}
}
