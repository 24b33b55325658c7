package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"briefly/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// NewRouter wires the API routes onto a gin engine.
// When metrics is non-nil, requests are instrumented and exported on /metrics.
func NewRouter(h *APIHandler, metrics *Metrics) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), requestLogger(), gin.Recovery())
	if metrics != nil {
		router.Use(metrics.Middleware())
		router.GET(metricsPath, gin.WrapH(metrics.Handler()))
	}

	router.POST(models.PathSummarize, h.SummarizeHandler)
	router.POST(models.PathGenerateNotes, h.GenerateNotesHandler)
	router.GET(models.PathHealth, h.HealthHandler)
	return router
}

// requestID tags every request with an ID, reusing the caller's when given.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"request_id": c.GetString("request_id"),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).Round(time.Millisecond).String(),
		}).Info("request handled")
	}
}

// Run serves router on addr until ctx is canceled, then shuts down gracefully.
func Run(ctx context.Context, addr string, router http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting API server on http://%s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to run API server: %w", err)
	case <-ctx.Done():
		log.Info("Shutting down API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown API server: %w", err)
		}
		return nil
	}
}
