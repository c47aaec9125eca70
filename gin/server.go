// Package gin provides the HTTP API for skim, built on the Gin web framework.
package gin

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/fwojciec/skim"
	"github.com/fwojciec/skim/pipeline"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Server exposes summarization and summary retrieval over HTTP.
type Server struct {
	router *gin.Engine

	Pipeline  *pipeline.Pipeline
	Summaries skim.SummaryService
	Logger    *slog.Logger
}

// NewServer creates a new Server and registers its routes.
func NewServer(p *pipeline.Pipeline, summaries skim.SummaryService, logger *slog.Logger, allowedOrigins []string) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		router:    gin.New(),
		Pipeline:  p,
		Summaries: summaries,
		Logger:    logger,
	}

	s.router.Use(gin.Recovery())

	if len(allowedOrigins) > 0 {
		s.router.Use(cors.New(cors.Config{
			AllowOrigins: allowedOrigins,
			AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type"},
		}))
	}

	s.router.GET("/health", s.getHealth)
	s.router.POST("/api/summaries", s.createSummary)
	s.router.GET("/api/summaries", s.getSummaries)
	s.router.GET("/api/summaries/:id", s.getSummary)
	s.router.DELETE("/api/summaries/:id", s.deleteSummary)

	return s
}

// ServeHTTP implements http.Handler, delegating to the underlying router.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run starts the server on the given address and blocks until it exits.
func (s *Server) Run(addr string) error {
	s.Logger.Info("http server listening", "addr", addr)
	return s.router.Run(addr)
}

func (s *Server) getHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateSummaryRequest is the body of POST /api/summaries.
type CreateSummaryRequest struct {
	URL string `json:"url" binding:"required"`
}

func (s *Server) createSummary(c *gin.Context) {
	var req CreateSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A url field is required."})
		return
	}

	summary, err := s.Pipeline.Run(c.Request.Context(), req.URL)
	if err != nil {
		s.abortWithError(c, err, "summarization failed", "url", req.URL)
		return
	}

	c.JSON(http.StatusCreated, summary)
}

func (s *Server) getSummaries(c *gin.Context) {
	filter := skim.SummaryFilter{
		Limit:  getQueryInt("limit", 20, c),
		Offset: getQueryInt("offset", 0, c),
	}
	if u := c.Query("url"); u != "" {
		filter.URL = &u
	}

	summaries, err := s.Summaries.FindSummaries(c.Request.Context(), filter)
	if err != nil {
		s.abortWithError(c, err, "listing summaries failed")
		return
	}

	if summaries == nil {
		summaries = []*skim.Summary{}
	}
	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

func (s *Server) getSummary(c *gin.Context) {
	summary, err := s.Summaries.FindSummaryByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.abortWithError(c, err, "finding summary failed", "id", c.Param("id"))
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (s *Server) deleteSummary(c *gin.Context) {
	if err := s.Summaries.DeleteSummary(c.Request.Context(), c.Param("id")); err != nil {
		s.abortWithError(c, err, "deleting summary failed", "id", c.Param("id"))
		return
	}

	c.Status(http.StatusNoContent)
}

// abortWithError logs the error and writes a JSON error response with a
// status derived from the application error code.
func (s *Server) abortWithError(c *gin.Context, err error, msg string, args ...any) {
	code := skim.ErrorCode(err)
	if code == skim.EINTERNAL {
		s.Logger.Error(msg, append(args, "error", err)...)
	} else {
		s.Logger.Info(msg, append(args, "error", err)...)
	}
	c.JSON(statusFromCode(code), gin.H{"error": skim.ErrorMessage(err)})
}

// statusFromCode maps application error codes to HTTP status codes.
func statusFromCode(code string) int {
	switch code {
	case skim.EINVALID:
		return http.StatusBadRequest
	case skim.ENOTFOUND:
		return http.StatusNotFound
	case skim.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case skim.EUNPROCESSABLE:
		return http.StatusUnprocessableEntity
	case skim.ETIMEOUT:
		return http.StatusGatewayTimeout
	case skim.EUNAVAILABLE:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// getQueryInt parses an integer query parameter, falling back to def on
// absence or a malformed value.
func getQueryInt(name string, def int, c *gin.Context) int {
	raw := c.Query(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}
