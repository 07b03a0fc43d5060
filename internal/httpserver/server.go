package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gridironhq/startsit/internal/model"

	"github.com/gin-gonic/gin"
)

// AnalysisProvider is the narrow contract the HTTP API needs: resolve a
// player-or-team input for one week into scored records. An empty result
// with a nil error means no stats were found.
type AnalysisProvider interface {
	AnalyzeWeek(input string, year, week int) ([]model.PlayerRecord, error)
}

// Server exposes the analysis API over HTTP.
type Server struct {
	addr      string
	provider  AnalysisProvider
	server    *http.Server
	listener  net.Listener
	errCh     chan error
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a new analysis API server.
func NewServer(addr string, provider AnalysisProvider) *Server {
	if addr == "" {
		addr = fmt.Sprintf("0.0.0.0:%d", model.DefaultAPIPort)
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr:     addr,
		provider: provider,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	s.registerRoutes(r)

	s.server = &http.Server{
		Handler:           r,
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	s.listener = listener
	s.startTime = time.Now()
	s.errCh = make(chan error, 1)

	go func() {
		if err := s.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.errCh <- err
		}
		close(s.errCh)
	}()
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Err exposes the serve loop's failure, if any. The channel closes when
// the loop exits; a graceful Stop delivers nothing.
func (s *Server) Err() <-chan error {
	return s.errCh
}

// Addr returns the bound listen address once the server has started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.addr
	}
	return s.listener.Addr().String()
}

func (s *Server) registerRoutes(r *gin.Engine) {
	r.GET("/api/health", s.handleHealth)
	r.POST("/analyze_player", s.handleAnalyzePlayer)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(s.startTime).String(),
	})
}

// handleAnalyzePlayer resolves a form submission into scored records.
// Year and week arrive as strings; non-numeric values are a client error.
// The success body is a bare JSON array: one element for a player lookup,
// several for a team lookup. Clients branch on its length.
func (s *Server) handleAnalyzePlayer(c *gin.Context) {
	var req model.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body."})
		return
	}

	year, yerr := strconv.Atoi(strings.TrimSpace(req.Year))
	week, werr := strconv.Atoi(strings.TrimSpace(req.Week))
	if yerr != nil || werr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year or week selected."})
		return
	}

	input := strings.TrimSpace(req.PlayerOrTeamInput)
	if input == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No player name provided."})
		return
	}

	records, err := s.provider.AnalyzeWeek(input, year, week)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An internal server error occurred during analysis."})
		return
	}
	if len(records) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Analysis failed: Could not retrieve stats for %s.", input),
		})
		return
	}

	c.JSON(http.StatusOK, records)
}
