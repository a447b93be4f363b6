// Package relay implements the credential-hiding HTTP proxy between
// the client and the Anthropic messages endpoint. The server holds the
// API key; clients either rely on it or send their own in the body.
package relay

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/learnhub/learnhub/internal/logger"
)

const (
	defaultAddr        = ":3000"
	defaultUpstreamURL = "https://api.anthropic.com/v1/messages"
	defaultModel       = "claude-3-5-sonnet-20241022"
	defaultMaxTokens   = 4000
	anthropicVersion   = "2023-06-01"
)

// Config controls the relay server.
type Config struct {
	// Addr is the listen address. Defaults to ":3000".
	Addr string

	// UpstreamURL is the Anthropic messages endpoint. Overridable for
	// tests.
	UpstreamURL string

	// APIKey is the server-held credential. When empty, the
	// LEARNHUB_ANTHROPIC_API_KEY and ANTHROPIC_API_KEY env vars are
	// consulted per request, then the request body.
	APIKey string

	Logger *logger.Logger
}

// Server relays /api/messages requests to the upstream API.
type Server struct {
	cfg    Config
	engine *gin.Engine
	client *resty.Client
	log    *logger.Logger
}

// New builds a relay server. The returned server is ready to Run or,
// in tests, to serve through Engine().
func New(cfg Config) *Server {
	if cfg.Addr == "" {
		cfg.Addr = defaultAddr
	}
	if cfg.UpstreamURL == "" {
		cfg.UpstreamURL = defaultUpstreamURL
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	s := &Server{
		cfg:    cfg,
		client: resty.New().SetTimeout(2 * time.Minute),
		log:    cfg.Logger,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(s.requestLog())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "X-Requested-With"},
	}))

	engine.GET("/healthcheck", s.handleHealth)
	engine.POST("/api/messages", s.handleMessages)

	s.engine = engine
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine { return s.engine }

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s.engine}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("relay listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLog assigns a request ID and logs method, path, status, and
// duration for every request.
func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		s.log.Info("request",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type messagesRequest struct {
	APIKey    string         `json:"apiKey"`
	Model     string         `json:"model"`
	System    string         `json:"system"`
	MaxTokens int            `json:"max_tokens"`
	Messages  []relayMessage `json:"messages"`
}

type relayMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// upstreamBody is what actually goes to the API. The client's apiKey
// field never leaves the relay.
type upstreamBody struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	System    string         `json:"system,omitempty"`
	Messages  []relayMessage `json:"messages"`
}

func (s *Server) handleMessages(c *gin.Context) {
	var req messagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	if len(req.Messages) == 0 {
		writeError(c, http.StatusBadRequest, "invalid_request", "Messages array is required")
		return
	}

	apiKey := s.resolveKey(req.APIKey)
	if apiKey == "" {
		writeError(c, http.StatusBadRequest, "authentication_error",
			"API key required. Either set ANTHROPIC_API_KEY or provide apiKey in request.")
		return
	}

	body := upstreamBody{
		Model:     req.Model,
		MaxTokens: req.MaxTokens,
		System:    req.System,
		Messages:  req.Messages,
	}
	if body.Model == "" {
		body.Model = defaultModel
	}
	if body.MaxTokens == 0 {
		body.MaxTokens = defaultMaxTokens
	}

	resp, err := s.client.R().
		SetContext(c.Request.Context()).
		SetHeader("Content-Type", "application/json").
		SetHeader("x-api-key", apiKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetBody(body).
		Post(s.cfg.UpstreamURL)
	if err != nil {
		s.log.Error("upstream request failed", "error", err.Error())
		writeError(c, http.StatusInternalServerError, "server_error", err.Error())
		return
	}

	if resp.IsError() {
		s.log.Warn("upstream error", "status", resp.StatusCode(), "model", body.Model)
	}

	// Relay upstream status and body verbatim, success or not.
	c.Data(resp.StatusCode(), "application/json", resp.Body())
}

// resolveKey prefers the server-held credential over the one in the
// request body.
func (s *Server) resolveKey(bodyKey string) string {
	if s.cfg.APIKey != "" {
		return s.cfg.APIKey
	}
	if key := os.Getenv("LEARNHUB_ANTHROPIC_API_KEY"); key != "" {
		return key
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		return key
	}
	return bodyKey
}

func writeError(c *gin.Context, status int, errType, message string) {
	c.JSON(status, gin.H{
		"error": gin.H{
			"type":    errType,
			"message": message,
		},
	})
}
