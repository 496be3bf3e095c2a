// @title           Financial Statement Analysis API
// @version         1.0
// @description     Per-company financial statements, derived ratios, trends, and peer comparison

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /api/v1

package http

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appinterfaces "main/internal/application/interfaces"
	appanalysis "main/internal/application/service/analysis"
	domainstatements "main/internal/domain/entity/statements"
	"main/internal/infrastructure/provider"
)

const companyBasePath = "/api/v1/company"

//go:embed dashboard.html
var dashboardPage []byte

type Handler struct {
	router         *gin.Engine
	analysis       *appanalysis.Service
	cache          *redis.Client
	cacheTTL       time.Duration
	defaultPeriods int
	logger         *logrus.Logger
}

var _ appinterfaces.HTTPHandler = (*Handler)(nil)

func NewHandler(analysis *appanalysis.Service, cache *redis.Client, cacheTTL time.Duration, defaultPeriods int, logger *logrus.Logger) *Handler {
	router := gin.New()
	router.Use(gin.Recovery())
	if logger != nil {
		router.Use(requestLogger(logger))
	}

	h := &Handler{
		router:         router,
		analysis:       analysis,
		cache:          cache,
		cacheTTL:       cacheTTL,
		defaultPeriods: defaultPeriods,
		logger:         logger,
	}
	h.registerRoutes()
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/", h.dashboard)
	h.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	company := h.router.Group(companyBasePath)
	if h.cache != nil {
		company.Use(h.cacheMiddleware())
	}
	{
		company.GET("/:ticker", h.getProfile)
		company.GET("/:ticker/statements/:type", h.getStatement)
		company.GET("/:ticker/ratios", h.getRatios)
		company.GET("/:ticker/trends", h.getTrends)
		company.GET("/:ticker/peers", h.getPeers)
	}
}

// dashboard serves the interactive analysis page.
func (h *Handler) dashboard(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", dashboardPage)
}

// getProfile returns the company metadata card
// @Summary      Get company profile
// @Description  Get descriptive company metadata for a ticker
// @Tags         company
// @Produce      json
// @Param        ticker  path      string  true  "Ticker symbol"
// @Success      200     {object}  profileView
// @Failure      502     {object}  map[string]string
// @Router       /company/{ticker} [get]
func (h *Handler) getProfile(c *gin.Context) {
	set, err := h.analysis.Statements(c.Request.Context(), tickerParam(c))
	if err != nil {
		writeFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, newProfileView(set.Profile))
}

// getStatement returns a statement excerpt with chart payloads
// @Summary      Get statement excerpt
// @Description  Get the key line items of one statement over recent periods
// @Tags         company
// @Produce      json
// @Param        ticker   path      string  true   "Ticker symbol"
// @Param        type     path      string  true   "Statement type"  Enums(income-statement, balance-sheet, cash-flow)
// @Param        periods  query     int     false  "Number of periods (1-5)"
// @Success      200      {object}  statementView
// @Failure      400      {object}  map[string]string
// @Failure      502      {object}  map[string]string
// @Router       /company/{ticker}/statements/{type} [get]
func (h *Handler) getStatement(c *gin.Context) {
	statementType, err := parseStatementType(c)
	if err != nil {
		writeError(c, http.StatusBadRequest, err)
		return
	}
	periods := h.parsePeriods(c)

	set, err := h.analysis.Statements(c.Request.Context(), tickerParam(c))
	if err != nil {
		writeFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, newStatementView(set, statementType, periods))
}

// getRatios returns the derived ratio panels
// @Summary      Get ratio analysis
// @Description  Get ratios derived from the most recent reporting period
// @Tags         company
// @Produce      json
// @Param        ticker  path      string  true  "Ticker symbol"
// @Success      200     {object}  ratiosView
// @Failure      502     {object}  map[string]string
// @Router       /company/{ticker}/ratios [get]
func (h *Handler) getRatios(c *gin.Context) {
	ratios, err := h.analysis.Ratios(c.Request.Context(), tickerParam(c))
	if err != nil {
		writeFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRatiosView(ratios))
}

// getTrends returns growth series for trend charts
// @Summary      Get trend analysis
// @Description  Get year-over-year revenue growth and net income series
// @Tags         company
// @Produce      json
// @Param        ticker   path      string  true   "Ticker symbol"
// @Param        periods  query     int     false  "Number of periods (1-5)"
// @Success      200      {object}  trendsView
// @Failure      502      {object}  map[string]string
// @Router       /company/{ticker}/trends [get]
func (h *Handler) getTrends(c *gin.Context) {
	trends, err := h.analysis.Trends(c.Request.Context(), tickerParam(c), h.parsePeriods(c))
	if err != nil {
		writeFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, newTrendsView(trends))
}

// getPeers returns the peer comparison table
// @Summary      Get peer comparison
// @Description  Compare key ratios against a list of peer tickers; failing peers are omitted
// @Tags         company
// @Produce      json
// @Param        ticker  path      string  true   "Primary ticker symbol"
// @Param        peers   query     string  false  "Comma-separated peer tickers"
// @Success      200     {object}  peersView
// @Failure      502     {object}  map[string]string
// @Router       /company/{ticker}/peers [get]
func (h *Handler) getPeers(c *gin.Context) {
	primary := tickerParam(c)
	peers := parsePeerList(c.Query("peers"), primary)

	rows, err := h.analysis.Compare(c.Request.Context(), primary, peers)
	if err != nil {
		writeFetchError(c, err)
		return
	}
	c.JSON(http.StatusOK, newPeersView(primary, rows))
}

// Helpers

func tickerParam(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("ticker")))
}

func parseStatementType(c *gin.Context) (domainstatements.StatementType, error) {
	return domainstatements.NewStatementType(c.Param("type"))
}

// parsePeriods reads the periods query param, clamping it into the 1-5
// window and falling back to the configured default.
func (h *Handler) parsePeriods(c *gin.Context) int {
	value := c.Query("periods")
	if value == "" {
		return h.defaultPeriods
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return h.defaultPeriods
	}
	return appanalysis.ClampPeriods(parsed)
}

// parsePeerList splits the comma-separated peer string, normalizing and
// dropping empties and the primary ticker itself.
func parsePeerList(raw, primary string) []string {
	parts := strings.Split(raw, ",")
	peers := make([]string, 0, len(parts))
	for _, part := range parts {
		peer := strings.ToUpper(strings.TrimSpace(part))
		if peer == "" || peer == primary {
			continue
		}
		peers = append(peers, peer)
	}
	return peers
}

func writeError(c *gin.Context, status int, err error) {
	if err == nil {
		status = http.StatusInternalServerError
		err = errors.New("unknown error")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// writeFetchError maps provider failures to 502 with the provider's own
// message; anything else is a plain 500.
func writeFetchError(c *gin.Context, err error) {
	var apiErr *provider.APIError
	if errors.As(err, &apiErr) {
		writeError(c, http.StatusBadGateway, err)
		return
	}
	writeError(c, http.StatusInternalServerError, err)
}

// requestLogger attaches a request ID and writes one access log line per
// request.
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
		}).Info("request handled")
	}
}

// cacheMiddleware caches GET responses in Redis.
func (h *Handler) cacheMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := h.cacheKey(c)
		ctx := c.Request.Context()

		if cached, err := h.cache.Get(ctx, key).Result(); err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			c.Abort()
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: c.Writer,
			status:         http.StatusOK,
			body:           &bytes.Buffer{},
		}
		c.Writer = recorder

		c.Next()

		if recorder.status >= 200 && recorder.status < 300 && recorder.body.Len() > 0 {
			_ = h.cache.Set(ctx, key, recorder.body.Bytes(), h.cacheTTL).Err()
		}
	}
}

type responseRecorder struct {
	gin.ResponseWriter
	body   *bytes.Buffer
	status int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(data []byte) (int, error) {
	if len(data) > 0 {
		r.body.Write(data)
	}
	return r.ResponseWriter.Write(data)
}

func (h *Handler) cacheKey(c *gin.Context) string {
	return fmt.Sprintf("cache:%s:%s?%s", c.Request.Method, c.Request.URL.Path, c.Request.URL.RawQuery)
}
