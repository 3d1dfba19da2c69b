package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"dataset_explorer/internal/analytics"
	"dataset_explorer/internal/dataset"
)

const (
	defaultSampleRows = 500
	maxSampleRows     = 5000
	defaultTopDays    = 10
)

// dashboardHandler holds the analytics service and implements HTTP handlers
// for the dashboard API.
type dashboardHandler struct {
	service  *analytics.Service
	manifest *dataset.Manifest // nil when no manifest file was found
	logger   *zap.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service *analytics.Service, manifest *dataset.Manifest, logger *zap.Logger) *dashboardHandler {
	return &dashboardHandler{
		service:  service,
		manifest: manifest,
		logger:   logger,
	}
}

// parseFilter builds an analytics.Filter from the shared query parameters.
func parseFilter(ctx *gin.Context) (analytics.Filter, error) {
	var f analytics.Filter

	if raw := ctx.Query("start"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return f, errors.New("invalid start date, expected YYYY-MM-DD")
		}
		f.Start = t
	}
	if raw := ctx.Query("end"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02", raw, time.UTC)
		if err != nil {
			return f, errors.New("invalid end date, expected YYYY-MM-DD")
		}
		f.End = t
	}
	if !f.Start.IsZero() && !f.End.IsZero() && f.End.Before(f.Start) {
		return f, errors.New("end date is before start date")
	}

	f.Categories = splitParam(ctx.Query("categories"))
	f.Regions = splitParam(ctx.Query("regions"))
	f.Statuses = splitParam(ctx.Query("statuses"))
	return f, nil
}

func splitParam(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// respondError maps service errors to HTTP status codes.
func (h *dashboardHandler) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, analytics.ErrInvalidFilter) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logger.Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// handleInfo handles GET /api/info.
func (h *dashboardHandler) handleInfo(ctx *gin.Context) {
	info := gin.H{
		"rows":       h.service.Rows(),
		"columns":    dataset.Columns,
		"size_bytes": h.service.SizeBytes(),
	}
	if h.manifest != nil {
		info["manifest"] = h.manifest
	}
	ctx.JSON(http.StatusOK, info)
}

// handleSummary handles GET /api/summary.
func (h *dashboardHandler) handleSummary(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.service.Summary(f)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, summary)
}

// handleDailyRevenue handles GET /api/daily-revenue. An optional limit keeps
// only the most recent N days.
func (h *dashboardHandler) handleDailyRevenue(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	days, err := h.service.DailyRevenue(f)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		if len(days) > limit {
			days = days[len(days)-limit:]
		}
	}
	ctx.JSON(http.StatusOK, gin.H{"days": days})
}

// handleTopDays handles GET /api/top-days.
func (h *dashboardHandler) handleTopDays(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	n := defaultTopDays
	if raw := ctx.Query("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid n"})
			return
		}
		n = parsed
	}

	days, err := h.service.TopDays(f, n)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"days": days})
}

// handleCategories handles GET /api/categories.
func (h *dashboardHandler) handleCategories(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cats, err := h.service.CategorySummaries(f)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"categories": cats})
}

// handleRegions handles GET /api/regions.
func (h *dashboardHandler) handleRegions(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	regions, err := h.service.RegionSummaries(f)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"regions": regions})
}

// handlePayments handles GET /api/payments.
func (h *dashboardHandler) handlePayments(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payments, err := h.service.PaymentSummaries(f)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"payments": payments})
}

// handleStatuses handles GET /api/statuses.
func (h *dashboardHandler) handleStatuses(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	statuses, err := h.service.StatusBreakdowns(f)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"statuses": statuses})
}

// handleTransactions handles GET /api/transactions, a capped sample of the
// filtered rows.
func (h *dashboardHandler) handleTransactions(ctx *gin.Context) {
	f, err := parseFilter(ctx)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := defaultSampleRows
	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}
	if limit > maxSampleRows {
		limit = maxSampleRows
	}

	txs, err := h.service.Sample(f, limit)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"transactions": txs, "count": len(txs)})
}

// handleDashboard serves the HTML page. Date bounds come from the loaded
// rows, not the generator's window, so the pickers always cover real data.
func (h *dashboardHandler) handleDashboard(ctx *gin.Context) {
	minDate, maxDate := h.service.DateBounds()
	ctx.HTML(http.StatusOK, "index.html", gin.H{
		"Categories": dataset.Categories,
		"Regions":    dataset.Regions,
		"Statuses":   dataset.Statuses,
		"MinDate":    minDate,
		"MaxDate":    maxDate,
	})
}
