package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"drivio/models"
	"drivio/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CarHandler exposes the car discovery flow over HTTP.
type CarHandler struct {
	Discovery catalog.DiscoveryService
	Logger    *zap.Logger
}

func NewCarHandler(svc catalog.DiscoveryService, logger *zap.Logger) *CarHandler {
	return &CarHandler{Discovery: svc, Logger: logger}
}

// SearchCars handles GET /api/cars. Filter state comes from query params:
// location, category, min_price, max_price, features (comma-separated ids),
// q (free text) and sort.
func (h *CarHandler) SearchCars(c *gin.Context) {
	state, query, err := parseFilterState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters", "message": err.Error()})
		return
	}
	sortKey := c.DefaultQuery("sort", models.SortRecommended)

	cars, err := h.Discovery.SearchCars(c.Request.Context(), state, query, sortKey)
	if err != nil {
		h.Logger.Error("SearchCars: upstream fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "failed to load cars",
			"message":   err.Error(),
			"retryable": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": cars, "count": len(cars)})
}

// GetCarByID handles GET /api/cars/id/:id.
func (h *CarHandler) GetCarByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid car id", "message": err.Error()})
		return
	}

	car, err := h.Discovery.GetCar(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("GetCarByID: upstream fetch failed", zap.Int("id", id), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "failed to load car",
			"message":   err.Error(),
			"retryable": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": car})
}

// FeatureChecklist handles GET /api/cars/features: the feature definitions
// worth offering for the current filtered set.
func (h *CarHandler) FeatureChecklist(c *gin.Context) {
	state, query, err := parseFilterState(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid filter parameters", "message": err.Error()})
		return
	}

	features, err := h.Discovery.FeatureChecklist(c.Request.Context(), state, query)
	if err != nil {
		h.Logger.Error("FeatureChecklist: upstream fetch failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{
			"error":     "failed to load features",
			"message":   err.Error(),
			"retryable": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": features})
}

func parseFilterState(c *gin.Context) (models.FilterState, string, error) {
	state := models.DefaultFilterState()

	if loc := c.Query("location"); loc != "" {
		state.Location = loc
	}
	if cat := c.Query("category"); cat != "" {
		state.Category = cat
	}
	if raw := c.Query("min_price"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil || min < 0 {
			return state, "", errInvalidPrice("min_price", raw)
		}
		state.PriceRange[0] = min
	}
	if raw := c.Query("max_price"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil || max < 0 {
			return state, "", errInvalidPrice("max_price", raw)
		}
		state.PriceRange[1] = max
	}
	if state.PriceRange[0] > state.PriceRange[1] {
		return state, "", errPriceRangeInverted
	}
	if raw := c.Query("features"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				state.Features = append(state.Features, id)
			}
		}
	}

	return state, c.Query("q"), nil
}
