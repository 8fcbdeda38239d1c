package search

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/seniormugambe/lend/model"
	"github.com/seniormugambe/lend/service/engine"
	equipmentsvc "github.com/seniormugambe/lend/service/equipment"
	rentalsvc "github.com/seniormugambe/lend/service/rental"
	"github.com/seniormugambe/lend/util/metrics"
)

// Controller exposes the scoring engine over the catalog.
type Controller struct {
	Equipment equipmentsvc.Service
	Rentals   rentalsvc.Service
	V         *validator.Validate
	Log       *slog.Logger
}

// POST /v1/search
func (h *Controller) Search(c echo.Context) error {
	var req SearchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}

	items, err := h.Equipment.List(c.Request().Context())
	if err != nil {
		h.Log.Error("search catalog error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	if req.Filters != nil {
		items = engine.Filter(items, *req.Filters)
	}

	metrics.RecordSearch()
	return c.JSON(http.StatusOK, echo.Map{"data": engine.SmartSearch(req.Query, items)})
}

// POST /v1/recommendations
func (h *Controller) Recommendations(c echo.Context) error {
	var req RecommendReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}

	ctx := c.Request().Context()
	items, err := h.Equipment.List(ctx)
	if err != nil {
		h.Log.Error("recommendations catalog error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	var current *model.Equipment
	if req.CurrentID != "" {
		current, err = h.Equipment.Detail(ctx, req.CurrentID)
		if err != nil && equipmentsvc.Code(err) != equipmentsvc.ErrEquipmentNotFound {
			h.Log.Error("recommendations current item error", "err", err, "id", req.CurrentID)
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
		}
		// an unknown current item just means no similarity bonus
	}

	return c.JSON(http.StatusOK, echo.Map{"data": engine.Recommendations(req.History, current, items)})
}

// GET /v1/demand?category=...&location=...
func (h *Controller) Demand(c echo.Context) error {
	category := c.QueryParam("category")
	location := c.QueryParam("location")
	if category == "" || location == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "category and location are required"})
	}

	history, err := h.Rentals.DemandHistory(c.Request().Context())
	if err != nil {
		h.Log.Error("demand history error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"category": category,
		"location": location,
		"demand":   engine.PredictDemand(category, location, history),
	})
}

// POST /v1/price/optimal
func (h *Controller) OptimalPrice(c echo.Context) error {
	var req OptimalPriceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"base_price": "gte 0", "demand": "0-100", "season": "peak|normal|low"},
		})
	}

	price, err := engine.OptimalPrice(req.BasePrice, req.Demand, engine.Season(req.Season))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"price": price})
}

// POST /v1/reviews/sentiment
func (h *Controller) Sentiment(c echo.Context) error {
	var req SentimentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": echo.Map{"review": "required"}})
	}
	return c.JSON(http.StatusOK, engine.ReviewSentiment(req.Review))
}
