package equipment

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/seniormugambe/lend/app/echoServer/jwtx"
	equipmentsvc "github.com/seniormugambe/lend/service/equipment"
)

type Controller struct {
	Svc equipmentsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /v1/equipment
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("equipment list error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/equipment/:id
func (h *Controller) Detail(c echo.Context) error {
	id := c.Param("id")
	row, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if equipmentsvc.Code(err) == equipmentsvc.ErrEquipmentNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		h.Log.Error("equipment detail error", "err", err, "id", id)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, row)
}

// POST /v1/equipment
func (h *Controller) Create(c echo.Context) error {
	ownerID, err := jwtx.AccountIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
	}

	var req equipmentsvc.CreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"name": "required", "category": "required", "price": "gte 0"},
		})
	}

	created, err := h.Svc.Create(c.Request().Context(), ownerID, req)
	if err != nil {
		switch equipmentsvc.Code(err) {
		case equipmentsvc.ErrNotConnected:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
		case equipmentsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("equipment create error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, created)
}
