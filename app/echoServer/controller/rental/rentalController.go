package rental

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/seniormugambe/lend/app/echoServer/jwtx"
	rentalsvc "github.com/seniormugambe/lend/service/rental"
)

type Controller struct {
	Svc rentalsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/rentals
func (h *Controller) Rent(c echo.Context) error {
	accountID, err := jwtx.AccountIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
	}

	var req RentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"equipment_id": "required", "days": "gt 0"},
		})
	}

	created, err := h.Svc.Rent(c.Request().Context(), accountID, req.EquipmentID, req.Days)
	if err != nil {
		switch rentalsvc.Code(err) {
		case rentalsvc.ErrNotConnected:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
		case rentalsvc.ErrEquipNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "equipment not found"})
		case rentalsvc.ErrUnavailable:
			return c.JSON(http.StatusConflict, echo.Map{"message": "equipment unavailable"})
		case rentalsvc.ErrBadInput:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid payload"})
		}
		h.Log.Error("rent error", "err", err, "equipment", req.EquipmentID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, created)
}

// POST /v1/rentals/:id/return
func (h *Controller) Return(c echo.Context) error {
	accountID, err := jwtx.AccountIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
	}

	rentalID := c.Param("id")
	ack, err := h.Svc.Return(c.Request().Context(), accountID, rentalID)
	if err != nil {
		switch rentalsvc.Code(err) {
		case rentalsvc.ErrNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		case rentalsvc.ErrNotActive:
			return c.JSON(http.StatusConflict, echo.Map{"message": "rental not active"})
		}
		h.Log.Error("return error", "err", err, "rental", rentalID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, ack)
}

// GET /v1/rentals/my
func (h *Controller) MyHistory(c echo.Context) error {
	accountID, err := jwtx.AccountIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
	}

	rows, err := h.Svc.History(c.Request().Context(), accountID)
	if err != nil {
		h.Log.Error("rental history error", "err", err, "account", accountID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}
