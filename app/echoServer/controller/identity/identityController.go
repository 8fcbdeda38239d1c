package identity

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/seniormugambe/lend/app/echoServer/jwtx"
	"github.com/seniormugambe/lend/model"
	identitysvc "github.com/seniormugambe/lend/service/identity"
)

type Controller struct {
	Svc identitysvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/identity
func (h *Controller) Register(c echo.Context) error {
	accountID, err := jwtx.AccountIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
	}

	var req model.RegisterIdentityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"name": "required", "email": "required email", "user_type": "renter|owner|both"},
		})
	}

	id, ack, err := h.Svc.Register(c.Request().Context(), accountID, req)
	if err != nil {
		switch identitysvc.Code(err) {
		case identitysvc.ErrNotConnected:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
		case identitysvc.ErrIdentityExists:
			return c.JSON(http.StatusConflict, echo.Map{"message": "identity already registered"})
		}
		h.Log.Error("identity register error", "err", err, "account", accountID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"identity": id, "ack": ack})
}

// GET /v1/accounts/:id/identity
func (h *Controller) Get(c echo.Context) error {
	accountID := c.Param("id")
	id, err := h.Svc.Get(c.Request().Context(), accountID)
	if err != nil {
		if identitysvc.Code(err) == identitysvc.ErrIdentityNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		h.Log.Error("identity get error", "err", err, "account", accountID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, id)
}

// POST /v1/identity/:id/verify
func (h *Controller) Verify(c echo.Context) error {
	callerID, err := jwtx.AccountIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
	}

	accountID := c.Param("id")
	ack, err := h.Svc.Verify(c.Request().Context(), callerID, accountID)
	if err != nil {
		switch identitysvc.Code(err) {
		case identitysvc.ErrNotConnected:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
		case identitysvc.ErrIdentityNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"message": "not found"})
		}
		h.Log.Error("identity verify error", "err", err, "account", accountID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, ack)
}
