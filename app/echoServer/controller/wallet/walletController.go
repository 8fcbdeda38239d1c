package wallet

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/seniormugambe/lend/app/echoServer/jwtx"
	walletsvc "github.com/seniormugambe/lend/service/wallet"
)

type Controller struct {
	Svc walletsvc.Service
	Log *slog.Logger
}

// POST /v1/wallet/connect
func (h *Controller) Connect(c echo.Context) error {
	conn, err := h.Svc.Connect(c.Request().Context())
	if err != nil {
		h.Log.Error("wallet connect error", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, conn)
}

// POST /v1/wallet/disconnect
func (h *Controller) Disconnect(c echo.Context) error {
	accountID, err := jwtx.AccountIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
	}
	if err := h.Svc.Disconnect(c.Request().Context(), accountID); err != nil {
		h.Log.Error("wallet disconnect error", "err", err, "account", accountID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "disconnected"})
}

// GET /v1/wallet/pairing
func (h *Controller) Pairing(c echo.Context) error {
	accountID, err := jwtx.AccountIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
	}
	p, err := h.Svc.Pairing(c.Request().Context(), accountID)
	if err != nil {
		if walletsvc.Code(err) == walletsvc.ErrNotConnected {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
		}
		h.Log.Error("wallet pairing error", "err", err, "account", accountID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, p)
}
