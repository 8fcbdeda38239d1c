package reputation

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/seniormugambe/lend/app/echoServer/jwtx"
	reputationsvc "github.com/seniormugambe/lend/service/reputation"
)

type Controller struct {
	Svc reputationsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /v1/ratings
func (h *Controller) Submit(c echo.Context) error {
	fromAccount, err := jwtx.AccountIDFromContext(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
	}

	var req SubmitRatingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid json"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"message": "validation error",
			"errors":  echo.Map{"to_account": "required", "rental_id": "required"},
		})
	}

	ack, err := h.Svc.Submit(c.Request().Context(), fromAccount, req.ToAccount, req.Rating, req.RentalID, req.Review)
	if err != nil {
		switch reputationsvc.Code(err) {
		case reputationsvc.ErrNotConnected:
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "connect your wallet first"})
		case reputationsvc.ErrInvalidRating:
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "rating must be between 1 and 5"})
		case reputationsvc.ErrDuplicateRating:
			return c.JSON(http.StatusConflict, echo.Map{"message": "rental already rated by this account"})
		}
		h.Log.Error("rating submit error", "err", err, "to", req.ToAccount)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusCreated, ack)
}

// GET /v1/accounts/:id/reputation
func (h *Controller) Get(c echo.Context) error {
	accountID := c.Param("id")
	summary, err := h.Svc.Reputation(c.Request().Context(), accountID)
	if err != nil {
		h.Log.Error("reputation error", "err", err, "account", accountID)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, summary)
}
