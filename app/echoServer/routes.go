package echoServer

import (
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/seniormugambe/lend/app/echoServer/controller/equipment"
	"github.com/seniormugambe/lend/app/echoServer/controller/identity"
	"github.com/seniormugambe/lend/app/echoServer/controller/rental"
	"github.com/seniormugambe/lend/app/echoServer/controller/reputation"
	"github.com/seniormugambe/lend/app/echoServer/controller/search"
	"github.com/seniormugambe/lend/app/echoServer/controller/wallet"
)

type C struct {
	Wallet     *wallet.Controller
	Identity   *identity.Controller
	Reputation *reputation.Controller
	Equipment  *equipment.Controller
	Rental     *rental.Controller
	Search     *search.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/wallet/connect", c.Wallet.Connect)

	pub.GET("/equipment", c.Equipment.List)
	pub.GET("/equipment/:id", c.Equipment.Detail)

	pub.POST("/search", c.Search.Search)
	pub.POST("/recommendations", c.Search.Recommendations)
	pub.POST("/price/optimal", c.Search.OptimalPrice)
	pub.POST("/reviews/sentiment", c.Search.Sentiment)
	pub.GET("/demand", c.Search.Demand)

	pub.GET("/accounts/:id/reputation", c.Reputation.Get)
	pub.GET("/accounts/:id/identity", c.Identity.Get)

	// Connected (wallet session required)
	conn := e.Group("/v1")
	conn.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
		TokenLookup:   "header:Authorization",
	}))

	conn.POST("/wallet/disconnect", c.Wallet.Disconnect)
	conn.GET("/wallet/pairing", c.Wallet.Pairing)

	conn.POST("/identity", c.Identity.Register)
	conn.POST("/identity/:id/verify", c.Identity.Verify)

	conn.POST("/equipment", c.Equipment.Create)

	conn.POST("/rentals", c.Rental.Rent)
	conn.POST("/rentals/:id/return", c.Rental.Return)
	conn.GET("/rentals/my", c.Rental.MyHistory)

	conn.POST("/ratings", c.Reputation.Submit)
}
