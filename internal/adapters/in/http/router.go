package http

import (
	"net/http"

	"purchasing/api"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// RouterConfig carries what NewRouter needs besides the use cases.
type RouterConfig struct {
	JWTSecret []byte
	Resolver  ActorResolver
	Logger    *zap.Logger
}

// NewRouter builds the echo instance: /health and /swagger are public, every
// /api/v1 route requires a bearer token and a request matching the contract.
func NewRouter(server ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = api.RegisterSwaggerDoc(doc); err != nil {
		return nil, err
	}
	validator, err := ValidateRequest(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(log.OFF)
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)
	e.Use(RequestLogger(cfg.Logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	v1 := e.Group("/api/v1", Authenticate(cfg.JWTSecret, cfg.Resolver), validator)
	RegisterHandlers(v1, server)

	return e, nil
}
