package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/a4co/transportista-service/docs"
	"github.com/a4co/transportista-service/internal/api/handler"
	"github.com/a4co/transportista-service/internal/api/middleware"
	"github.com/a4co/transportista-service/internal/core/ports"
	"github.com/a4co/transportista-service/internal/infrastructure/http/handlers"
)

// Version is reported by the liveness probe.
const Version = "1.0.0"

// Deps holds everything the HTTP layer needs.
type Deps struct {
	Carriers    ports.CarrierService
	Shipments   ports.ShipmentService
	Events      handler.EventDispatcher
	Checks      map[string]handlers.CheckFunc
	Logger      zerolog.Logger
	ServiceName string
	// StrictStatus rejects statuses outside the known vocabulary.
	StrictStatus bool
	// Registry, when set, replaces the default Prometheus registry for the
	// HTTP metrics and the /metrics endpoint.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.ServiceHeaders(d.ServiceName))
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "transportista",
		Subsystem:  "http",
		Registerer: registerer,
	}))

	// --- Handlers ---
	carrierHandler := handler.NewCarrierHandler(d.Carriers)
	shipmentHandler := handler.NewShipmentHandler(d.Shipments)
	trackingHandler := handler.NewTrackingHandler(d.Shipments, d.StrictStatus)
	eventHandler := handler.NewEventHandler(d.Events, d.StrictStatus)
	geoHandler := handler.NewGeoHandler()
	healthHandler := handlers.NewHealthHandler(d.ServiceName, Version)
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Checks)

	// --- Carriers ---
	e.POST("/transportistas", carrierHandler.Create)
	e.GET("/transportistas", carrierHandler.List)
	e.GET("/transportistas/:id", carrierHandler.Get)

	// --- Shipments ---
	e.POST("/shipments", shipmentHandler.Create)
	e.GET("/shipments", shipmentHandler.List)
	e.GET("/shipments/order/:order_id", shipmentHandler.ListByOrder)
	e.GET("/shipments/:id", shipmentHandler.Get)

	// --- Tracking ---
	e.GET("/tracking/:code", trackingHandler.Get)
	e.PUT("/tracking/:code/status", trackingHandler.UpdateStatus)

	// --- Event ingestion ---
	e.POST("/events", eventHandler.Receive)
	e.POST("/events/batch", eventHandler.ReceiveBatch)

	// --- Utilities ---
	e.GET("/distance", geoHandler.Distance)

	// --- Operations ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
