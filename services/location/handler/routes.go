package handler

import (
	"github.com/labstack/echo/v4"
	nrpkg "github.com/piresc/fleetlocation/internal/pkg/newrelic"
	httpHandler "github.com/piresc/fleetlocation/services/location/handler/http"
)

// RegisterRoutes registers the location HTTP routes
func RegisterRoutes(e *echo.Echo, h *httpHandler.LocationHandler) {
	locations := e.Group("/locations")

	locations.POST("", nrpkg.TraceHandler("CreateLocation", h.CreateLocation))
	locations.PUT("/:id", nrpkg.TraceHandler("UpdateLocation", h.UpdateLocation))
	locations.DELETE("/:id", nrpkg.TraceHandler("DeleteLocation", h.DeleteLocation))
}
