package http

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/piresc/fleetlocation/internal/pkg/logger"
	"github.com/piresc/fleetlocation/internal/pkg/models"
	"github.com/piresc/fleetlocation/internal/utils"
	"github.com/piresc/fleetlocation/services/location"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationUC location.LocationUC
	validate   *validator.Validate
}

// NewLocationHandler creates a new location HTTP handler
func NewLocationHandler(locationUC location.LocationUC) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		validate:   validator.New(),
	}
}

// CreateLocation stores the location update of a vehicle
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var req models.LocationUpdate
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, validationMessage(err))
	}

	result, err := h.locationUC.Create(c.Request().Context(), &req)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Location update created", result)
}

// UpdateLocation applies a partial update to the location of a vehicle
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	vehicleID, err := models.ParseObjectID(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid vehicle id")
	}

	var req models.LocationUpdateCommand
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if err := h.validate.Struct(&req); err != nil {
		return utils.BadRequestResponse(c, validationMessage(err))
	}

	result, err := h.locationUC.Update(c.Request().Context(), vehicleID, &req)
	if err != nil {
		return h.errorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Location update updated", result)
}

// DeleteLocation removes the location of a vehicle
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	vehicleID, err := models.ParseObjectID(c.Param("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "invalid vehicle id")
	}

	if err := h.locationUC.Delete(c.Request().Context(), vehicleID); err != nil {
		return h.errorResponse(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *LocationHandler) errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, location.ErrInvalidCommand):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, location.ErrVehicleNotFound), errors.Is(err, location.ErrLocationNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, location.ErrLocationSaveFailed), errors.Is(err, location.ErrPublicationFailed):
		return utils.InternalServerErrorResponse(c, err.Error())
	default:
		logger.ErrorCtx(c.Request().Context(), "Unexpected location error", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}

// validationMessage lists each failed field with the rule it broke
func validationMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "Validation failed"
	}

	var sb strings.Builder
	sb.WriteString("Validation failed: ")
	for _, fe := range validationErrs {
		sb.WriteString(fmt.Sprintf("%s - %s; ", fe.Field(), fe.Tag()))
	}
	return strings.TrimSpace(sb.String())
}
