package appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/book", h.Book)
	api.GET("/appointments", h.List)
	api.PUT("/appointments/:id", h.Update)
}

type bookResponse struct {
	Message         string `json:"message"`
	AppointmentID   int64  `json:"appointment_id"`
	DoctorName      string `json:"doctor_name"`
	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`
}

func (h *Handler) Book(c echo.Context) error {
	var req BookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	conf, err := h.svc.Book(c.Request().Context(), &req)
	if err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			return echo.NewHTTPError(http.StatusBadRequest, ve.Message)
		case errors.Is(err, ErrDoctorNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Doctor not found or not verified")
		case errors.Is(err, ErrSlotTaken):
			return echo.NewHTTPError(http.StatusConflict, "This time slot is already booked")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to book appointment").SetInternal(err)
		}
	}

	return c.JSON(http.StatusOK, bookResponse{
		Message:         "Appointment booked successfully",
		AppointmentID:   conf.AppointmentID,
		DoctorName:      conf.DoctorName,
		AppointmentDate: conf.AppointmentDate,
		AppointmentTime: conf.AppointmentTime,
	})
}

func (h *Handler) List(c echo.Context) error {
	var filter ListFilter

	if param := c.QueryParam("doctor_id"); param != "" {
		id, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid doctor_id")
		}
		filter.DoctorID = &id
	}
	filter.Status = c.QueryParam("status")

	records, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve appointments").SetInternal(err)
	}
	if records == nil {
		records = []*Record{}
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"appointments": records})
}

type updateRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *Handler) Update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
	}

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if err := h.svc.Update(c.Request().Context(), id, req.Status, req.Notes); err != nil {
		var ve *ValidationError
		switch {
		case errors.As(err, &ve):
			return echo.NewHTTPError(http.StatusBadRequest, ve.Message)
		case errors.Is(err, ErrNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "Appointment not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update appointment").SetInternal(err)
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Appointment updated successfully"})
}
