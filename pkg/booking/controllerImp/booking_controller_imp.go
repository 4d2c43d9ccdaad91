package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"agrilink/pkg/booking/controller"
	"agrilink/pkg/booking/repository"
	svc "agrilink/pkg/booking/service"
	"agrilink/pkg/logger"
	"agrilink/pkg/middleware"
)

type BookingCtrl struct {
	svc svc.BookingService
	log *logger.Logger
}

func New(s svc.BookingService, log *logger.Logger) controller.BookingController {
	return &BookingCtrl{svc: s, log: log}
}

func (h *BookingCtrl) Create(c echo.Context) error {
	uid := middleware.UID(c)
	var in svc.CreateBookingInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}

	b, err := h.svc.Create(uid, in)
	switch {
	case errors.Is(err, svc.ErrInvalid):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, svc.ErrEquipmentNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, svc.ErrOwnEquipment):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		h.log.Error("booking create failed", "renter_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create booking"})
	}
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "booking": b})
}

type updateStatusReq struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

func (h *BookingCtrl) UpdateStatus(c echo.Context) error {
	uid := middleware.UID(c)
	var req updateStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}

	err := h.svc.UpdateStatus(uid, req.BookingID, req.Status)
	if errors.Is(err, svc.ErrInvalid) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	} else if err != nil {
		h.log.Error("booking status update failed", "booking_id", req.BookingID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update booking"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (h *BookingCtrl) List(c echo.Context) error {
	uid := middleware.UID(c)
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	var (
		rows []repository.BookingView
		err  error
	)
	if c.QueryParam("role") == "owner" {
		rows, err = h.svc.ListAsOwner(uid, limit)
	} else {
		rows, err = h.svc.ListAsRenter(uid, limit)
	}
	if err != nil {
		h.log.Error("booking list failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch bookings"})
	}
	return c.JSON(http.StatusOK, map[string]any{"bookings": rows})
}
