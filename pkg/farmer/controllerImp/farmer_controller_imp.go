package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	bookingSvc "agrilink/pkg/booking/service"
	cropRepo "agrilink/pkg/crop/repository"
	equipRepo "agrilink/pkg/equipment/repository"
	"agrilink/pkg/farmer/controller"
	"agrilink/pkg/farmer/repository"
	"agrilink/pkg/logger"
	"agrilink/pkg/middleware"
)

type FarmerCtrl struct {
	farmers   repository.FarmerRepository
	crops     cropRepo.CropRepository
	equipment equipRepo.EquipmentRepository
	bookings  bookingSvc.BookingService
	log       *logger.Logger
}

func New(
	farmers repository.FarmerRepository,
	crops cropRepo.CropRepository,
	equipment equipRepo.EquipmentRepository,
	bookings bookingSvc.BookingService,
	log *logger.Logger,
) controller.FarmerController {
	return &FarmerCtrl{farmers: farmers, crops: crops, equipment: equipment, bookings: bookings, log: log}
}

type contactReq struct {
	FarmerID    string `json:"farmerId"`
	Message     string `json:"message"`
	ContactInfo string `json:"contactInfo"`
}

// Contact looks up a farmer's contact block. No notification is delivered;
// the caller is handed the phone number and reaches out themselves.
func (h *FarmerCtrl) Contact(c echo.Context) error {
	var req contactReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if req.FarmerID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "farmerId required"})
	}

	f, err := h.farmers.FindByID(req.FarmerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Farmer not found"})
	} else if err != nil {
		h.log.Error("contact lookup failed", "farmer_id", req.FarmerID, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to contact farmer"})
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"farmer": map[string]string{
			"name":     f.FullName,
			"phone":    f.Phone,
			"location": f.Location,
		},
		"message": "Contact information retrieved successfully",
	})
}

const dashboardBookingLimit = 5

func (h *FarmerCtrl) Dashboard(c echo.Context) error {
	uid := middleware.UID(c)

	f, err := h.farmers.FindByID(uid)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "user not found"})
	}

	crops, err := h.crops.ListByFarmer(uid)
	if err != nil {
		h.log.Error("dashboard: crops failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load dashboard"})
	}
	equipment, err := h.equipment.ListByOwner(uid)
	if err != nil {
		h.log.Error("dashboard: equipment failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load dashboard"})
	}
	myBookings, err := h.bookings.ListAsRenter(uid, dashboardBookingLimit)
	if err != nil {
		h.log.Error("dashboard: renter bookings failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load dashboard"})
	}
	equipmentBookings, err := h.bookings.ListAsOwner(uid, dashboardBookingLimit)
	if err != nil {
		h.log.Error("dashboard: owner bookings failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to load dashboard"})
	}

	// Potential revenue if every listed crop sold at its asking price.
	revenue := 0.0
	for _, cr := range crops {
		revenue += cr.PricePerUnit * cr.Quantity
	}

	return c.JSON(http.StatusOK, map[string]any{
		"farmer": map[string]any{
			"id":                 f.ID,
			"full_name":          f.FullName,
			"phone":              f.Phone,
			"location":           f.Location,
			"farming_experience": f.FarmingExperience,
		},
		"crops":              crops,
		"equipment":          equipment,
		"my_bookings":        myBookings,
		"equipment_bookings": equipmentBookings,
		"stats": map[string]any{
			"total_crops":     len(crops),
			"total_equipment": len(equipment),
			"total_bookings":  len(myBookings) + len(equipmentBookings),
			"total_revenue":   revenue,
		},
	})
}
