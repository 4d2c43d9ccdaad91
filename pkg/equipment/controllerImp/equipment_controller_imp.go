package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/equipment/controller"
	"agrilink/pkg/equipment/repository"
	farmerRepo "agrilink/pkg/farmer/repository"
	"agrilink/pkg/htmltext"
	"agrilink/pkg/logger"
	"agrilink/pkg/middleware"
)

type EquipmentCtrl struct {
	repo    repository.EquipmentRepository
	farmers farmerRepo.FarmerRepository
	log     *logger.Logger
}

func New(repo repository.EquipmentRepository, farmers farmerRepo.FarmerRepository, log *logger.Logger) controller.EquipmentController {
	return &EquipmentCtrl{repo: repo, farmers: farmers, log: log}
}

type createReq struct {
	EquipmentName     string  `json:"equipment_name"`
	EquipmentType     string  `json:"equipment_type"`
	Brand             string  `json:"brand"`
	Model             string  `json:"model"`
	YearManufactured  *int    `json:"year_manufactured"`
	Condition         string  `json:"condition"`
	RentalPricePerDay float64 `json:"rental_price_per_day"`
	Location          string  `json:"location"`
	Description       string  `json:"description"`
	MaintenanceDate   string  `json:"maintenance_date"`
}

func (h *EquipmentCtrl) Create(c echo.Context) error {
	uid := middleware.UID(c)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if strings.TrimSpace(req.EquipmentName) == "" || strings.TrimSpace(req.Location) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "equipment_name and location required"})
	}
	if req.RentalPricePerDay <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "rental_price_per_day must be positive"})
	}
	if !entities.ValidEquipmentType(req.EquipmentType) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown equipment_type"})
	}
	if !entities.ValidCondition(req.Condition) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "condition must be excellent, good, fair or poor"})
	}

	e := &entities.Equipment{
		OwnerID:           uid,
		EquipmentName:     strings.TrimSpace(req.EquipmentName),
		EquipmentType:     req.EquipmentType,
		Brand:             nilIfEmpty(req.Brand),
		Model:             nilIfEmpty(req.Model),
		YearManufactured:  req.YearManufactured,
		Condition:         req.Condition,
		RentalPricePerDay: req.RentalPricePerDay,
		Location:          strings.TrimSpace(req.Location),
		Description:       nilIfEmpty(htmltext.Strip(req.Description)),
		MaintenanceDate:   nilIfEmpty(req.MaintenanceDate),
		Available:         true,
	}
	if err := h.repo.Create(e); err != nil {
		h.log.Error("equipment create failed", "owner_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create listing"})
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *EquipmentCtrl) List(c echo.Context) error {
	rows, err := h.repo.List()
	if err != nil {
		h.log.Error("equipment list failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listings"})
	}
	return c.JSON(http.StatusOK, map[string]any{"equipment": rows})
}

func (h *EquipmentCtrl) Get(c echo.Context) error {
	e, err := h.repo.FindAvailable(c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	} else if err != nil {
		h.log.Error("equipment get failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listing"})
	}

	resp := map[string]any{"equipment": e}
	if f, err := h.farmers.FindByID(e.OwnerID); err == nil {
		resp["farmer"] = map[string]any{
			"full_name":          f.FullName,
			"phone":              f.Phone,
			"location":           f.Location,
			"farming_experience": f.FarmingExperience,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

func nilIfEmpty(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
