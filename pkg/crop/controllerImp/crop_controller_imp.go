package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/crop/controller"
	"agrilink/pkg/crop/repository"
	farmerRepo "agrilink/pkg/farmer/repository"
	"agrilink/pkg/htmltext"
	"agrilink/pkg/logger"
	"agrilink/pkg/middleware"
)

type CropCtrl struct {
	repo    repository.CropRepository
	farmers farmerRepo.FarmerRepository
	log     *logger.Logger
}

func New(repo repository.CropRepository, farmers farmerRepo.FarmerRepository, log *logger.Logger) controller.CropController {
	return &CropCtrl{repo: repo, farmers: farmers, log: log}
}

type createReq struct {
	CropName     string  `json:"crop_name"`
	Variety      string  `json:"variety"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	PricePerUnit float64 `json:"price_per_unit"`
	HarvestDate  string  `json:"harvest_date"`
	ExpiryDate   string  `json:"expiry_date"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	QualityGrade string  `json:"quality_grade"`
	Organic      bool    `json:"organic"`
}

func (h *CropCtrl) Create(c echo.Context) error {
	uid := middleware.UID(c)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if strings.TrimSpace(req.CropName) == "" || strings.TrimSpace(req.Location) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "crop_name and location required"})
	}
	if req.Quantity <= 0 || req.PricePerUnit <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quantity and price_per_unit must be positive"})
	}
	if !entities.ValidUnit(req.Unit) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unit must be kg, quintals or tons"})
	}
	if !entities.ValidQualityGrade(req.QualityGrade) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "quality_grade must be A, B or C"})
	}

	cr := &entities.Crop{
		FarmerID:     uid,
		CropName:     strings.TrimSpace(req.CropName),
		Variety:      nilIfEmpty(req.Variety),
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		PricePerUnit: req.PricePerUnit,
		HarvestDate:  nilIfEmpty(req.HarvestDate),
		ExpiryDate:   nilIfEmpty(req.ExpiryDate),
		Location:     strings.TrimSpace(req.Location),
		Description:  nilIfEmpty(htmltext.Strip(req.Description)),
		QualityGrade: req.QualityGrade,
		Organic:      req.Organic,
		Available:    true,
	}
	if err := h.repo.Create(cr); err != nil {
		h.log.Error("crop create failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to create listing"})
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *CropCtrl) List(c echo.Context) error {
	rows, err := h.repo.List()
	if err != nil {
		h.log.Error("crop list failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listings"})
	}
	return c.JSON(http.StatusOK, map[string]any{"crops": rows})
}

func (h *CropCtrl) Get(c echo.Context) error {
	cr, err := h.repo.FindByID(c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	} else if err != nil {
		h.log.Error("crop get failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch listing"})
	}

	resp := map[string]any{"crop": cr}
	if f, err := h.farmers.FindByID(cr.FarmerID); err == nil {
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
