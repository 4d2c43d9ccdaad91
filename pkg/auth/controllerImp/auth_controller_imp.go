package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"agrilink/entities"
	"agrilink/pkg/auth/controller"
	"agrilink/pkg/farmer/repository"
	"agrilink/pkg/logger"
	"agrilink/pkg/middleware"
	"agrilink/pkg/token"
)

type authCtrl struct {
	farmers repository.FarmerRepository
	tm      *token.Manager
	log     *logger.Logger
}

func New(farmers repository.FarmerRepository, tm *token.Manager, log *logger.Logger) controller.AuthController {
	return &authCtrl{farmers: farmers, tm: tm, log: log}
}

type registerReq struct {
	Email             string   `json:"email"`
	Password          string   `json:"password"`
	FullName          string   `json:"full_name"`
	Phone             string   `json:"phone"`
	Location          string   `json:"location"`
	PreferredLanguage string   `json:"preferred_language"`
	FarmingExperience int      `json:"farming_experience"`
	FarmSizeAcres     *float64 `json:"farm_size_acres"`
}

type signInReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type farmerDTO struct {
	ID                string `json:"id"`
	Email             string `json:"email"`
	FullName          string `json:"full_name"`
	Phone             string `json:"phone"`
	Location          string `json:"location"`
	PreferredLanguage string `json:"preferred_language"`
	FarmingExperience int    `json:"farming_experience"`
}

func toDTO(f *entities.Farmer) farmerDTO {
	return farmerDTO{
		ID:                f.ID,
		Email:             f.Email,
		FullName:          f.FullName,
		Phone:             f.Phone,
		Location:          f.Location,
		PreferredLanguage: f.PreferredLanguage,
		FarmingExperience: f.FarmingExperience,
	}
}

func (h *authCtrl) Register(c echo.Context) error {
	var in registerReq
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	if in.Email == "" || in.Password == "" || strings.TrimSpace(in.FullName) == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "email, password and full_name required"})
	}

	taken, err := h.farmers.EmailTaken(in.Email)
	if err != nil {
		h.log.Error("register: email lookup failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}
	if taken {
		return c.JSON(http.StatusConflict, map[string]string{"error": "email already in use"})
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	f := &entities.Farmer{
		Email:             in.Email,
		PasswordHash:      string(hash),
		FullName:          strings.TrimSpace(in.FullName),
		Phone:             strings.TrimSpace(in.Phone),
		Location:          strings.TrimSpace(in.Location),
		PreferredLanguage: in.PreferredLanguage,
		FarmingExperience: in.FarmingExperience,
		FarmSizeAcres:     in.FarmSizeAcres,
	}
	if err := h.farmers.Create(f); err != nil {
		h.log.Error("register: create failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}

	tok, err := h.tm.Sign(f.ID)
	if err != nil {
		h.log.Error("register: token sign failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "token error"})
	}
	c.SetCookie(h.tm.AuthCookie(tok))
	return c.JSON(http.StatusCreated, toDTO(f))
}

func (h *authCtrl) SignIn(c echo.Context) error {
	var in signInReq
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	f, err := h.farmers.FindByEmail(in.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
	} else if err != nil {
		h.log.Error("sign-in: lookup failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "db error"})
	}

	if bcrypt.CompareHashAndPassword([]byte(f.PasswordHash), []byte(in.Password)) != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid email or password"})
	}

	tok, err := h.tm.Sign(f.ID)
	if err != nil {
		h.log.Error("sign-in: token sign failed", "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "token error"})
	}
	c.SetCookie(h.tm.AuthCookie(tok))
	return c.JSON(http.StatusOK, toDTO(f))
}

func (h *authCtrl) SignOut(c echo.Context) error {
	c.SetCookie(h.tm.ClearCookie())
	return c.JSON(http.StatusOK, map[string]string{"status": "signed_out"})
}

func (h *authCtrl) Me(c echo.Context) error {
	f, err := h.farmers.FindByID(middleware.UID(c))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "user not found"})
	}
	return c.JSON(http.StatusOK, toDTO(f))
}
