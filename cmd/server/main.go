package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agrilink/config"
	"agrilink/database"
	"agrilink/router"

	"agrilink/pkg/catalog"
	"agrilink/pkg/logger"
	"agrilink/pkg/token"

	authCtrlImp "agrilink/pkg/auth/controllerImp"
	bookingCtrlImp "agrilink/pkg/booking/controllerImp"
	bookingRepoImp "agrilink/pkg/booking/repositoryImp"
	bookingSvcImp "agrilink/pkg/booking/serviceImp"
	catalogCtrlImp "agrilink/pkg/catalog/controllerImp"
	cropCtrlImp "agrilink/pkg/crop/controllerImp"
	cropRepoImp "agrilink/pkg/crop/repositoryImp"
	equipCtrlImp "agrilink/pkg/equipment/controllerImp"
	equipRepoImp "agrilink/pkg/equipment/repositoryImp"
	farmerCtrlImp "agrilink/pkg/farmer/controllerImp"
	farmerRepoImp "agrilink/pkg/farmer/repositoryImp"
	healthCtrlImp "agrilink/pkg/health/controllerImp"
	messageCtrlImp "agrilink/pkg/message/controllerImp"
	messageRepoImp "agrilink/pkg/message/repositoryImp"
	messageSvcImp "agrilink/pkg/message/serviceImp"
	wishlistCtrlImp "agrilink/pkg/wishlist/controllerImp"
)

func main() {
	// 1) Config
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not set. Refusing to start.")
	}

	// 2) Logger
	zl, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	// 3) DB (sqlite) + automigrate
	db := database.OpenSQLite(cfg.DBPath)

	// 4) Reference catalog (both files optional)
	cat, err := catalog.LoadFromFiles(cfg.CropCatalog, cfg.EquipCatalog)
	if err != nil {
		zl.Warn("catalog load failed", "err", err)
		cat = &catalog.Catalog{}
	}

	// 5) Sessions
	tm := token.NewManager(cfg.JWTSecret, cfg.CookieName, cfg.CookieSecure)

	// 6) Repos
	farmers := farmerRepoImp.New(db)
	crops := cropRepoImp.New(db)
	equipment := equipRepoImp.New(db)
	bookings := bookingRepoImp.New(db)
	messages := messageRepoImp.New(db)

	// 7) Services
	bookingSvc := bookingSvcImp.New(bookings, equipment)
	messageSvc := messageSvcImp.New(messages, farmers)

	// 8) Controllers
	authCtrl := authCtrlImp.New(farmers, tm, zl)
	cropCtrl := cropCtrlImp.New(crops, farmers, zl)
	equipCtrl := equipCtrlImp.New(equipment, farmers, zl)
	bookingCtrl := bookingCtrlImp.New(bookingSvc, zl)
	messageCtrl := messageCtrlImp.New(messageSvc, zl)
	wishlistCtrl := wishlistCtrlImp.New(farmers, zl)
	farmerCtrl := farmerCtrlImp.New(farmers, crops, equipment, bookingSvc, zl)
	catalogCtrl := catalogCtrlImp.New(cat)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 9) Echo + routes
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	r := router.New(
		e,
		tm,
		authCtrl,
		cropCtrl,
		equipCtrl,
		bookingCtrl,
		messageCtrl,
		wishlistCtrl,
		farmerCtrl,
		catalogCtrl,
		healthCtrl,
	)

	// 10) Start
	zl.Info("listening", "port", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", "err", err)
	}
}
