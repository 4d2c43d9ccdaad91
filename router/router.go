package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "agrilink/pkg/auth/controller"
	bookingCtrl "agrilink/pkg/booking/controller"
	cropCtrl "agrilink/pkg/crop/controller"
	equipCtrl "agrilink/pkg/equipment/controller"
	farmerCtrl "agrilink/pkg/farmer/controller"
	messageCtrl "agrilink/pkg/message/controller"
	"agrilink/pkg/middleware"
	"agrilink/pkg/token"
	wishlistCtrl "agrilink/pkg/wishlist/controller"
)

func New(
	e *echo.Echo,
	tm *token.Manager,
	auth authCtrl.AuthController,
	crops cropCtrl.CropController,
	equipment equipCtrl.EquipmentController,
	bookings bookingCtrl.BookingController,
	messages messageCtrl.MessageController,
	wishlist wishlistCtrl.WishlistController,
	farmers farmerCtrl.FarmerController,
	catalog interface {
		Crops(echo.Context) error
		Equipment(echo.Context) error
	},
	health interface{ Health(echo.Context) error },
) *echo.Echo {
	requireAuth := middleware.RequireAuth(tm)
	optionalAuth := middleware.OptionalAuth(tm)

	e.GET("/health", health.Health)

	api := e.Group("/api")

	api.POST("/auth/register", auth.Register)
	api.POST("/auth/sign-in", auth.SignIn)
	api.POST("/auth/sign-out", auth.SignOut)
	api.GET("/auth/me", auth.Me, requireAuth)

	api.GET("/catalog/crops", catalog.Crops)
	api.GET("/catalog/equipment", catalog.Equipment)

	api.GET("/crops", crops.List)
	api.GET("/crops/:id", crops.Get)
	api.POST("/crops", crops.Create, requireAuth)

	api.GET("/equipment", equipment.List)
	api.GET("/equipment/:id", equipment.Get)
	api.POST("/equipment", equipment.Create, requireAuth)

	api.POST("/bookings", bookings.Create, requireAuth)
	api.PATCH("/bookings", bookings.UpdateStatus, requireAuth)
	api.GET("/bookings", bookings.List, requireAuth)

	api.POST("/messages", messages.Send, requireAuth)
	api.GET("/messages", messages.List, requireAuth)
	api.GET("/messages/conversations", messages.Conversations, requireAuth)

	api.GET("/wishlist/check", wishlist.Check, optionalAuth)
	api.POST("/wishlist", wishlist.Toggle, requireAuth)

	api.POST("/contact-farmer", farmers.Contact, requireAuth)
	api.GET("/dashboard", farmers.Dashboard, requireAuth)

	return e
}
