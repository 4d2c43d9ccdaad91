package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	farmerRepo "agrilink/pkg/farmer/repository"
	"agrilink/pkg/logger"
	"agrilink/pkg/middleware"
	"agrilink/pkg/wishlist/controller"
)

type WishlistCtrl struct {
	farmers farmerRepo.FarmerRepository
	log     *logger.Logger
}

func New(farmers farmerRepo.FarmerRepository, log *logger.Logger) controller.WishlistController {
	return &WishlistCtrl{farmers: farmers, log: log}
}

// Check never fails hard: anonymous callers, unknown crops and lookup errors
// all come back as isInWishlist=false so public browsing stays frictionless.
func (h *WishlistCtrl) Check(c echo.Context) error {
	cropID := c.QueryParam("cropId")
	if cropID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Crop ID required"})
	}

	uid := middleware.UID(c)
	if uid == "" {
		return c.JSON(http.StatusOK, map[string]any{"isInWishlist": false})
	}

	wishlist, err := h.farmers.Wishlist(uid)
	if err != nil {
		return c.JSON(http.StatusOK, map[string]any{"isInWishlist": false})
	}
	for _, id := range wishlist {
		if id == cropID {
			return c.JSON(http.StatusOK, map[string]any{"isInWishlist": true})
		}
	}
	return c.JSON(http.StatusOK, map[string]any{"isInWishlist": false})
}

type toggleReq struct {
	CropID string `json:"cropId"`
	Action string `json:"action"` // add|remove
}

func (h *WishlistCtrl) Toggle(c echo.Context) error {
	uid := middleware.UID(c)
	var req toggleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if req.CropID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cropId required"})
	}
	if req.Action != "add" && req.Action != "remove" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "action must be add or remove"})
	}

	// Read-modify-write with no concurrency guard; concurrent toggles are
	// last-write-wins, as in the original system.
	wishlist, err := h.farmers.Wishlist(uid)
	if err != nil {
		h.log.Error("wishlist read failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update wishlist"})
	}

	switch req.Action {
	case "add":
		for _, id := range wishlist {
			if id == req.CropID {
				// already present: idempotent success, no write
				return c.JSON(http.StatusOK, map[string]any{"success": true})
			}
		}
		wishlist = append(wishlist, req.CropID)
	case "remove":
		next := wishlist[:0]
		for _, id := range wishlist {
			if id != req.CropID {
				next = append(next, id)
			}
		}
		wishlist = next
	}

	if err := h.farmers.SetWishlist(uid, wishlist); err != nil {
		h.log.Error("wishlist write failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to update wishlist"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
