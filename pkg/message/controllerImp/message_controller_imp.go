package controllerImp

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"agrilink/pkg/logger"
	"agrilink/pkg/message/controller"
	svc "agrilink/pkg/message/service"
	"agrilink/pkg/middleware"
)

type MessageCtrl struct {
	svc svc.MessageService
	log *logger.Logger
}

func New(s svc.MessageService, log *logger.Logger) controller.MessageController {
	return &MessageCtrl{svc: s, log: log}
}

func (h *MessageCtrl) Send(c echo.Context) error {
	uid := middleware.UID(c)
	var in svc.SendMessageInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}

	m, err := h.svc.Send(uid, in)
	if errors.Is(err, svc.ErrInvalid) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	} else if err != nil {
		h.log.Error("message send failed", "sender_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to send message"})
	}
	return c.JSON(http.StatusOK, map[string]any{"success": true, "message": m})
}

func (h *MessageCtrl) List(c echo.Context) error {
	uid := middleware.UID(c)
	views, err := h.svc.List(uid, c.QueryParam("conversationWith"))
	if err != nil {
		h.log.Error("message list failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch messages"})
	}
	return c.JSON(http.StatusOK, map[string]any{"messages": views})
}

func (h *MessageCtrl) Conversations(c echo.Context) error {
	uid := middleware.UID(c)
	convos, err := h.svc.Conversations(uid)
	if err != nil {
		h.log.Error("conversation list failed", "farmer_id", uid, "err", err)
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Failed to fetch conversations"})
	}
	return c.JSON(http.StatusOK, map[string]any{"conversations": convos})
}
