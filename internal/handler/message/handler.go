package message

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lezerquera/apk-ZIMI/internal/handler"
	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/service/message"
)

type Handler struct {
	service *message.Service
}

func NewHandler(service *message.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the message routes. The :id segment is a user id on
// the GET routes and a message id on the others.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	messages := rg.Group("/messages")
	{
		messages.POST("", h.SendMessage)
		messages.GET("/:id", h.ListMessages)
		messages.GET("/:id/unread-count", h.UnreadCount)
		messages.PUT("/:id/read", h.MarkRead)
		messages.POST("/:id/reply", h.Reply)
	}
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/messages/poll", h.AdminPoll)
}

func (h *Handler) SendMessage(c *gin.Context) {
	var sender model.MessageSender
	if !handler.BindQuery(c, &sender) {
		return
	}
	var req model.SendMessageRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	msg, err := h.service.Send(c.Request.Context(), sender, &req)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) ListMessages(c *gin.Context) {
	msgs, err := h.service.ListFor(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.UnreadCount(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, count)
}

func (h *Handler) MarkRead(c *gin.Context) {
	msg, err := h.service.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) Reply(c *gin.Context) {
	var sender model.MessageSender
	if !handler.BindQuery(c, &sender) {
		return
	}
	var req model.ReplyMessageRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	msg, err := h.service.Reply(c.Request.Context(), c.Param("id"), sender, req.Body)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (h *Handler) AdminPoll(c *gin.Context) {
	poll, err := h.service.AdminPoll(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, poll)
}
