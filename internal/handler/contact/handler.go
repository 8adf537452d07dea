package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lezerquera/apk-ZIMI/internal/handler"
	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/service/contact"
)

type Handler struct {
	service *contact.Service
}

func NewHandler(service *contact.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/contact", h.SubmitContact)
}

func (h *Handler) SubmitContact(c *gin.Context) {
	var req model.CreateContactRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	ack, err := h.service.Submit(c.Request.Context(), &req)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, ack)
}
