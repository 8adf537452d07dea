package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lezerquera/apk-ZIMI/internal/handler"
	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/service/auth"
)

type Handler struct {
	service *auth.Service
}

func NewHandler(service *auth.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/admin/login", h.AdminLogin)
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if !handler.BindQuery(c, &req) {
		return
	}

	resp, err := h.service.AdminLogin(&req)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
