package clinic

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lezerquera/apk-ZIMI/internal/handler"
	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/service/clinic"
)

type Handler struct {
	service *clinic.Service
}

func NewHandler(service *clinic.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/", h.Root)
	rg.GET("/services", h.Services)
	rg.GET("/doctor-info", h.DoctorInfo)
	rg.GET("/doctor-image", h.DoctorImage)
	rg.GET("/team", h.Team)
	rg.GET("/insurance", h.Insurance)
	rg.GET("/contact-info", h.ContactInfo)
	rg.GET("/testimonials", h.Testimonials)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.PUT("/doctor-image", h.UpdateDoctorImage)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, handler.Message{Message: clinic.RootMessage})
}

func (h *Handler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Services())
}

func (h *Handler) Team(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Team())
}

func (h *Handler) Insurance(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Insurance())
}

func (h *Handler) ContactInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.ContactInfo())
}

func (h *Handler) Testimonials(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Testimonials())
}

func (h *Handler) DoctorInfo(c *gin.Context) {
	info, err := h.service.DoctorInfo(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) DoctorImage(c *gin.Context) {
	img, err := h.service.DoctorImage(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

func (h *Handler) UpdateDoctorImage(c *gin.Context) {
	var req model.UpdateDoctorImageRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	img, err := h.service.UpdateDoctorImage(c.Request.Context(), req.ImageURL)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}
