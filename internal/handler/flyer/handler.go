package flyer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lezerquera/apk-ZIMI/internal/handler"
	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/service/flyer"
	apperrors "github.com/lezerquera/apk-ZIMI/pkg/errors"
)

type Handler struct {
	service *flyer.Service
}

func NewHandler(service *flyer.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	flyers := rg.Group("/flyers")
	{
		flyers.GET("", h.ListFlyers)
		flyers.GET("/:service_id", h.GetFlyer)
	}
}

// RegisterAdminRoutes mounts the write routes; guard is applied per route so
// they can share the public /flyers prefix.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup, guard gin.HandlerFunc) {
	flyers := rg.Group("/flyers", guard)
	{
		flyers.POST("", h.CreateFlyer)
		flyers.POST("/:service_id", h.CreateFlyer)
		flyers.PUT("/:service_id", h.UpdateFlyer)
		flyers.DELETE("/:service_id", h.DeleteFlyer)
	}
}

func serviceID(c *gin.Context) (model.ServiceID, bool) {
	id := model.ServiceID(c.Param("service_id"))
	if !id.Valid() {
		handler.Abort(c, apperrors.NotFound("service", nil))
		return "", false
	}
	return id, true
}

func (h *Handler) ListFlyers(c *gin.Context) {
	flyers, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, flyers)
}

func (h *Handler) GetFlyer(c *gin.Context) {
	id, ok := serviceID(c)
	if !ok {
		return
	}

	f, err := h.service.GetByService(c.Request.Context(), id)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// CreateFlyer accepts the service id in the body; when the path carries one
// it must match.
func (h *Handler) CreateFlyer(c *gin.Context) {
	var req model.CreateFlyerRequest
	if !handler.BindJSON(c, &req) {
		return
	}
	if p := c.Param("service_id"); p != "" && model.ServiceID(p) != req.ServiceID {
		handler.Abort(c, apperrors.BadRequest("service_id does not match path", nil))
		return
	}

	f, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *Handler) UpdateFlyer(c *gin.Context) {
	id, ok := serviceID(c)
	if !ok {
		return
	}
	var req model.UpdateFlyerRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	f, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *Handler) DeleteFlyer(c *gin.Context) {
	id, ok := serviceID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.Message{Message: "Flyer eliminado exitosamente"})
}
