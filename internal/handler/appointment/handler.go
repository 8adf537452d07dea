package appointment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lezerquera/apk-ZIMI/internal/handler"
	"github.com/lezerquera/apk-ZIMI/internal/model"
	"github.com/lezerquera/apk-ZIMI/internal/service/appointment"
)

type Handler struct {
	service *appointment.Service
}

func NewHandler(service *appointment.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the public appointment routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	appointments := rg.Group("/appointments")
	{
		appointments.POST("", h.CreateAppointment)
		appointments.GET("", h.ListAppointments)
		appointments.GET("/:id", h.GetAppointment)
		appointments.PUT("/:id/confirm", h.ConfirmAppointment)
	}
	rg.GET("/patient/:id/appointments", h.ListPatientAppointments)
}

// RegisterAdminRoutes mounts the routes behind the admin guard.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/notifications/new-appointment", h.NotifyAdmin)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	apt, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	appointments, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) GetAppointment(c *gin.Context) {
	apt, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, apt)
}

func (h *Handler) ListPatientAppointments(c *gin.Context) {
	appointments, err := h.service.ListByPatient(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *Handler) ConfirmAppointment(c *gin.Context) {
	var req model.ConfirmAppointmentRequest
	if !handler.BindJSON(c, &req) {
		return
	}

	result, err := h.service.Confirm(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

type notifyQuery struct {
	AppointmentID string `form:"appointment_id" binding:"required"`
}

func (h *Handler) NotifyAdmin(c *gin.Context) {
	var q notifyQuery
	if !handler.BindQuery(c, &q) {
		return
	}

	msg, err := h.service.NotifyAdmin(c.Request.Context(), q.AppointmentID)
	if err != nil {
		handler.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, handler.Message{Message: msg})
}
