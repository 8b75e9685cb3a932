package http

import (
	"net/http"
	"time"

	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/notification/domain"
	"github.com/MMN3003/carbondesk/src/notification/usecase"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	center *usecase.Center
	logger *logger.Logger
}

func NewHandler(c *usecase.Center, l *logger.Logger) *Handler {
	return &Handler{center: c, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/notifications", h.List)
	r.POST("/notifications", h.Push)
	r.DELETE("/notifications/:id", h.Dismiss)
}

type ListResponse struct {
	Notifications []domain.Notification `json:"notifications"`
}

// PushRequestBody pushes one notification. AutoClose defaults to true and
// DurationMs to the center default.
type PushRequestBody struct {
	Type       domain.Kind `json:"type" example:"info"`
	Message    string      `json:"message" binding:"required" example:"Registry sync finished"`
	AutoClose  *bool       `json:"auto_close,omitempty"`
	DurationMs int64       `json:"duration_ms,omitempty" example:"5000"`
}

type PushResponse struct {
	ID string `json:"id"`
}

// List godoc
//
//	@Summary	Active notifications, oldest first
//	@Tags		notifications
//	@Produce	json
//	@Success	200	{object}	ListResponse
//	@Router		/notifications [get]
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, ListResponse{Notifications: h.center.List()})
}

// Push godoc
//
//	@Summary	Push a notification
//	@Tags		notifications
//	@Accept		json
//	@Produce	json
//	@Param		request	body		PushRequestBody	true	"Request body"
//	@Success	201		{object}	PushResponse
//	@Failure	400		{object}	object{error=string}
//	@Failure	503		{object}	object{error=string}
//	@Router		/notifications [post]
func (h *Handler) Push(c *gin.Context) {
	var req PushRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Push notification err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	var opts []domain.PushOption
	if req.AutoClose != nil && !*req.AutoClose {
		opts = append(opts, domain.WithoutAutoClose())
	}
	if req.DurationMs > 0 {
		opts = append(opts, domain.WithDuration(time.Duration(req.DurationMs)*time.Millisecond))
	}
	id := h.center.Push(req.Type, req.Message, opts...)
	if id == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "notification center closed"})
		return
	}
	c.JSON(http.StatusCreated, PushResponse{ID: id})
}

// Dismiss godoc
//
//	@Summary	Dismiss a notification
//	@Tags		notifications
//	@Param		id	path	string	true	"Notification id"
//	@Success	204
//	@Router		/notifications/{id} [delete]
func (h *Handler) Dismiss(c *gin.Context) {
	h.center.Dismiss(c.Param("id"))
	c.Status(http.StatusNoContent)
}
