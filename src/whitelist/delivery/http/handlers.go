package http

import (
	"errors"
	"net/http"

	actionHTTP "github.com/MMN3003/carbondesk/src/action/delivery/http"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/whitelist/domain"
	"github.com/MMN3003/carbondesk/src/whitelist/usecase"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *usecase.Service
	logger  *logger.Logger
}

func NewHandler(s *usecase.Service, l *logger.Logger) *Handler {
	return &Handler{service: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/whitelist")
	g.GET("", h.List)
	g.POST("", h.Save)
	g.POST("/:id/edit", h.Edit)
	g.POST("/cancel", h.Cancel)
	g.DELETE("/:id", h.Delete)
}

type SaveRequestBody struct {
	Address   string `json:"address" example:"0x742d35Cc6634C0532925a3b844Bc454e4438f44e"`
	Amount    string `json:"amount" example:"1000"`
	EditingID string `json:"editing_id,omitempty"`
}

type ListResponse struct {
	Entries   []domain.Entry `json:"entries"`
	Total     string         `json:"total"`
	Count     int            `json:"count"`
	EditingID string         `json:"editing_id,omitempty"`
}

// List godoc
//
//	@Summary	List whitelisted addresses
//	@Tags		whitelist
//	@Produce	json
//	@Param		search	query		string	false	"address or amount substring"
//	@Success	200		{object}	ListResponse
//	@Router		/whitelist [get]
func (h *Handler) List(c *gin.Context) {
	entries := h.service.Search(c.Query("search"))
	c.JSON(http.StatusOK, ListResponse{
		Entries:   entries,
		Total:     h.service.Total().String(),
		Count:     len(h.service.Entries()),
		EditingID: h.service.EditingID(),
	})
}

// Save godoc
//
//	@Summary		Add or update a whitelisted address
//	@Description	Updates the entry being edited, otherwise adds a new one
//	@Tags			whitelist
//	@Accept			json
//	@Produce		json
//	@Param			request	body		SaveRequestBody	true	"Request body"
//	@Success		200		{object}	actionHTTP.ResultDto
//	@Failure		400		{object}	actionHTTP.ResultDto
//	@Failure		409		{object}	actionHTTP.ResultDto
//	@Failure		502		{object}	actionHTTP.ResultDto
//	@Router			/whitelist [post]
func (h *Handler) Save(c *gin.Context) {
	var req SaveRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Save err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res := h.service.Save(c.Request.Context(), domain.Form{Address: req.Address, Amount: req.Amount, EditingID: req.EditingID})
	actionHTTP.WriteResult(c, res, nil)
}

// Edit godoc
//
//	@Summary	Load an entry into the form
//	@Tags		whitelist
//	@Produce	json
//	@Param		id	path		string	true	"entry id"
//	@Success	200	{object}	domain.Form
//	@Failure	404	{object}	object{error=string}
//	@Router		/whitelist/{id}/edit [post]
func (h *Handler) Edit(c *gin.Context) {
	form, err := h.service.Edit(c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, form)
}

// Cancel godoc
//
//	@Summary	Leave edit mode
//	@Tags		whitelist
//	@Success	204
//	@Router		/whitelist/cancel [post]
func (h *Handler) Cancel(c *gin.Context) {
	h.service.Cancel()
	c.Status(http.StatusNoContent)
}

// Delete godoc
//
//	@Summary	Remove a whitelisted address
//	@Tags		whitelist
//	@Produce	json
//	@Param		id	path		string	true	"entry id"
//	@Success	200	{object}	actionHTTP.ResultDto
//	@Failure	400	{object}	actionHTTP.ResultDto
//	@Failure	409	{object}	actionHTTP.ResultDto
//	@Failure	502	{object}	actionHTTP.ResultDto
//	@Router		/whitelist/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	res := h.service.Delete(c.Request.Context(), c.Param("id"))
	actionHTTP.WriteResult(c, res, nil)
}
