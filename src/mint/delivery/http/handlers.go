package http

import (
	"net/http"

	actionHTTP "github.com/MMN3003/carbondesk/src/action/delivery/http"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/mint/domain"
	"github.com/MMN3003/carbondesk/src/mint/usecase"
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
	r.POST("/mint", h.Mint)
	r.GET("/mint/history", h.History)
	r.GET("/mint/stats", h.Stats)
}

// MintRequestBody is the mint form.
type MintRequestBody struct {
	Amount    string `json:"amount" example:"500"`
	Confirmed bool   `json:"confirmed" example:"true"`
}

type HistoryResponse struct {
	Records []domain.Record `json:"records"`
}

// Mint godoc
//
//	@Summary		Mint carbon credit tokens
//	@Description	Locks registry credits and mints the same amount of CCT
//	@Tags			mint
//	@Accept			json
//	@Produce		json
//	@Param			request	body		MintRequestBody	true	"Request body"
//	@Success		200		{object}	actionHTTP.ResultDto
//	@Failure		400		{object}	actionHTTP.ResultDto
//	@Failure		409		{object}	actionHTTP.ResultDto
//	@Failure		502		{object}	actionHTTP.ResultDto
//	@Router			/mint [post]
func (h *Handler) Mint(c *gin.Context) {
	var req MintRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Mint err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res := h.service.Mint(c.Request.Context(), domain.Form{Amount: req.Amount, Confirmed: req.Confirmed})
	actionHTTP.WriteResult(c, res, nil)
}

// History godoc
//
//	@Summary	Mint history
//	@Tags		mint
//	@Produce	json
//	@Param		status	query		string	false	"all, completed, pending or failed"
//	@Success	200		{object}	HistoryResponse
//	@Failure	400		{object}	object{error=string}
//	@Router		/mint/history [get]
func (h *Handler) History(c *gin.Context) {
	f, err := domain.ParseFilter(c.Query("status"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{Records: h.service.History(f)})
}

// Stats godoc
//
//	@Summary	Mint totals
//	@Tags		mint
//	@Produce	json
//	@Success	200	{object}	domain.Stats
//	@Router		/mint/stats [get]
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}
