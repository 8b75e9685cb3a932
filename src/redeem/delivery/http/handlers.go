package http

import (
	"net/http"

	actionHTTP "github.com/MMN3003/carbondesk/src/action/delivery/http"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/redeem/domain"
	"github.com/MMN3003/carbondesk/src/redeem/usecase"
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
	r.POST("/redeem", h.Redeem)
	r.GET("/redeem/history", h.History)
}

type RedeemRequestBody struct {
	Amount  string `json:"amount" example:"250"`
	Address string `json:"address" example:"0x742d35Cc6634C0532925a3b844Bc454e4438f44e"`
}

type HistoryResponse struct {
	Records []domain.Record `json:"records"`
}

// Redeem godoc
//
//	@Summary		Redeem CCT for registry credits
//	@Description	Burns CCT and starts a pending credit release to the given address
//	@Tags			redeem
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RedeemRequestBody	true	"Request body"
//	@Success		200		{object}	actionHTTP.ResultDto
//	@Failure		400		{object}	actionHTTP.ResultDto
//	@Failure		409		{object}	actionHTTP.ResultDto
//	@Failure		502		{object}	actionHTTP.ResultDto
//	@Router			/redeem [post]
func (h *Handler) Redeem(c *gin.Context) {
	var req RedeemRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Redeem err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res := h.service.Redeem(c.Request.Context(), domain.Form{Amount: req.Amount, Address: req.Address})
	actionHTTP.WriteResult(c, res, nil)
}

// History godoc
//
//	@Summary	Redemption history
//	@Tags		redeem
//	@Produce	json
//	@Success	200	{object}	HistoryResponse
//	@Router		/redeem/history [get]
func (h *Handler) History(c *gin.Context) {
	c.JSON(http.StatusOK, HistoryResponse{Records: h.service.History()})
}
