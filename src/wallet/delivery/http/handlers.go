package http

import (
	"errors"
	"net/http"

	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/wallet/domain"
	"github.com/MMN3003/carbondesk/src/wallet/usecase"
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
	g := r.Group("/wallet")
	g.GET("", h.State)
	g.POST("/connect", h.Connect)
	g.POST("/disconnect", h.Disconnect)
	g.PUT("/accounts", h.AccountsChanged)
}

// ConnectRequestBody carries the account reported by the wallet provider.
type ConnectRequestBody struct {
	Account string `json:"account" binding:"required" example:"0x742d35Cc6634C0532925a3b844Bc454e4438f44e"`
}

type AccountsChangedRequestBody struct {
	Accounts []string `json:"accounts"`
}

// State godoc
//
//	@Summary	Wallet connection state
//	@Tags		wallet
//	@Produce	json
//	@Success	200	{object}	domain.Wallet
//	@Router		/wallet [get]
func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.State())
}

// Connect godoc
//
//	@Summary	Record a connected account
//	@Tags		wallet
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ConnectRequestBody	true	"Request body"
//	@Success	200		{object}	domain.Wallet
//	@Failure	400		{object}	object{error=string}
//	@Router		/wallet/connect [post]
func (h *Handler) Connect(c *gin.Context) {
	var req ConnectRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	w, err := h.service.Connect(req.Account)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

// Disconnect godoc
//
//	@Summary	Forget the connected account
//	@Tags		wallet
//	@Produce	json
//	@Success	200	{object}	domain.Wallet
//	@Router		/wallet/disconnect [post]
func (h *Handler) Disconnect(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Disconnect())
}

// AccountsChanged godoc
//
//	@Summary	Follow an account change reported by the provider
//	@Tags		wallet
//	@Accept		json
//	@Produce	json
//	@Param		request	body		AccountsChangedRequestBody	true	"Request body"
//	@Success	200		{object}	domain.Wallet
//	@Failure	400		{object}	object{error=string}
//	@Router		/wallet/accounts [put]
func (h *Handler) AccountsChanged(c *gin.Context) {
	var req AccountsChangedRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	w, err := h.service.AccountsChanged(req.Accounts)
	if err != nil {
		h.respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *Handler) respondErr(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrInvalidAccount) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.logger.Errorf("wallet err: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
