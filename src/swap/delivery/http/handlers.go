package http

import (
	"errors"
	"net/http"

	actionHTTP "github.com/MMN3003/carbondesk/src/action/delivery/http"
	actionDomain "github.com/MMN3003/carbondesk/src/action/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/swap/domain"
	"github.com/MMN3003/carbondesk/src/swap/usecase"
	token "github.com/MMN3003/carbondesk/src/token/domain"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	session *usecase.Session
	logger  *logger.Logger
}

func NewHandler(s *usecase.Session, l *logger.Logger) *Handler {
	return &Handler{session: s, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	g := r.Group("/swap")
	g.GET("", h.State)
	g.GET("/quote", h.Quote)
	g.PUT("/from-amount", h.SetFromAmount)
	g.PUT("/to-amount", h.SetToAmount)
	g.PUT("/from-token", h.SelectFromToken)
	g.PUT("/to-token", h.SelectToToken)
	g.PUT("/slippage", h.SetSlippage)
	g.POST("/direction", h.SwapDirection)
	g.POST("/max", h.SetMax)
	g.POST("/submit", h.Submit)
}

type ValueRequestBody struct {
	Value string `json:"value" example:"500"`
}

type TokenRequestBody struct {
	TokenID string `json:"token_id" example:"eth"`
}

// State godoc
//
//	@Summary	Swap form state
//	@Tags		swap
//	@Produce	json
//	@Success	200	{object}	domain.State
//	@Router		/swap [get]
func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.State())
}

// Quote godoc
//
//	@Summary	Current quote
//	@Tags		swap
//	@Produce	json
//	@Success	200	{object}	domain.Quote
//	@Router		/swap/quote [get]
func (h *Handler) Quote(c *gin.Context) {
	c.JSON(http.StatusOK, h.session.Quote())
}

// SetFromAmount godoc
//
//	@Summary		Edit the from amount
//	@Description	Stores the value verbatim and derives the to amount
//	@Tags			swap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ValueRequestBody	true	"Request body"
//	@Success		200		{object}	domain.State
//	@Failure		422		{object}	object{error=string}
//	@Router			/swap/from-amount [put]
func (h *Handler) SetFromAmount(c *gin.Context) {
	var req ValueRequestBody
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.session.SetFromAmount(req.Value))
}

// SetToAmount godoc
//
//	@Summary		Edit the to amount
//	@Description	Stores the value verbatim and derives the from amount
//	@Tags			swap
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ValueRequestBody	true	"Request body"
//	@Success		200		{object}	domain.State
//	@Failure		422		{object}	object{error=string}
//	@Router			/swap/to-amount [put]
func (h *Handler) SetToAmount(c *gin.Context) {
	var req ValueRequestBody
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.session.SetToAmount(req.Value))
}

// SelectFromToken godoc
//
//	@Summary	Pick the from token
//	@Tags		swap
//	@Accept		json
//	@Produce	json
//	@Param		request	body		TokenRequestBody	true	"Request body"
//	@Success	200		{object}	domain.State
//	@Failure	404		{object}	object{error=string}
//	@Router		/swap/from-token [put]
func (h *Handler) SelectFromToken(c *gin.Context) {
	var req TokenRequestBody
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.session.SelectFromToken(req.TokenID))
}

// SelectToToken godoc
//
//	@Summary	Pick the to token
//	@Tags		swap
//	@Accept		json
//	@Produce	json
//	@Param		request	body		TokenRequestBody	true	"Request body"
//	@Success	200		{object}	domain.State
//	@Failure	404		{object}	object{error=string}
//	@Router		/swap/to-token [put]
func (h *Handler) SelectToToken(c *gin.Context) {
	var req TokenRequestBody
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.session.SelectToToken(req.TokenID))
}

// SetSlippage godoc
//
//	@Summary	Set the slippage tolerance in percent
//	@Tags		swap
//	@Accept		json
//	@Produce	json
//	@Param		request	body		ValueRequestBody	true	"Request body"
//	@Success	200		{object}	domain.State
//	@Failure	400		{object}	object{error=string}
//	@Router		/swap/slippage [put]
func (h *Handler) SetSlippage(c *gin.Context) {
	var req ValueRequestBody
	if !h.bind(c, &req) {
		return
	}
	h.respond(c, h.session.SetSlippage(req.Value))
}

// SwapDirection godoc
//
//	@Summary	Flip the pair and both amounts
//	@Tags		swap
//	@Produce	json
//	@Success	200	{object}	domain.State
//	@Router		/swap/direction [post]
func (h *Handler) SwapDirection(c *gin.Context) {
	h.session.SwapDirection()
	c.JSON(http.StatusOK, h.session.State())
}

// SetMax godoc
//
//	@Summary	Fill the from amount with the whole balance
//	@Tags		swap
//	@Produce	json
//	@Success	200	{object}	domain.State
//	@Router		/swap/max [post]
func (h *Handler) SetMax(c *gin.Context) {
	h.respond(c, h.session.SetMax())
}

// Submit godoc
//
//	@Summary	Submit the swap
//	@Tags		swap
//	@Produce	json
//	@Success	200	{object}	actionHTTP.ResultDto
//	@Failure	400	{object}	actionHTTP.ResultDto
//	@Failure	409	{object}	actionHTTP.ResultDto
//	@Failure	502	{object}	actionHTTP.ResultDto
//	@Router		/swap/submit [post]
func (h *Handler) Submit(c *gin.Context) {
	res := h.session.Submit(c.Request.Context())
	actionHTTP.WriteResult(c, res, h.session.State())
}

func (h *Handler) bind(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		h.logger.Errorf("swap bind err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return false
	}
	return true
}

// respond writes the session state, or the error that stopped the edit.
// Amount edits are kept even when the quote could not be derived.
func (h *Handler) respond(c *gin.Context, err error) {
	switch {
	case err == nil:
		c.JSON(http.StatusOK, h.session.State())
	case errors.Is(err, token.ErrUnknownToken):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case actionDomain.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDivisionByZero), errors.Is(err, domain.ErrRateUnavailable), errors.Is(err, domain.ErrInvalidRate):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.logger.Errorf("swap edit err: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
