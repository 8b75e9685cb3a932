package http

import (
	"net/http"

	actionHTTP "github.com/MMN3003/carbondesk/src/action/delivery/http"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/token/domain"
	"github.com/MMN3003/carbondesk/src/token/usecase"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog domain.Catalog
	factory *usecase.Factory
	logger  *logger.Logger
}

func NewHandler(catalog domain.Catalog, f *usecase.Factory, l *logger.Logger) *Handler {
	return &Handler{catalog: catalog, factory: f, logger: l}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/tokens", h.List)
	r.GET("/tokens/:id", h.Get)
	r.POST("/tokens", h.Create)
}

type ListResponse struct {
	Tokens []domain.Token `json:"tokens"`
}

// List godoc
//
//	@Summary	List tokens
//	@Tags		tokens
//	@Produce	json
//	@Success	200	{object}	ListResponse
//	@Router		/tokens [get]
func (h *Handler) List(c *gin.Context) {
	c.JSON(http.StatusOK, ListResponse{Tokens: h.catalog.List()})
}

// Get godoc
//
//	@Summary	Get a token
//	@Tags		tokens
//	@Produce	json
//	@Param		id	path		string	true	"Token id"
//	@Success	200	{object}	domain.Token
//	@Failure	404	{object}	object{error=string}
//	@Router		/tokens/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	t, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrUnknownToken.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

// CreateTokenRequestBody is the token creation form.
type CreateTokenRequestBody struct {
	Name        string `json:"name" example:"Verified Carbon Unit"`
	Symbol      string `json:"symbol" example:"VCU"`
	Description string `json:"description" example:"Tokenized Verra VCUs"`
	Decimals    string `json:"decimals" example:"18"`
}

// Create godoc
//
//	@Summary		Create a token
//	@Description	Deploys a new carbon credit token and adds it to the catalog with a zero balance
//	@Tags			tokens
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateTokenRequestBody	true	"Request body"
//	@Success		200		{object}	actionHTTP.ResultDto
//	@Failure		400		{object}	actionHTTP.ResultDto
//	@Failure		409		{object}	actionHTTP.ResultDto
//	@Failure		502		{object}	actionHTTP.ResultDto
//	@Router			/tokens [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateTokenRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Create token err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	res := h.factory.Create(c.Request.Context(), usecase.CreateForm{
		Name:        req.Name,
		Symbol:      req.Symbol,
		Description: req.Description,
		Decimals:    req.Decimals,
	})
	actionHTTP.WriteResult(c, res, nil)
}
