package http

import (
	"net/http"
	"time"

	actionHTTP "github.com/MMN3003/carbondesk/src/action/delivery/http"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/registry/domain"
	"github.com/MMN3003/carbondesk/src/registry/usecase"
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
	g := r.Group("/registry")
	g.GET("", h.State)
	g.PUT("", h.Update)
	g.POST("/save", h.Save)
	g.POST("/test", h.TestConnection)
}

type UpdateRequestBody struct {
	Endpoint  string `json:"endpoint" example:"https://registry.example.org/api"`
	APIKey    string `json:"api_key" example:"k-123"`
	AccountID string `json:"account_id" example:"acct-9"`
}

// StateResponse hides the API key.
type StateResponse struct {
	Endpoint  string                  `json:"endpoint"`
	AccountID string                  `json:"account_id"`
	HasAPIKey bool                    `json:"has_api_key"`
	Status    domain.ConnectionStatus `json:"status"`
	Tested    string                  `json:"last_tested,omitempty"`
	Saving    bool                    `json:"saving"`
	Testing   bool                    `json:"testing"`
}

func toStateResponse(st domain.State) StateResponse {
	resp := StateResponse{
		Endpoint:  st.Config.Endpoint,
		AccountID: st.Config.AccountID,
		HasAPIKey: st.Config.APIKey != "",
		Status:    st.Status,
		Saving:    st.Saving,
		Testing:   st.Testing,
	}
	if st.LastTested != nil {
		resp.Tested = st.LastTested.UTC().Format(time.RFC3339)
	}
	return resp
}

// State godoc
//
//	@Summary	Registry form and connection status
//	@Tags		registry
//	@Produce	json
//	@Success	200	{object}	StateResponse
//	@Router		/registry [get]
func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, toStateResponse(h.service.State()))
}

// Update godoc
//
//	@Summary		Edit the registry form
//	@Description	Any change resets the connection status to untested
//	@Tags			registry
//	@Accept			json
//	@Produce		json
//	@Param			request	body		UpdateRequestBody	true	"Request body"
//	@Success		200		{object}	StateResponse
//	@Failure		400		{object}	object{error=string}
//	@Router			/registry [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Errorf("Update err: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	st := h.service.Update(domain.Config{Endpoint: req.Endpoint, APIKey: req.APIKey, AccountID: req.AccountID})
	c.JSON(http.StatusOK, toStateResponse(st))
}

// Save godoc
//
//	@Summary	Save the registry configuration
//	@Tags		registry
//	@Produce	json
//	@Success	200	{object}	actionHTTP.ResultDto
//	@Failure	400	{object}	actionHTTP.ResultDto
//	@Failure	409	{object}	actionHTTP.ResultDto
//	@Failure	502	{object}	actionHTTP.ResultDto
//	@Router		/registry/save [post]
func (h *Handler) Save(c *gin.Context) {
	actionHTTP.WriteResult(c, h.service.Save(c.Request.Context()), nil)
}

// TestConnection godoc
//
//	@Summary	Probe the registry with the current form
//	@Tags		registry
//	@Produce	json
//	@Success	200	{object}	actionHTTP.ResultDto
//	@Failure	400	{object}	actionHTTP.ResultDto
//	@Failure	409	{object}	actionHTTP.ResultDto
//	@Failure	502	{object}	actionHTTP.ResultDto
//	@Router		/registry/test [post]
func (h *Handler) TestConnection(c *gin.Context) {
	res := h.service.TestConnection(c.Request.Context())
	actionHTTP.WriteResult(c, res, toStateResponse(h.service.State()))
}
