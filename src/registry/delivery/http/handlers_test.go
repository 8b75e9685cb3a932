package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	"github.com/MMN3003/carbondesk/src/ledger/adapter/simulated"
	"github.com/MMN3003/carbondesk/src/logger"
	notificationUC "github.com/MMN3003/carbondesk/src/notification/usecase"
	"github.com/MMN3003/carbondesk/src/registry/adapter/network"
	"github.com/MMN3003/carbondesk/src/registry/domain"
	"github.com/MMN3003/carbondesk/src/registry/usecase"
	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	clk := clock.NewMock()
	clk.Set(time.Date(2025, 4, 10, 12, 0, 0, 0, time.UTC))
	center := notificationUC.NewCenter(clk, logger.Nop())
	svc := usecase.NewService(
		simulated.New(0, logger.Nop()),
		network.NewSimulatedProber(0, nil, logger.Nop()),
		actionUC.NewRunner("registry-save", center, logger.Nop()),
		actionUC.NewRunner("registry-test", center, logger.Nop()),
		clk,
		logger.Nop(),
		domain.Config{},
	)
	r := gin.New()
	NewHandler(svc, logger.Nop()).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/registry",
		strings.NewReader(`{"endpoint":"https://registry.example.org","api_key":"k","account_id":"a"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	var st StateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.True(t, st.HasAPIKey)
	assert.NotContains(t, w.Body.String(), `"k"`)
	assert.Equal(t, domain.StatusUntested, st.Status)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/registry/test", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/registry", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &st))
	assert.Equal(t, domain.StatusSuccess, st.Status)
	assert.Equal(t, "2025-04-10T12:00:00Z", st.Tested)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/registry/save", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
