package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	"github.com/MMN3003/carbondesk/src/ledger/adapter/simulated"
	"github.com/MMN3003/carbondesk/src/logger"
	notificationUC "github.com/MMN3003/carbondesk/src/notification/usecase"
	"github.com/MMN3003/carbondesk/src/whitelist/repository"
	"github.com/MMN3003/carbondesk/src/whitelist/usecase"
	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	center := notificationUC.NewCenter(clock.NewMock(), logger.Nop())
	svc := usecase.NewService(
		repository.NewMemoryRepo(repository.SeedEntries()...),
		simulated.New(0, logger.Nop()),
		actionUC.NewRunner("whitelist", center, logger.Nop()),
		logger.Nop(),
	)
	r := gin.New()
	NewHandler(svc, logger.Nop()).RegisterRoutes(r)
	return r
}

func list(t *testing.T, r *gin.Engine, query string) ListResponse {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whitelist"+query, nil))
	require.Equal(t, http.StatusOK, w.Code)
	var body ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestWhitelistRoutes(t *testing.T) {
	r := newRouter()

	body := list(t, r, "")
	assert.Len(t, body.Entries, 2)
	assert.Equal(t, "1500", body.Total)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/whitelist",
		strings.NewReader(`{"address":"0x742d35Cc6634C0532925a3b844Bc454e4438f44e","amount":"20"}`)))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1520", list(t, r, "").Total)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/whitelist/1/edit", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", list(t, r, "").EditingID)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/whitelist/cancel", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/whitelist/2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body = list(t, r, "?search=742d")
	require.Len(t, body.Entries, 1)
	assert.Equal(t, 2, body.Count)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/whitelist/nope/edit", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
