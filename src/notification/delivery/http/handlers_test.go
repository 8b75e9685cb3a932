package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/notification/domain"
	"github.com/MMN3003/carbondesk/src/notification/usecase"
	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushListDismiss(t *testing.T) {
	gin.SetMode(gin.TestMode)
	center := usecase.NewCenter(clock.NewMock(), logger.Nop())
	r := gin.New()
	NewHandler(center, logger.Nop()).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{"type":"warning","message":"heads up","auto_close":false}`)))
	require.Equal(t, http.StatusCreated, w.Code)
	var pushed PushResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pushed))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/notifications", nil))
	var list ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Notifications, 1)
	assert.Equal(t, domain.KindWarning, list.Notifications[0].Kind)
	assert.False(t, list.Notifications[0].AutoClose)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/notifications/"+pushed.ID, nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, center.List())
}

func TestPushRequiresMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(usecase.NewCenter(clock.NewMock(), logger.Nop()), logger.Nop()).RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/notifications", strings.NewReader(`{"type":"info"}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
