// Package http renders action results for the feature handlers.
package http

import (
	"net/http"

	"github.com/MMN3003/carbondesk/src/action/domain"
	"github.com/gin-gonic/gin"
)

// ResultDto is the body returned by every action endpoint.
// swagger:model ResultDto
type ResultDto struct {
	Outcome        domain.Outcome `json:"outcome" example:"succeeded"`
	NotificationID string         `json:"notification_id,omitempty" example:"01928c4e-8f5a-7b3c-9d2e-4f6a8b0c1d2e"`
	Error          string         `json:"error,omitempty"`
	Data           any            `json:"data,omitempty"`
}

// StatusFor maps an outcome onto an HTTP status.
func StatusFor(o domain.Outcome) int {
	switch o {
	case domain.OutcomeSucceeded:
		return http.StatusOK
	case domain.OutcomeRejected:
		return http.StatusBadRequest
	case domain.OutcomeSkipped:
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

// WriteResult writes res with data attached on success.
func WriteResult(c *gin.Context, res domain.Result, data any) {
	body := ResultDto{Outcome: res.Outcome, NotificationID: res.NotificationID}
	switch res.Outcome {
	case domain.OutcomeSucceeded:
		body.Data = data
	case domain.OutcomeRejected:
		if res.Err != nil {
			body.Error = res.Err.Error()
		}
	case domain.OutcomeSkipped:
		body.Error = domain.ErrBusy.Error()
	default:
		body.Error = "action failed"
	}
	c.JSON(StatusFor(res.Outcome), body)
}
