package domain

import "time"

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

func (k Kind) Valid() bool {
	switch k {
	case KindSuccess, KindError, KindWarning, KindInfo:
		return true
	}
	return false
}

// Notification is an ephemeral message shown until it expires or is dismissed.
type Notification struct {
	ID                    string        `json:"id"`
	Kind                  Kind          `json:"kind"`
	Message               string        `json:"message"`
	AutoClose             bool          `json:"auto_close"`
	Duration              time.Duration `json:"duration"`
	RemainingTimeFraction float64       `json:"remaining_time_fraction"`
	CreatedAt             time.Time     `json:"created_at"`
}

type PushOptions struct {
	AutoClose bool
	Duration  time.Duration
}

type PushOption func(*PushOptions)

// WithDuration overrides the auto-dismiss duration for one notification.
func WithDuration(d time.Duration) PushOption {
	return func(o *PushOptions) { o.Duration = d }
}

// WithoutAutoClose keeps the notification until it is dismissed explicitly.
func WithoutAutoClose() PushOption {
	return func(o *PushOptions) { o.AutoClose = false }
}
