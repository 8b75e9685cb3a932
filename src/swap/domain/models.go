package domain

import token "github.com/MMN3003/carbondesk/src/token/domain"

// Direction of a quote computation.
type Direction int

const (
	// Forward converts an input amount into the output side: amount * rate.
	Forward Direction = iota
	// Reverse converts a desired output back into the input side: amount / rate.
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// Side names the amount field that was edited and is the source of a recomputation.
type Side string

const (
	SideFrom Side = "from"
	SideTo   Side = "to"
)

// Quote is derived state; it is rebuilt on every read and never stored.
type Quote struct {
	InputAmount     string `json:"input_amount"`
	OutputAmount    string `json:"output_amount"`
	Rate            string `json:"rate"`
	SlippagePercent string `json:"slippage_percent"`
	MinimumReceived string `json:"minimum_received"`
}

// State is a snapshot of a swap session for rendering.
type State struct {
	FromToken       token.Token `json:"from_token"`
	ToToken         token.Token `json:"to_token"`
	FromAmount      string      `json:"from_amount"`
	ToAmount        string      `json:"to_amount"`
	SlippagePercent string      `json:"slippage_percent"`
	LastEdited      Side        `json:"last_edited,omitempty"`
	Quote           Quote       `json:"quote"`
	Busy            bool        `json:"busy"`
}
