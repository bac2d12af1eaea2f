package request

import "encoding/json"

type OpenModalRequest struct {
	Kind    string          `json:"kind" binding:"required"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
