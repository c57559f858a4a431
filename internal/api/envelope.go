package api

import (
	"github.com/danielgtaylor/huma/v2"
)

// envelopeVersion is bumped when the envelope shape changes.
const envelopeVersion = 1

// envelope is the wire shape wrapping every API response.
type envelope struct {
	V       int    `json:"v"`
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// EnvelopeTransformer wraps all responses in the standard envelope:
// {v: 1, success: true, data: ...} for successes and
// {v: 1, success: false, error: "...", code: "..."} for failures.
func EnvelopeTransformer(_ huma.Context, status string, v any) (any, error) {
	if apiErr, ok := v.(*APIError); ok {
		return &envelope{
			V:       envelopeVersion,
			Success: false,
			Error:   apiErr.Message,
			Code:    apiErr.Code,
			Details: apiErr.Details,
		}, nil
	}
	if status >= "400" && status <= "599" && len(status) == 3 {
		if err, ok := v.(error); ok {
			return &envelope{
				V:       envelopeVersion,
				Success: false,
				Error:   err.Error(),
			}, nil
		}
	}
	return &envelope{
		V:       envelopeVersion,
		Success: true,
		Data:    v,
	}, nil
}
