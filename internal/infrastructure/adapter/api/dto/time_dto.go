package dto

import (
	"encoding/json"

	"github.com/amirhossein-jamali/timewriter/internal/domain/entity"
)

// Amount is a JSON number or string kept as text, so large and precise
// values reach the domain without float rounding
type Amount string

// UnmarshalJSON accepts 1.5, "1.5", "NaN" and "Infinity"
func (a *Amount) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = Amount(n)
	return nil
}

// WriteRequest represents the API request for rendering one value
type WriteRequest struct {
	Value    Amount          `json:"value" binding:"required"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	Locale   string          `json:"locale"`
	Settings entity.Settings `json:"settings"`
}

// CountdownRequest represents the API request for splitting a value over units.
// Units and Groups are combined; neither means the common segment.
type CountdownRequest struct {
	Value    Amount          `json:"value" binding:"required"`
	From     string          `json:"from"`
	Units    []string        `json:"units"`
	Groups   []string        `json:"groups"`
	Locale   string          `json:"locale"`
	Settings entity.Settings `json:"settings"`
}

// ResultResponse carries rendered text
type ResultResponse struct {
	Result string `json:"result"`
	Locale string `json:"locale"`
}

// UnitResponse describes one time unit
type UnitResponse struct {
	Name         string `json:"name"`
	ReadableName string `json:"readableName"`
	Symbol       string `json:"symbol,omitempty"`
	Nanoseconds  string `json:"nanoseconds"`
}

// SegmentResponse describes one named unit group
type SegmentResponse struct {
	Name  string   `json:"name"`
	Units []string `json:"units"`
}
