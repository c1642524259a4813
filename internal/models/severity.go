package models

import (
	"encoding/json"
	"fmt"
)

// SeverityText holds a severity level arriving as either a JSON string
// ("High") or a bare number (3). Both are stored as text.
type SeverityText string

func (s *SeverityText) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty severity value")
	}
	if string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = SeverityText(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("severity_level must be a string or a number: %w", err)
	}
	*s = SeverityText(num.String())
	return nil
}

func (s SeverityText) String() string {
	return string(s)
}
