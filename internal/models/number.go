package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// RoundedInt is an integer filled from model output. It accepts decimals
// and numeric strings and rounds them half away from zero.
type RoundedInt int

func (n *RoundedInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		var s string
		if json.Unmarshal(data, &s) != nil {
			return fmt.Errorf("invalid number %s", data)
		}
		if f, err = strconv.ParseFloat(s, 64); err != nil {
			return fmt.Errorf("invalid number %q", s)
		}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid number %s", data)
	}

	*n = RoundedInt(math.Round(f))
	return nil
}
