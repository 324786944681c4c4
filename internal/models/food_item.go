package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// FoodItem is a single food entry. CategoryID is an advisory reference:
// it may be null (uncategorized) or point at a category that no longer
// exists, which the grouped listing resolves to the uncategorized bucket.
type FoodItem struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	CategoryID  *int64    `json:"category_id"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// FoodItemWithCategory is a FoodItem joined with its category's display
// name for the flat listing. CategoryName is null when the item is
// uncategorized or its reference dangles.
type FoodItemWithCategory struct {
	FoodItem
	CategoryName *string `json:"category_name"`
}

// FlexID decodes an id that the browser client may submit either as a
// JSON number or as a string (the value of a <select> is always a
// string). An empty string or null decodes to the zero value; callers
// use *FlexID to distinguish absent from present.
type FlexID int64

func (f *FlexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) >= 2 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id %q", s)
		}
		*f = FlexID(n)
		return nil
	}
	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	*f = FlexID(n)
	return nil
}
