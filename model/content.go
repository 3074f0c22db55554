package model

import "time"

// Content is an editable key/value text block for the public pages.
type Content struct {
	ID      int32     `json:"id"`
	Key     string    `json:"key"`
	Value   string    `json:"value"`
	Updated time.Time `json:"updated"`
}
