package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ReportID is the server's opaque report identifier.
// The backend may encode it as a JSON number or a string; it is kept as text.
type ReportID string

// UnmarshalJSON accepts both 42 and "42".
func (id *ReportID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ReportID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("report id: %w", err)
	}
	*id = ReportID(n.String())
	return nil
}

// MarshalJSON writes numeric ids as numbers so the value round-trips to the backend unchanged.
func (id ReportID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ReportID) String() string { return string(id) }

// Report is a single user-submitted message tied to a room code.
// Room, Content and Nickname arrive already HTML-escaped by the server.
type Report struct {
	ID       ReportID `json:"id"`
	Room     string   `json:"room"`
	Content  string   `json:"content"`
	Nickname string   `json:"nickname"`
	Likes    int      `json:"likes"`
}

// NewReport is the body of POST /report. The nickname is assigned server-side.
type NewReport struct {
	Room    string `json:"room"`
	Content string `json:"content"`
}

// LikeResult is the body of a successful POST /report/:id/like.
type LikeResult struct {
	Likes int `json:"likes"`
}
