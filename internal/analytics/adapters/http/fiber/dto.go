package fiber

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// FlexibleID accepts a JSON string or number; browsers send photo ids as either.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*f = FlexibleID(strconv.FormatInt(i, 10))
		return nil
	}
	*f = FlexibleID(n.String())
	return nil
}

type TrackPageViewRequest struct {
	Page      string `json:"page" example:"/"`
	SessionID string `json:"sessionId" example:"session-1718700000-abc"`
}

type TrackPhotoViewRequest struct {
	PhotoID    FlexibleID `json:"photoId" swaggertype:"string" example:"3"`
	PhotoTitle string     `json:"photoTitle" example:"Sahara Desert Dunes"`
	SessionID  string     `json:"sessionId" example:"session-1718700000-abc"`
}

type TrackResponse struct {
	Success bool `json:"success" example:"true"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty" example:"failed to read counters"`
}
