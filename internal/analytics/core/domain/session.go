package domain

import "time"

type PhotoViewEvent struct {
	PhotoID    string
	PhotoTitle string
	Timestamp  time.Time
}

// Session is a client-declared logical visit. It never expires.
type Session struct {
	ID           string
	ClientID     string
	StartTime    time.Time
	PageViews    int64
	PhotosViewed []PhotoViewEvent // arrival order
}
