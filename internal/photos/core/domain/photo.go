package domain

type Photo struct {
	ID          int
	Title       string
	Location    string
	Description string
	Image       string
	Explorer    string
	Date        string // YYYY-MM-DD

	// optional trivia, shown only for the photos that have it
	Elevation   string
	Temperature string
	Humidity    string
	Depth       string
}
