package fiber

type PhotoResponse struct {
	ID          int    `json:"id" example:"1"`
	Title       string `json:"title" example:"Machu Picchu Sunrise"`
	Location    string `json:"location" example:"Peru"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Explorer    string `json:"explorer" example:"Adventure Seeker"`
	Date        string `json:"date" example:"2024-01-15"`
	Elevation   string `json:"elevation,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	Humidity    string `json:"humidity,omitempty"`
	Depth       string `json:"depth,omitempty"`
}

// NotFoundResponse keeps the exact body the gallery frontend expects.
type NotFoundResponse struct {
	Error string `json:"error" example:"Photo not found"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"internal_server_error"`
	Message string `json:"message,omitempty"`
}
