package domain

// HTTPResponse is what the driver keeps of a response: status and body.
type HTTPResponse struct {
	Status int
	Body   []byte
}
