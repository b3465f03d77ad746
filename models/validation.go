package models

// MissingParameters is the 400 payload of a params validator listing every
// declared path parameter absent from the request.
type MissingParameters struct {
	MissingParameters []string `json:"missingParameters"`
}
