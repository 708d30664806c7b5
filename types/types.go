// Package types defines the data structures used in the ID codec service.
package types

// EncodeRequest represents the request structure for encoding numbers into
// an identifier.
type EncodeRequest struct {
	Numbers []uint64 `json:"numbers" validate:"required,min=1"`
}

// IDResponse represents the response structure for encode and decode
// operations: the identifier together with the numbers it represents.
type IDResponse struct {
	ID      string   `json:"id"`
	Numbers []uint64 `json:"numbers"`
}
