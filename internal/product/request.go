// Package product serves the product creation endpoints and owns the
// validators for their request shape.
package product

// CreateRequest is the body of a product creation request.
type CreateRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
