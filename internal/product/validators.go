package product

import "github.com/dmitrymomot/reviewer/pkg/validator"

// MinPrice is the exclusive lower bound for CreateRequest.Price.
const MinPrice = 10

// CreateValidator and CreateValidatorDuplicate declare the same rules. Both
// are registered so the boundary's de-duplication is exercised on every
// rejected request.
var (
	CreateValidator          = validator.MustNew("product.create", defineCreate)
	CreateValidatorDuplicate = validator.MustNew("product.create_duplicate", defineCreate)
)

func defineCreate(r *validator.Rules[CreateRequest]) {
	validator.String(r, func(p *CreateRequest) *string { return &p.Name }).
		NotEmpty().WithMessage("This my custom name error")
	validator.Number(r, func(p *CreateRequest) *float64 { return &p.Price }).
		GreaterThan(MinPrice).WithMessage("This my custom price error")
}

// Register adds the product validators to reg.
func Register(reg *validator.Registry) {
	validator.Register(reg, CreateValidator, CreateValidatorDuplicate)
}
