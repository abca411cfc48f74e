package validator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reviewer/pkg/validator"
)

func newProductRegistry(t *testing.T) *validator.Registry {
	t.Helper()

	reg := validator.NewRegistry()
	validator.Register(reg,
		validator.MustNew("product.create", customMessages),
		validator.MustNew("product.create.duplicate", customMessages),
	)
	return reg
}

func TestRegistry_Validate(t *testing.T) {
	t.Parallel()

	reg := newProductRegistry(t)
	want := validator.Failures{
		{Field: "Name", Code: "NotEmpty", Message: "This my custom name error"},
		{Field: "Price", Code: "GreaterThan", Message: "This my custom price error"},
	}

	t.Run("value instance", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, want, reg.Validate(product{Price: 5}).Failures)
	})

	t.Run("pointer instance", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, want, reg.Validate(&product{Price: 5}).Failures)
	})

	t.Run("valid instance", func(t *testing.T) {
		t.Parallel()
		assert.True(t, reg.Validate(&product{Name: "Widget", Price: 15}).IsValid())
	})

	t.Run("nil instance is valid", func(t *testing.T) {
		t.Parallel()
		assert.True(t, reg.Validate(nil).IsValid())
		var p *product
		assert.True(t, reg.Validate(p).IsValid())
	})

	t.Run("unregistered type is valid", func(t *testing.T) {
		t.Parallel()
		assert.True(t, reg.Validate(stock{}).IsValid())
		assert.True(t, reg.Validate("text").IsValid())
	})

	t.Run("nil registry is valid", func(t *testing.T) {
		t.Parallel()
		var empty *validator.Registry
		assert.True(t, empty.Validate(product{}).IsValid())
	})
}

func TestRegistry_DistinctFailuresAcrossValidators(t *testing.T) {
	t.Parallel()

	reg := validator.NewRegistry()
	validator.Register(reg, validator.MustNew("product.create", customMessages))
	validator.Register(reg, validator.MustNew("product.name", func(r *validator.Rules[product]) {
		validator.String(r, productName).MinLength(3)
	}))

	res := reg.Validate(product{Name: "ab", Price: 50})
	assert.Equal(t, validator.Failures{
		{Field: "Name", Code: "MinLength", Message: "'Name' must be at least 3 characters long."},
	}, res.Failures)

	res = reg.Validate(product{Price: 50})
	assert.Equal(t, []string{"NotEmpty", "MinLength"}, res.Failures.Codes("Name"))
}

func TestRegistry_ZeroValue(t *testing.T) {
	t.Parallel()

	var reg validator.Registry
	assert.True(t, reg.Validate(product{}).IsValid())
	assert.Empty(t, reg.Describe())

	require.NotPanics(t, func() {
		validator.Register(&reg, validator.MustNew("product.create", customMessages))
	})
	assert.Equal(t, []string{"product.create"}, reg.Names(product{}))
	assert.Len(t, reg.Validate(product{Price: 5}).Failures, 2)
}

func TestRegistry_Names(t *testing.T) {
	t.Parallel()

	reg := newProductRegistry(t)

	assert.Equal(t, []string{"product.create", "product.create.duplicate"}, reg.Names(product{}))
	assert.Equal(t, []string{"product.create", "product.create.duplicate"}, reg.Names(&product{}))
	assert.Empty(t, reg.Names(stock{}))
	assert.Empty(t, reg.Names(nil))
}

func TestRegistry_Describe(t *testing.T) {
	t.Parallel()

	reg := newProductRegistry(t)
	validator.Register(reg, validator.MustNew("stock", func(r *validator.Rules[stock]) {
		validator.Number(r, stockQuantity).GreaterThanOrEqual(0)
	}))

	desc := reg.Describe()
	require.Len(t, desc, 2)

	products := desc["validator_test.product"]
	require.Len(t, products, 2)
	assert.Equal(t, "product.create", products[0].Name)
	assert.Equal(t, []validator.RuleInfo{
		{Field: "Name", Code: "NotEmpty", Message: "This my custom name error"},
		{Field: "Price", Code: "GreaterThan", Message: "This my custom price error"},
	}, products[0].Rules)

	stocks := desc["validator_test.stock"]
	require.Len(t, stocks, 1)
	assert.Equal(t, "GreaterThanOrEqual", stocks[0].Rules[0].Code)
}

func TestRegister_Panics(t *testing.T) {
	t.Parallel()

	t.Run("nil registry", func(t *testing.T) {
		assert.Panics(t, func() {
			validator.Register(nil, validator.MustNew("product.create", customMessages))
		})
	})

	t.Run("nil validator", func(t *testing.T) {
		reg := validator.NewRegistry()
		assert.Panics(t, func() {
			validator.Register[product](reg, nil)
		})
		assert.Empty(t, reg.Names(product{}), "nothing is registered on failure")
	})
}

func TestRegistry_ConcurrentValidate(t *testing.T) {
	t.Parallel()

	reg := newProductRegistry(t)

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res := reg.Validate(&product{Name: "Widget", Price: float64(i)})
			assert.Equal(t, i <= 10, !res.IsValid())
		}()
	}
	wg.Wait()
}
