package shipment

import (
	"errors"
	"fmt"

	"tariff/internal/core/domain/model/kernel"
	"tariff/internal/pkg/errs"
	"tariff/internal/pkg/guard"
)

// PackMaxWeightGrams is the heaviest single package the carrier accepts.
const PackMaxWeightGrams int64 = 150_000

// ErrPackIsNotConstructed is returned when a Pack was not created via the
// NewPack constructor.
var ErrPackIsNotConstructed = errs.NewValueIsRequiredError(
	"pack must be created via NewPack constructor")

// Pack is a single package inside a shipment: a weight plus outer
// dimensions. The per-package weight cap applies here; the shipment total
// may exceed it.
type Pack struct { //nolint:recvcheck //using for validation
	weight     kernel.Weight
	dimensions kernel.OuterDimensions
	guard      guard.ConstructorGuard
}

// NewPack creates a Pack from a weight and outer dimensions. Both must be
// properly constructed, and the weight must not exceed PackMaxWeightGrams.
func NewPack(weight kernel.Weight, dimensions kernel.OuterDimensions) (Pack, error) {
	pack := Pack{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		pack.setWeight(weight),
		pack.setDimensions(dimensions),
	)
	if err != nil {
		return Pack{}, err
	}

	return pack, nil
}

// Validate checks that the Pack was created via its constructor.
func (p Pack) Validate() error {
	return p.guard.Validate(ErrPackIsNotConstructed)
}

// Weight returns the package weight.
func (p Pack) Weight() kernel.Weight {
	return p.weight
}

// Dimensions returns the package outer dimensions.
func (p Pack) Dimensions() kernel.OuterDimensions {
	return p.dimensions
}

// Volume returns the billable volume derived from the package dimensions.
func (p Pack) Volume() (kernel.Volume, error) {
	if err := p.Validate(); err != nil {
		return kernel.Volume{}, err
	}
	return p.dimensions.CalculateVolume()
}

// String implements fmt.Stringer.
func (p Pack) String() string {
	return fmt.Sprintf("pack %s %sx%sx%s",
		p.weight, p.dimensions.Length(), p.dimensions.Width(), p.dimensions.Height())
}

func (p *Pack) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if weight.Grams() > PackMaxWeightGrams {
		return errs.NewValueIsOutOfRangeError(
			"pack weight in grams", weight.Grams(), 0, PackMaxWeightGrams)
	}
	p.weight = weight
	return nil
}

func (p *Pack) setDimensions(dimensions kernel.OuterDimensions) error {
	if err := dimensions.Validate(); err != nil {
		return err
	}
	p.dimensions = dimensions
	return nil
}
