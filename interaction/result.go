// SPDX-License-Identifier: MIT

package interaction

import (
	"fmt"

	"github.com/katalvlaran/cosmors/matrix"
	"github.com/katalvlaran/cosmors/segment"
)

// Result owns the matrices of one Compute call.
type Result struct {
	Temperature float64
	Matrix      *matrix.Lower[float32]
	// Partials is nil unless contact statistics are enabled; index h matches
	// PartialNames for named entries.
	Partials     []*matrix.Lower[float64]
	PartialNames []string
}

// Partial returns the partial matrix called name.
func (r *Result) Partial(name string) (*matrix.Lower[float64], error) {
	for h, n := range r.PartialNames {
		if n == name && h < len(r.Partials) {
			return r.Partials[h], nil
		}
	}

	return nil, fmt.Errorf("%w %q", ErrUnknownPartial, name)
}

// Compute allocates zeroed matrices sized to c and runs Build on them.
// Ionic rows and columns of the returned matrices stay zero before any
// reference-state shift.
func (b *Builder) Compute(c *segment.Collection, temperature float64) (*Result, error) {
	if c == nil {
		return nil, ErrNilCollection
	}
	n := c.Len()
	a, err := matrix.NewLower[float32](n)
	if err != nil {
		return nil, err
	}
	res := &Result{Temperature: temperature, Matrix: a}
	if b.contactStatistics() {
		res.PartialNames = append([]string(nil), b.params.PartialInteractionMatrices...)
		res.Partials = make([]*matrix.Lower[float64], b.params.PartialCount())
		for h := range res.Partials {
			if res.Partials[h], err = matrix.NewLower[float64](n); err != nil {
				return nil, err
			}
		}
	}
	if err = b.Build(c, temperature, res.Matrix, res.Partials); err != nil {
		return nil, err
	}

	return res, nil
}
