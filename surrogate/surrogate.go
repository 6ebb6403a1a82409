// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package surrogate provides the surrogate-gradient pseudo-derivative
functions for hard-threshold spike generation.

The forward spike decision is a Heaviside step of the membrane potential
relative to the firing threshold, whose true derivative is zero almost
everywhere and undefined at the threshold.  During backward
differentiation a smooth surrogate is used instead, evaluated at the
pre-reset distance to threshold.  The set of surrogates is a closed
enumeration resolved once at construction -- unknown kinds are a
construction-time error, not a runtime lookup.
*/
package surrogate

import (
	"fmt"
	"strings"

	"github.com/chewxy/math32"
	"github.com/goki/ki/kit"
	"github.com/goki/mat32"
)

// Kinds are the different surrogate pseudo-derivative functions.
type Kinds int

//go:generate stringer -type=Kinds

var KiT_Kinds = kit.Enums.AddEnum(KindsN, kit.NotBitFlag, nil)

func (ev Kinds) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Kinds) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The surrogate pseudo-derivative kinds
const (
	// Heaviside is the standard surrogate for the Heaviside step:
	// the derivative of the fast sigmoid x/(1+|x|) with slope alpha,
	// i.e., 1 / (1 + alpha*|x|)^2.  Maximum value 1 at x = 0.
	Heaviside Kinds = iota

	// Sigmoid is the derivative of the logistic sigmoid with gain alpha:
	// alpha * s * (1-s) where s = sigmoid(alpha*x).
	Sigmoid

	// PiecewiseLinear is a triangular window around the threshold:
	// max(0, 1 - alpha*|x|).  Cheapest, compactly supported.
	PiecewiseLinear

	KindsN
)

// KindByName returns the Kinds value whose name matches nm
// (case-insensitive), for resolving string-configured surrogates
// at construction time.
func KindByName(nm string) (Kinds, error) {
	for k := Kinds(0); k < KindsN; k++ {
		if strings.EqualFold(k.String(), nm) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("surrogate: unknown kind: %q", nm)
}

// Params specifies the surrogate pseudo-derivative function and its slope.
// Call Update after any changes to resolve the concrete function,
// and Validate at construction to reject unknown kinds.
type Params struct {
	Kind  Kinds   `desc:"which pseudo-derivative function to use in place of the hard-threshold derivative"`
	Alpha float32 `def:"1" min:"0" desc:"slope / steepness of the pseudo-derivative -- larger values concentrate the gradient closer to the threshold"`

	fun func(x, alpha float32) float32
}

func (sp *Params) Defaults() {
	sp.Kind = Heaviside
	sp.Alpha = 1
	sp.Update()
}

// Update resolves Kind into the concrete derivative function.
// Out-of-range kinds resolve to nil -- Validate catches those.
func (sp *Params) Update() {
	switch sp.Kind {
	case Heaviside:
		sp.fun = FastSigmoidDeriv
	case Sigmoid:
		sp.fun = SigmoidDeriv
	case PiecewiseLinear:
		sp.fun = TriangleDeriv
	default:
		sp.fun = nil
	}
}

// Validate returns an error if Kind is not a known surrogate or
// Alpha is not positive.
func (sp *Params) Validate() error {
	if sp.Kind < 0 || sp.Kind >= KindsN {
		return fmt.Errorf("surrogate: unknown kind: %d", int(sp.Kind))
	}
	if sp.Alpha <= 0 {
		return fmt.Errorf("surrogate: Alpha must be > 0, got: %g", sp.Alpha)
	}
	return nil
}

// Deriv returns the pseudo-derivative at x = Vm - Thr using the
// resolved function.  Update must have been called since Kind changed.
func (sp *Params) Deriv(x float32) float32 {
	return sp.fun(x, sp.Alpha)
}

// FastSigmoidDeriv is the derivative of the fast sigmoid x/(1+|x|)
// with slope alpha: 1 / (1 + alpha*|x|)^2.
func FastSigmoidDeriv(x, alpha float32) float32 {
	d := 1 + alpha*math32.Abs(x)
	return 1 / (d * d)
}

// SigmoidDeriv is the derivative of the logistic sigmoid with gain alpha:
// alpha * s * (1-s), s = 1/(1+exp(-alpha*x)).
func SigmoidDeriv(x, alpha float32) float32 {
	s := 1 / (1 + mat32.FastExp(-alpha*x))
	return alpha * s * (1 - s)
}

// TriangleDeriv is a triangular window around the threshold:
// max(0, 1 - alpha*|x|).
func TriangleDeriv(x, alpha float32) float32 {
	return math32.Max(0, 1-alpha*math32.Abs(x))
}
