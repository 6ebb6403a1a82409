// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/minmax"
)

// Transform maps an externally supplied neuromodulation signal value
// (e.g., a reward or error signal) into a per-neuron excitability
// factor.  Implementations must be pure: deterministic given the same
// input, with no hidden state, so that the group's own state fully
// determines reproducibility.  The factor multiplicatively scales the
// raw input current, so 1 is the identity.
type Transform interface {
	Factor(sig float32) float32
}

// SigmoidTransform is the default neuromodulation transform: a logistic
// squash of the signal, bounded strictly inside (0, 1).  Strong positive
// signals push the factor toward 1 (full drive), strong negative
// signals suppress the input current toward 0.
type SigmoidTransform struct {
	Gain  float32    `def:"1" desc:"gain on the signal before squashing"`
	Range minmax.F32 `desc:"output clamp range -- strictly inside (0,1) so the factor never fully silences or saturates even for extreme signals"`
}

func (st *SigmoidTransform) Defaults() {
	st.Gain = 1
	st.Range.Set(1.0e-6, 1-1.0e-6)
}

// NewSigmoidTransform returns the default transform with default
// parameters, used when no custom Transform is injected at construction.
func NewSigmoidTransform() *SigmoidTransform {
	st := &SigmoidTransform{}
	st.Defaults()
	return st
}

func (st *SigmoidTransform) Factor(sig float32) float32 {
	f := 1 / (1 + math32.Exp(-st.Gain*sig))
	return st.Range.ClipVal(f)
}
