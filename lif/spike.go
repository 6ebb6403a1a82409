// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"fmt"

	"github.com/goki/ki/kit"
	"github.com/goki/mat32"

	"github.com/lifsim/lif/surrogate"
)

// FiringModes are the mutually exclusive forward spike-generation
// behaviors, selected at construction.
type FiringModes int

//go:generate stringer -type=FiringModes

var KiT_FiringModes = kit.Enums.AddEnum(FiringModesN, kit.NotBitFlag, nil)

func (ev FiringModes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *FiringModes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The firing modes
const (
	// Deterministic fires iff Vm >= threshold.
	Deterministic FiringModes = iota

	// Stochastic fires with probability sigmoid(alpha * (Vm - threshold)),
	// one Bernoulli draw per neuron per batch element per step.
	Stochastic

	// Surrogate produces the same hard-threshold forward spikes as
	// Deterministic, and additionally records a smooth pseudo-derivative
	// per element (see the surrogate package) for use in place of the
	// true discontinuous derivative during backward differentiation.
	// Only the gradient contract differs -- the visible output is
	// identical to Deterministic.
	Surrogate

	FiringModesN
)

// SpikeParams control spike generation and the post-spike reset.
type SpikeParams struct {
	Mode      FiringModes      `desc:"forward spike-generation behavior, fixed at construction"`
	VmR       float32          `def:"0" desc:"reset potential: Vm is set to this immediately upon firing, within the same step, and the membrane leaks toward it between spikes"`
	Alpha     float32          `viewif:"Mode=Stochastic" def:"1" min:"0" desc:"gain on (Vm - threshold) in the stochastic firing probability"`
	DynAlpha  bool             `viewif:"Mode=Stochastic" desc:"allow dynamic spike probability: modulate the gain each step from BaseAlpha and the adaptation trace, so that higher recent activity flattens the probability curve"`
	BaseAlpha float32          `viewif:"DynAlpha" def:"2" min:"0" desc:"base gain for the dynamic probability curve, divided by (1 + trace)"`
	Grad      surrogate.Params `viewif:"Mode=Surrogate" view:"inline" desc:"surrogate pseudo-derivative recorded per element in Surrogate mode"`

	TraceDt float32 `view:"-" json:"-" xml:"-" desc:"adaptation trace integration rate = simulation Dt / Thresh.Tau -- set from the group-level Update"`
}

func (sp *SpikeParams) Update() {
	sp.Grad.Update()
}

func (sp *SpikeParams) Defaults() {
	sp.Mode = Stochastic
	sp.VmR = 0
	sp.Alpha = 1
	sp.DynAlpha = false
	sp.BaseAlpha = 2
	sp.Grad.Defaults()
}

// Validate returns an error for an unknown firing mode or non-positive
// gains, including an unknown surrogate kind when in Surrogate mode.
func (sp *SpikeParams) Validate() error {
	if sp.Mode < 0 || sp.Mode >= FiringModesN {
		return fmt.Errorf("%w: unknown firing mode: %d", ErrConfig, int(sp.Mode))
	}
	if sp.Alpha <= 0 {
		return fmt.Errorf("%w: Spike.Alpha must be > 0, got: %g", ErrConfig, sp.Alpha)
	}
	if sp.DynAlpha && sp.BaseAlpha <= 0 {
		return fmt.Errorf("%w: Spike.BaseAlpha must be > 0, got: %g", ErrConfig, sp.BaseAlpha)
	}
	if sp.Mode == Surrogate {
		if err := sp.Grad.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrConfig, err)
		}
	}
	return nil
}

// SpikeProb returns the stochastic firing probability for threshold
// distance delta = Vm - Thr, given the neuron's adaptation trace.
func (sp *SpikeParams) SpikeProb(delta, trace float32) float32 {
	alpha := sp.Alpha
	if sp.DynAlpha {
		alpha = sp.BaseAlpha / (1 + trace)
	}
	return sigmoid(alpha * delta)
}

// TraceFmSpike returns the updated adaptation trace given this step's
// spike outcome: an exponential moving average of spiking with time
// constant Thresh.Tau.
func (sp *SpikeParams) TraceFmSpike(trace, spike float32) float32 {
	return trace + sp.TraceDt*(spike-trace)
}

// sigmoid is the logistic function using the fast exponential --
// accurate to well below the noise floor of these dynamics.
func sigmoid(x float32) float32 {
	return 1 / (1 + mat32.FastExp(-x))
}
