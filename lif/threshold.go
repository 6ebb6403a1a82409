// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"fmt"

	"github.com/emer/etable/minmax"
)

// ThreshParams control the firing threshold for each neuron.
// In static mode the threshold is constant at Init for the lifetime of
// the group.  In adaptive mode every spike raises the neuron's threshold
// by Eta, and on non-spiking steps the threshold decays back toward the
// Init baseline with time constant Tau -- a refractory-like adaptation.
// The result is clamped to Range every step regardless of branch.
type ThreshParams struct {
	Init  float32    `def:"1" desc:"initial firing threshold V_th, and the baseline that adaptive thresholds decay back toward"`
	Adapt bool       `def:"true" desc:"enable adaptive thresholding -- otherwise the threshold is constant at Init"`
	Eta   float32    `viewif:"Adapt" def:"0.1" min:"0" desc:"adaptation rate: how much each spike raises its neuron's threshold"`
	Tau   float32    `viewif:"Adapt" def:"20" min:"1" desc:"time constant for threshold decay back to Init after spiking stops, and for the adaptation trace driving dynamic spike probability (tau_adapt)"`
	Range minmax.F32 `viewif:"Adapt" desc:"allowed threshold range -- adaptive thresholds are clamped to this every step"`

	AdaptDt float32 `view:"-" json:"-" xml:"-" desc:"decay rate = simulation Dt / Tau -- set from the group-level Update"`
}

func (tp *ThreshParams) Update() {
}

func (tp *ThreshParams) Defaults() {
	tp.Init = 1
	tp.Adapt = true
	tp.Eta = 0.1
	tp.Tau = 20
	tp.Range.Set(0.5, 2)
}

// Validate returns an error for inverted bounds or a non-positive
// decay time constant.
func (tp *ThreshParams) Validate() error {
	if tp.Range.Min > tp.Range.Max {
		return fmt.Errorf("%w: Thresh.Range inverted: min %g > max %g", ErrConfig, tp.Range.Min, tp.Range.Max)
	}
	if tp.Tau <= 0 {
		return fmt.Errorf("%w: Thresh.Tau must be > 0, got: %g", ErrConfig, tp.Tau)
	}
	if tp.Eta < 0 {
		return fmt.Errorf("%w: Thresh.Eta must be >= 0, got: %g", ErrConfig, tp.Eta)
	}
	return nil
}

// ThrFmSpike returns the updated threshold given this step's spike
// outcome (0 or 1).  No-op in static mode.
func (tp *ThreshParams) ThrFmSpike(thr, spike float32) float32 {
	if !tp.Adapt {
		return thr
	}
	if spike > 0 {
		thr += tp.Eta
	} else {
		thr += tp.AdaptDt * (tp.Init - thr)
	}
	return tp.Range.ClipVal(thr)
}
