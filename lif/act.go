// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"fmt"
	"math/rand"
)

///////////////////////////////////////////////////////////////////////
//  act.go contains membrane integration and noise params

//////////////////////////////////////////////////////////////////////////////////////
//  DtParams

// DtParams are the time constants for forward-Euler integration of the
// leaky membrane potential:
//
//	Vm += (Dt / Tau) * (-(Vm - VmR) + Ieff)
//
// All times are in units of the simulation timestep (typically 1 msec).
type DtParams struct {
	Dt   float32 `def:"1" min:"0" desc:"simulation timestep for updating the membrane potential"`
	Tau  float32 `def:"20" min:"1" desc:"membrane time constant, controlling the rate of decay toward the resting potential (roughly, how long it takes for the potential to change significantly -- 1.4x the half-life)"`
	VmDt float32 `view:"-" json:"-" xml:"-" desc:"integration rate = Dt / Tau"`
}

func (dp *DtParams) Update() {
	dp.VmDt = dp.Dt / dp.Tau
}

func (dp *DtParams) Defaults() {
	dp.Dt = 1
	dp.Tau = 20
	dp.Update()
}

// Validate returns an error for non-positive time constants.
func (dp *DtParams) Validate() error {
	if dp.Dt <= 0 {
		return fmt.Errorf("%w: Dt must be > 0, got: %g", ErrConfig, dp.Dt)
	}
	if dp.Tau <= 0 {
		return fmt.Errorf("%w: Tau must be > 0, got: %g", ErrConfig, dp.Tau)
	}
	return nil
}

// VmFmI integrates the membrane potential one timestep from the
// effective input current ieff, leaking toward the reset potential vmR.
// First-order forward Euler is sufficient for Dt on the order of 1
// and Tau on the order of tens.
func (dp *DtParams) VmFmI(vm, ieff, vmR float32) float32 {
	return vm + dp.VmDt*(ieff-(vm-vmR))
}

//////////////////////////////////////////////////////////////////////////////////////
//  NoiseParams

// NoiseParams parameterize the per-element Gaussian perturbation added
// to the effective input current on every step.
type NoiseParams struct {
	Std float32 `def:"0.1" min:"0" desc:"standard deviation of the zero-mean Gaussian noise added to the effective input current each step -- 0 disables noise entirely"`
}

func (np *NoiseParams) Update() {
}

func (np *NoiseParams) Defaults() {
	np.Std = 0.1
}

// Validate returns an error for a negative standard deviation.
func (np *NoiseParams) Validate() error {
	if np.Std < 0 {
		return fmt.Errorf("%w: Noise.Std must be >= 0, got: %g", ErrConfig, np.Std)
	}
	return nil
}

// Gen returns one noise sample drawn from the given random stream.
// Std == 0 returns 0 without consuming from the stream, so that
// deterministic-mode runs remain exactly reproducible regardless of
// how many elements are simulated.
func (np *NoiseParams) Gen(rnd *rand.Rand) float32 {
	if np.Std == 0 {
		return 0
	}
	return np.Std * float32(rnd.NormFloat64())
}
