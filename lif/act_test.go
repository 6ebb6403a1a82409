// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-5)

func TestVmFmI(t *testing.T) {
	dp := DtParams{}
	dp.Defaults() // dt=1, tau=20 -> VmDt = 0.05

	// constant input current I=2 from V=0 with VmR=0:
	// V_n = 2 * (1 - 0.95^n)
	corvm := []float32{0.1, 0.195, 0.28525, 0.3709875, 0.45243812, 0.52981622, 0.60332541, 0.67315914}

	v := float32(0)
	for i := range corvm {
		v = dp.VmFmI(v, 2.0, 0)
		dif := math32.Abs(v - corvm[i])
		if dif > difTol {
			t.Errorf("vm err: idx: %v, vm: %v, corvm: %v, dif: %v\n", i, v, corvm[i], dif)
		}
	}
}

func TestDtValidate(t *testing.T) {
	dp := DtParams{}
	dp.Defaults()
	if err := dp.Validate(); err != nil {
		t.Errorf("defaults should validate: %v\n", err)
	}
	dp.Tau = 0
	if err := dp.Validate(); err == nil {
		t.Errorf("zero tau must not validate\n")
	}
	dp.Defaults()
	dp.Dt = -1
	if err := dp.Validate(); err == nil {
		t.Errorf("negative dt must not validate\n")
	}
}

func TestNoiseZeroFastPath(t *testing.T) {
	np := NoiseParams{}
	np.Defaults()
	np.Std = 0

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 10; i++ {
		if ns := np.Gen(rnd); ns != 0 {
			t.Errorf("zero std must generate exactly 0, got: %v\n", ns)
		}
	}
	// the stream must be untouched by the fast path
	ref := rand.New(rand.NewSource(7))
	if rnd.Float64() != ref.Float64() {
		t.Errorf("zero-std noise consumed from the random stream\n")
	}
}

func TestNoiseStats(t *testing.T) {
	np := NoiseParams{Std: 0.5}
	rnd := rand.New(rand.NewSource(3))

	n := 20000
	var sum, sumSq float32
	for i := 0; i < n; i++ {
		v := np.Gen(rnd)
		sum += v
		sumSq += v * v
	}
	mean := sum / float32(n)
	sd := math32.Sqrt(sumSq/float32(n) - mean*mean)
	if math32.Abs(mean) > 0.02 {
		t.Errorf("noise mean too far from 0: %v\n", mean)
	}
	if math32.Abs(sd-0.5) > 0.02 {
		t.Errorf("noise std too far from 0.5: %v\n", sd)
	}
}
