// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surrogate

import (
	"testing"

	"github.com/chewxy/math32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-6)

func TestFastSigmoidDeriv(t *testing.T) {
	sp := Params{}
	sp.Defaults()

	tstx := []float32{-2, -1, -0.5, 0, 0.5, 1, 2}
	cory := []float32{1.0 / 9.0, 0.25, 1.0 / 2.25, 1, 1.0 / 2.25, 0.25, 1.0 / 9.0}

	for i := range tstx {
		y := sp.Deriv(tstx[i])
		dif := math32.Abs(y - cory[i])
		if dif > difTol {
			t.Errorf("deriv err: idx: %v, x: %v, y: %v, cor y: %v, dif: %v\n", i, tstx[i], y, cory[i], dif)
		}
	}
}

func TestDerivProperties(t *testing.T) {
	for k := Kinds(0); k < KindsN; k++ {
		sp := Params{Kind: k, Alpha: 2}
		sp.Update()
		if err := sp.Validate(); err != nil {
			t.Errorf("kind %v should validate: %v\n", k, err)
		}
		peak := sp.Deriv(0)
		if peak <= 0 {
			t.Errorf("kind %v: peak at 0 must be > 0, got %v\n", k, peak)
		}
		for _, x := range []float32{0.1, 0.5, 1, 3, 10} {
			yp := sp.Deriv(x)
			yn := sp.Deriv(-x)
			if math32.Abs(yp-yn) > 1e-4 {
				t.Errorf("kind %v: not symmetric at x=%v: %v vs %v\n", k, x, yp, yn)
			}
			if yp < 0 {
				t.Errorf("kind %v: negative deriv at x=%v: %v\n", k, x, yp)
			}
			if yp > peak+1e-4 {
				t.Errorf("kind %v: deriv at x=%v exceeds peak: %v > %v\n", k, x, yp, peak)
			}
		}
	}
}

func TestValidate(t *testing.T) {
	sp := Params{Kind: KindsN, Alpha: 1}
	sp.Update()
	if err := sp.Validate(); err == nil {
		t.Errorf("out-of-range kind must not validate\n")
	}
	sp = Params{Kind: Heaviside, Alpha: 0}
	if err := sp.Validate(); err == nil {
		t.Errorf("zero alpha must not validate\n")
	}
}

func TestKindByName(t *testing.T) {
	k, err := KindByName("heaviside")
	if err != nil || k != Heaviside {
		t.Errorf("heaviside lookup failed: %v, %v\n", k, err)
	}
	k, err = KindByName("PiecewiseLinear")
	if err != nil || k != PiecewiseLinear {
		t.Errorf("PiecewiseLinear lookup failed: %v, %v\n", k, err)
	}
	if _, err = KindByName("heavyside"); err == nil {
		t.Errorf("unknown name must error\n")
	}
}
