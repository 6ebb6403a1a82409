// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/lifsim/lif/surrogate"
)

func TestSpikeProb(t *testing.T) {
	sp := SpikeParams{}
	sp.Defaults()
	sp.TraceDt = 0.05

	p := sp.SpikeProb(0, 0)
	if math32.Abs(p-0.5) > 1e-4 {
		t.Errorf("probability at threshold must be 0.5, got: %v\n", p)
	}
	// monotonic in the distance to threshold
	prev := float32(0)
	for _, d := range []float32{-5, -1, -0.1, 0, 0.1, 1, 5} {
		p = sp.SpikeProb(d, 0)
		if p <= 0 || p >= 1 {
			t.Errorf("probability must be in (0,1), got: %v at delta %v\n", p, d)
		}
		if p < prev {
			t.Errorf("probability not monotonic at delta %v: %v < %v\n", d, p, prev)
		}
		prev = p
	}
}

func TestSpikeProbDynAlpha(t *testing.T) {
	sp := SpikeParams{}
	sp.Defaults()
	sp.DynAlpha = true
	sp.BaseAlpha = 2
	sp.TraceDt = 0.05

	// higher recent activity flattens the curve: above threshold the
	// firing probability drops as the trace grows
	pLow := sp.SpikeProb(1, 0)
	pHigh := sp.SpikeProb(1, 1)
	if pHigh >= pLow {
		t.Errorf("trace must flatten the curve above threshold: %v >= %v\n", pHigh, pLow)
	}
	// and symmetric below threshold: suppressed neurons recover lift
	pLow = sp.SpikeProb(-1, 0)
	pHigh = sp.SpikeProb(-1, 1)
	if pHigh <= pLow {
		t.Errorf("trace must flatten the curve below threshold: %v <= %v\n", pHigh, pLow)
	}
}

func TestTraceFmSpike(t *testing.T) {
	sp := SpikeParams{}
	sp.Defaults()
	sp.TraceDt = 0.05

	trc := float32(0)
	trc = sp.TraceFmSpike(trc, 1)
	if math32.Abs(trc-0.05) > difTol {
		t.Errorf("trace after first spike: %v, expected 0.05\n", trc)
	}
	// saturates toward 1 under constant spiking, decays toward 0 without
	for i := 0; i < 500; i++ {
		trc = sp.TraceFmSpike(trc, 1)
	}
	if trc > 1 || trc < 0.99 {
		t.Errorf("trace must saturate toward 1, got: %v\n", trc)
	}
	for i := 0; i < 500; i++ {
		trc = sp.TraceFmSpike(trc, 0)
	}
	if trc < 0 || trc > 0.01 {
		t.Errorf("trace must decay toward 0, got: %v\n", trc)
	}
}

func TestSpikeValidate(t *testing.T) {
	sp := SpikeParams{}
	sp.Defaults()
	if err := sp.Validate(); err != nil {
		t.Errorf("defaults should validate: %v\n", err)
	}
	sp.Mode = FiringModesN
	if err := sp.Validate(); err == nil {
		t.Errorf("unknown firing mode must not validate\n")
	}
	sp.Defaults()
	sp.Mode = Surrogate
	sp.Grad.Kind = surrogate.KindsN
	if err := sp.Validate(); err == nil {
		t.Errorf("unknown surrogate kind must not validate\n")
	}
}
