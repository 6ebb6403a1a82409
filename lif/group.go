// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"fmt"
	"math/rand"

	"github.com/emer/etable/etensor"
)

// StateDimNames are the dimension names for all (batch, neuron) shaped
// state tensors.
var StateDimNames = []string{"Batch", "Neuron"}

// GroupParams are all the construction-time parameters for a neuron
// group.  Immutable after construction: Update resolves the derived
// rate constants and Validate rejects inconsistent settings before any
// state is allocated.
type GroupParams struct {
	Dt      DtParams     `view:"inline" desc:"time constants for membrane potential integration"`
	Noise   NoiseParams  `view:"inline" desc:"Gaussian noise added to the effective input current"`
	Thresh  ThreshParams `view:"inline" desc:"static or adaptive firing threshold"`
	Spike   SpikeParams  `view:"inline" desc:"spike generation and post-spike reset"`
	RndSeed int64        `def:"1" desc:"seed for the group-owned random stream used by noise and stochastic firing -- two groups with the same seed and inputs produce bit-identical outputs"`
}

func (gp *GroupParams) Defaults() {
	gp.Dt.Defaults()
	gp.Noise.Defaults()
	gp.Thresh.Defaults()
	gp.Spike.Defaults()
	gp.RndSeed = 1
	gp.Update()
}

// Update must be called after any changes to parameters.
// The threshold decay and adaptation trace share the Thresh.Tau
// (tau_adapt) time constant, scaled by the integration timestep.
func (gp *GroupParams) Update() {
	gp.Dt.Update()
	gp.Noise.Update()
	gp.Thresh.Update()
	gp.Spike.Update()
	if gp.Thresh.Tau > 0 {
		gp.Thresh.AdaptDt = gp.Dt.Dt / gp.Thresh.Tau
		gp.Spike.TraceDt = gp.Dt.Dt / gp.Thresh.Tau
	}
}

// Validate returns the first configuration error found, wrapped with
// ErrConfig.  Called from NewNeuronGroup; all errors here are fatal.
func (gp *GroupParams) Validate() error {
	if err := gp.Dt.Validate(); err != nil {
		return err
	}
	if err := gp.Noise.Validate(); err != nil {
		return err
	}
	if err := gp.Thresh.Validate(); err != nil {
		return err
	}
	return gp.Spike.Validate()
}

// NeuronGroup simulates a population of leaky-integrate-and-fire
// neurons as a batched per-timestep state transition.  All state is
// float32, shaped (batch, neurons), and owned exclusively by the group:
// Step mutates it in place and is not safe for concurrent calls on the
// same instance.  Time-stepping across a sequence is the caller's
// responsibility: call ResetState once per fresh sequence, then Step
// once per timestep in order.
type NeuronGroup struct {
	Params GroupParams `view:"add-fields" desc:"construction-time parameters -- do not modify after construction"`

	Batch    int `inactive:"+" desc:"number of independent batch elements simulated in parallel"`
	NNeurons int `inactive:"+" desc:"number of neurons in the group"`

	// Mod transforms an external modulation signal into input-current
	// scaling factors.  Defaults to SigmoidTransform when nil is passed
	// at construction.  Only consulted when Step receives a signal.
	Mod Transform `view:"-"`

	Vm    *etensor.Float32 `view:"-" desc:"membrane potential per (batch, neuron) -- unconstrained in sign, reset to Spike.VmR upon firing"`
	Thr   *etensor.Float32 `view:"-" desc:"firing threshold per (batch, neuron) -- within Thresh.Range at all times when adaptation is enabled"`
	Trace *etensor.Float32 `view:"-" desc:"adaptation trace per (batch, neuron): moving average of recent spiking, feeding the dynamic spike probability"`

	// Spikes is the output of the most recent Step: exactly 0 or 1
	// per element, regardless of firing mode.
	Spikes *etensor.Float32 `view:"-"`

	// SpikeGrad holds the surrogate pseudo-derivative recorded for each
	// element on the most recent Step.  Only allocated in Surrogate mode.
	SpikeGrad *etensor.Float32 `view:"-"`

	// Rnd is the group-owned random stream, seeded from Params.RndSeed
	// at construction.  Never shared across groups.
	Rnd *rand.Rand `view:"-"`
}

// NewNeuronGroup constructs a group with the given batch size and
// neuron count, validated parameters, and optional neuromodulation
// transform (nil selects the default SigmoidTransform).  The state is
// fully initialized: potentials at the reset potential, thresholds at
// Thresh.Init, traces at zero.
func NewNeuronGroup(batch, neurons int, par GroupParams, mod Transform) (*NeuronGroup, error) {
	if batch < 1 || neurons < 1 {
		return nil, fmt.Errorf("%w: batch and neurons must be >= 1, got: %d, %d", ErrConfig, batch, neurons)
	}
	par.Update()
	if err := par.Validate(); err != nil {
		return nil, err
	}
	if mod == nil {
		mod = NewSigmoidTransform()
	}
	shp := []int{batch, neurons}
	ng := &NeuronGroup{
		Params:   par,
		Batch:    batch,
		NNeurons: neurons,
		Mod:      mod,
		Vm:       etensor.NewFloat32(shp, nil, StateDimNames),
		Thr:      etensor.NewFloat32(shp, nil, StateDimNames),
		Trace:    etensor.NewFloat32(shp, nil, StateDimNames),
		Spikes:   etensor.NewFloat32(shp, nil, StateDimNames),
		Rnd:      rand.New(rand.NewSource(par.RndSeed)),
	}
	if par.Spike.Mode == Surrogate {
		ng.SpikeGrad = etensor.NewFloat32(shp, nil, StateDimNames)
	}
	ng.InitState()
	return ng, nil
}

// InitState fully reinitializes the group state: potentials to the
// reset potential, thresholds to Thresh.Init, adaptation traces to
// zero.  Called at construction.
func (ng *NeuronGroup) InitState() {
	for i := range ng.Vm.Values {
		ng.Vm.Values[i] = ng.Params.Spike.VmR
		ng.Thr.Values[i] = ng.Params.Thresh.Init
		ng.Trace.Values[i] = 0
		ng.Spikes.Values[i] = 0
	}
	if ng.SpikeGrad != nil {
		ng.SpikeGrad.SetZeros()
	}
}

// ResetState resets the membrane potentials and adaptation traces for
// a fresh input sequence, leaving the configuration and any adapted
// thresholds in place.  Must be called once before simulating a new
// sequence; idempotent.
func (ng *NeuronGroup) ResetState() {
	for i := range ng.Vm.Values {
		ng.Vm.Values[i] = ng.Params.Spike.VmR
		ng.Trace.Values[i] = 0
	}
}

// Step advances the group one timestep.  in must be shaped exactly
// (Batch, NNeurons).  mod, if non-nil, is an external modulation signal
// broadcastable to that shape (a single value, a 1-D tensor of one
// value per neuron, or the full shape); it is passed through the Mod
// transform and the
// resulting factor scales the raw input current.  Returns a fresh
// binary spike tensor of the same shape.  On a shape error no state
// (including the random stream) has been touched.
func (ng *NeuronGroup) Step(in *etensor.Float32, mod etensor.Tensor) (*etensor.Float32, error) {
	if err := ng.checkInput(in); err != nil {
		return nil, err
	}
	if err := ng.checkMod(mod); err != nil {
		return nil, err
	}
	nn := ng.NNeurons
	par := &ng.Params
	out := etensor.NewFloat32([]int{ng.Batch, nn}, nil, StateDimNames)

	vm := ng.Vm.Values
	thr := ng.Thr.Values
	trc := ng.Trace.Values

	for bi := 0; bi < ng.Batch; bi++ {
		for ni := 0; ni < nn; ni++ {
			i := bi*nn + ni
			ieff := in.Values[i]
			if mod != nil {
				ieff *= ng.Mod.Factor(modSig(mod, ni, i))
			}
			ieff += par.Noise.Gen(ng.Rnd)

			v := par.Dt.VmFmI(vm[i], ieff, par.Spike.VmR)
			delta := v - thr[i]

			var spk float32
			switch par.Spike.Mode {
			case Stochastic:
				p := par.Spike.SpikeProb(delta, trc[i])
				if float32(ng.Rnd.Float64()) < p {
					spk = 1
				}
			default: // Deterministic and Surrogate share the hard threshold
				if delta >= 0 {
					spk = 1
				}
			}
			if par.Spike.Mode == Surrogate {
				ng.SpikeGrad.Values[i] = par.Spike.Grad.Deriv(delta)
			}
			if spk > 0 {
				v = par.Spike.VmR
			}
			vm[i] = v
			thr[i] = par.Thresh.ThrFmSpike(thr[i], spk)
			trc[i] = par.Spike.TraceFmSpike(trc[i], spk)
			out.Values[i] = spk
		}
	}
	ng.Spikes = out
	return out, nil
}

// checkInput validates the raw input current tensor against the
// configured shape.
func (ng *NeuronGroup) checkInput(in *etensor.Float32) error {
	if in == nil {
		return fmt.Errorf("lif: nil input tensor")
	}
	if in.NumDims() != 2 || in.Dim(0) != ng.Batch || in.Dim(1) != ng.NNeurons {
		got := make([]int, in.NumDims())
		for d := range got {
			got[d] = in.Dim(d)
		}
		return &ShapeError{What: "input", Expected: []int{ng.Batch, ng.NNeurons}, Got: got}
	}
	return nil
}

// checkMod validates that the modulation signal, if present, is a
// numeric tensor broadcastable to (Batch, NNeurons): a single value,
// a 1-D tensor with one value per neuron, or the full (Batch, NNeurons)
// shape.  Matching on dims rather than flattened length, so that a
// transposed full tensor is rejected instead of read in the wrong
// orientation.
func (ng *NeuronGroup) checkMod(mod etensor.Tensor) error {
	if mod == nil {
		return nil
	}
	if _, isStr := mod.(*etensor.String); isStr {
		return fmt.Errorf("lif: modulation tensor must be numeric, got string tensor")
	}
	switch {
	case mod.Len() == 1:
		return nil
	case mod.NumDims() == 1 && mod.Dim(0) == ng.NNeurons:
		return nil
	case mod.NumDims() == 2 && mod.Dim(0) == ng.Batch && mod.Dim(1) == ng.NNeurons:
		return nil
	}
	got := make([]int, mod.NumDims())
	for d := range got {
		got[d] = mod.Dim(d)
	}
	return &ShapeError{What: "modulation", Expected: []int{ng.Batch, ng.NNeurons}, Got: got}
}

// modSig reads the modulation signal for element i (neuron ni),
// broadcasting scalar and 1-D per-neuron signals as checkMod allows.
func modSig(mod etensor.Tensor, ni, i int) float32 {
	switch {
	case mod.Len() == 1:
		return float32(mod.FloatVal1D(0))
	case mod.NumDims() == 1:
		return float32(mod.FloatVal1D(ni))
	default:
		return float32(mod.FloatVal1D(i))
	}
}
