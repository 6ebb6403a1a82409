// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif implements batched leaky-integrate-and-fire (LIF) neuron
group simulation as a per-timestep state transition function.

A NeuronGroup owns all of its state -- membrane potentials, firing
thresholds, adaptation traces, and a seeded random stream -- shaped
(batch, neuron) as float32 tensors.  The surrounding sequence-processing
adapter calls ResetState once per sequence and Step once per timestep,
in order; each Step depends on the state mutated by the previous one,
so steps must not be reordered or parallelized within a group.
Operations are data-parallel across the batch and neuron dimensions
within a step, and complete in time proportional to batch * neurons.

Per step: noise and neuromodulation produce an effective input current,
forward-Euler integration updates the membrane potential, the spike
generator evaluates it against the current threshold (resetting fired
potentials), and the threshold controller adapts thresholds from the
spike outcomes.  Outputs are strictly binary regardless of firing mode.
*/
package lif
