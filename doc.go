// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package lif is the overall repository for the leaky-integrate-and-fire
(LIF) neuron group simulation engine, implemented in the Go language
(golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* lif: the core engine: batched membrane-potential integration, static
and adaptive firing thresholds, deterministic / stochastic /
surrogate-gradient spike generation, Gaussian noise injection, and
externally driven neuromodulation, all exposed as a per-timestep state
transition on (batch, neuron) shaped tensors.

* surrogate: the surrogate-gradient pseudo-derivative functions used in
place of the discontinuous hard-threshold derivative when a surrounding
differentiation pass backpropagates through recorded spike decisions.

* examples: these compile into runnable programs. examples/lifrun runs a
configurable neuron group over a sequence of input patterns and logs
per-step statistics to a CSV table.
*/
package lif
