// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/chewxy/math32"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// ConfigLogTable configures dt with one row per simulated step,
// holding summary statistics of the group state.
func (ng *NeuronGroup) ConfigLogTable(dt *etable.Table, steps int) {
	sch := etable.Schema{
		{Name: "Step", Type: etensor.INT64, CellShape: nil, DimNames: nil},
		{Name: "SpikeAvg", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "VmAvg", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "VmMax", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "ThrAvg", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "ThrMin", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "ThrMax", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
		{Name: "TraceAvg", Type: etensor.FLOAT32, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, steps)
}

// LogStep records summary statistics of the current state into the
// given row, which should correspond to the step counter.
func (ng *NeuronGroup) LogStep(dt *etable.Table, row, step int) {
	n := float32(len(ng.Vm.Values))
	var spkSum, vmSum, thrSum, trcSum float32
	vmMax := ng.Vm.Values[0]
	thrMin := ng.Thr.Values[0]
	thrMax := ng.Thr.Values[0]
	for i := range ng.Vm.Values {
		spkSum += ng.Spikes.Values[i]
		vmSum += ng.Vm.Values[i]
		thrSum += ng.Thr.Values[i]
		trcSum += ng.Trace.Values[i]
		vmMax = math32.Max(vmMax, ng.Vm.Values[i])
		thrMin = math32.Min(thrMin, ng.Thr.Values[i])
		thrMax = math32.Max(thrMax, ng.Thr.Values[i])
	}
	dt.SetCellFloat("Step", row, float64(step))
	dt.SetCellFloat("SpikeAvg", row, float64(spkSum/n))
	dt.SetCellFloat("VmAvg", row, float64(vmSum/n))
	dt.SetCellFloat("VmMax", row, float64(vmMax))
	dt.SetCellFloat("ThrAvg", row, float64(thrSum/n))
	dt.SetCellFloat("ThrMin", row, float64(thrMin))
	dt.SetCellFloat("ThrMax", row, float64(thrMax))
	dt.SetCellFloat("TraceAvg", row, float64(trcSum/n))
}

// SizeReport returns a human-readable report of the memory taken by
// the group's state tensors.
func (ng *NeuronGroup) SizeReport() string {
	var b strings.Builder
	el := ng.Vm.Len()
	ntsr := 4
	if ng.SpikeGrad != nil {
		ntsr++
	}
	mem := ntsr * el * int(unsafe.Sizeof(float32(0)))
	fmt.Fprintf(&b, "NeuronGroup: Batch: %d \t Neurons: %d \t Mode: %v\n", ng.Batch, ng.NNeurons, ng.Params.Spike.Mode)
	fmt.Fprintf(&b, "\tState: %d tensors x %d elements \t Mem: %v\n", ntsr, el, (datasize.ByteSize)(mem).HumanReadable())
	return b.String()
}
