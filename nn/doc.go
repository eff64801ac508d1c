// Copyright 2025 Grad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network modules built from scalar autodiff
// nodes: the Module interface, Neuron, Layer, MLP and the MSE/BCE losses.
//
// Example:
//
//	model, err := nn.NewMLP(nn.MLPConfig{
//	    In:               2,
//	    Hidden:           []int{8},
//	    Out:              1,
//	    OutputActivation: nn.Sigmoid,
//	})
package nn
