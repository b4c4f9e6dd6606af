// Copyright 2025 The numgo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the pure Go CPU backend for numgo arrays.
//
// # Overview
//
// The backend implements every ndarray.Backend operation:
//   - Element-wise arithmetic with NumPy-style broadcasting
//   - Transcendental functions and activations
//   - Full-array reductions (sum, mean, std, min, max)
//   - Dot products through gonum
//   - Valid-mode convolution, direct and FFT-based
//   - N-dimensional FFT through gonum's dsp/fourier
//
// # Thread Safety
//
// The backend holds no mutable state and may be shared. Arrays that share a
// buffer must not be mutated concurrently.
package cpu
