// Copyright 2025 The numgo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/pppp606/numgo/internal/backend/cpu"
	"github.com/pppp606/numgo/ndarray"
)

// Backend represents the CPU backend implementation.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements ndarray.Backend.
var _ ndarray.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	b := cpu.New()
//	sum, err := b.Add(x, y)
func New() *Backend {
	return internalcpu.New()
}
