// Copyright 2025 Grad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers over scalar parameters: SGD with
// momentum and Adam.
package optim
