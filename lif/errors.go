// Copyright (c) 2025, The LIFSim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lif

import (
	"errors"
	"fmt"
)

// ErrConfig is the sentinel wrapped by all construction-time
// configuration errors.  These are fatal: a group that failed to
// construct is never usable, and the caller should not retry.
var ErrConfig = errors.New("lif: invalid configuration")

// ShapeError reports an input or modulation tensor whose shape is
// inconsistent with the group configuration.  It is returned from Step
// without any state having been modified, so the caller can fix the
// input and call again.
type ShapeError struct {
	What     string // which tensor: "input" or "modulation"
	Expected []int
	Got      []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("lif: %s tensor shape %v does not match required shape %v", e.What, e.Got, e.Expected)
}
