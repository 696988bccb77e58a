// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular provides small helpers for sizing ring buffers, used by
// the pile package's monotone-deque coverage windows.
package circular
