// Copyright (c) 2026, The Plit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plit

import "errors"

// ErrSeriesShape indicates that a y-series does not have the same
// number of points as the shared x vector, or that a bar series does
// not match the category count.
var ErrSeriesShape = errors.New("series length mismatch")

// ErrLabelCount indicates that the number of labels does not match the
// number of series.
var ErrLabelCount = errors.New("label count mismatch")

// ErrNoSeries indicates that a chart constructor was called with no
// data series at all.
var ErrNoSeries = errors.New("no data series")

// ErrMarkerSpec indicates an unrecognized character in a marker format
// spec.
var ErrMarkerSpec = errors.New("unrecognized marker spec")

// ErrStyleFormat indicates an unsupported style sheet file format.
var ErrStyleFormat = errors.New("unsupported style sheet format")
