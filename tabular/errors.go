package tabular

import "errors"

// ErrImportFormat indicates malformed import text: a missing header, no data
// rows, no usable parameter name, or a case row that does not match its
// header.
var ErrImportFormat = errors.New("tabular: import format error")
