package output

import "errors"

// ErrUnsupportedFormat indicates an unknown report format name.
var ErrUnsupportedFormat = errors.New("unsupported report format")
