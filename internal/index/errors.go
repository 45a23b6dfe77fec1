package index

import "errors"

var ErrVectorLengthMismatch = errors.New("vector length mismatch")
