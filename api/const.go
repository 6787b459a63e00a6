package api

import "errors"

// ErrorOutofMemory operation cannot succeed because index has reached
// its configured memory capacity.
var ErrorOutofMemory = errors.New("outofMemory")

// ErrorDeadIndex operation cannot succeed because index is already
// destroyed.
var ErrorDeadIndex = errors.New("deadIndex")

// ErrorKeyMissing operation cannot succeed because specifed key is missing
// in the index.
var ErrorKeyMissing = errors.New("keyMissing")
