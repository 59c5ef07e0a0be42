package spatial

import "errors"

// ErrInvalidArgument is returned by New when the requested curve parameters
// cannot describe a valid index: a maxLevel below 1, a dimension above 3, a
// root rule whose dimension doesn't match the envelope, an envelope with a
// non-positive width on some axis, or a (maxLevel, dimension) pair whose key
// space would not fit in 64 bits.
var ErrInvalidArgument = errors.New("spatial: invalid argument")

// ErrInvalidLevel is returned when a level argument falls outside [1, maxLevel].
var ErrInvalidLevel = errors.New("spatial: invalid level")

// ErrMalformedRule is returned by New when a reachable CurveRule's
// NPointValues is not a permutation of [0, 2^dimension).
var ErrMalformedRule = errors.New("spatial: malformed curve rule")
