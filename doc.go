// Package spatial implements a space-filling curve index core: it maps
// coordinates in up to three dimensions onto a single totally ordered key,
// and answers range queries by returning the minimal sorted set of merged
// key intervals covering a query envelope.
//
// The curve's orientation rules (Hilbert, Z-order, or a caller-supplied
// scheme) are abstracted behind CurveRule; concrete tables live in the
// curverule subpackages. Everything else — normalization, key encoding and
// decoding, and the quadrant-pruning range search — lives here and has no
// dependency on any particular curve.
package spatial
