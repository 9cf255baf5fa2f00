// Package outline turns the samples of a stroke into the closed polygon
// that is filled to draw it.
//
// Generation runs in two passes. The first pass resamples the input:
// a two-sample stroke is subdivided, every point except the last is pulled
// toward its predecessor according to the streamline setting, and
// zero-length segments are dropped. The second pass walks the resampled
// points and offsets each one to both sides of the centerline along the
// perpendicular of the local direction (atan2 of the segment vector),
// producing a top rail and a bottom rail. The offset is the pressure and
// taper adjusted radius.
//
// The polygon is the top rail followed by the bottom rail reversed, so a
// capped end closes with a flat perpendicular edge and a tapered end
// closes on a near-zero width tip.
package outline
