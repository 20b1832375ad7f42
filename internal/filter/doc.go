// Package filter provides the pixel neighborhood samplers used by the glyph
// effects pipeline.
//
// Two strategies are offered:
//   - BoxAverage: plain average over a clamped square window, used to detect
//     whether an empty pixel sits next to opaque content (outline growth)
//   - Gaussian3x3: fixed low-pass kernel, used for soft drop shadows
//
// Both read *image.NRGBA rasters and never modify them.
package filter
