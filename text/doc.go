// Package text loads fonts and turns characters into glyph shapes.
//
// The package is organized the way a converter uses it:
//
//   - Library: index of the installed fonts (and extra font files),
//     looked up by family name and Style
//   - FontSource: one parsed font file, shared by all sizes
//   - Face: a FontSource at a point size; produces Shapes
//   - Shape: advance, line box, ink bounds and outline of one character
//
// Sizes are in points and one point renders as one pixel.
//
// # Example usage
//
//	lib, err := text.NewLibrary()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer lib.Close()
//
//	face, err := lib.Open(text.Descriptor{Family: "DejaVu Sans", Size: 12})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	shape, err := face.Shape('A')
//	mask := shape.Mask(w, h, 0, shape.Ascent)
//
// # Thread Safety
//
// Library, FontSource and Face are safe for concurrent use. A FontSource
// must not be copied after creation.
package text
