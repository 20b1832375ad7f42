// Package pk3 writes font archives in the layout GZDoom loads fonts from.
//
// A pk3 is a zip file. Font glyphs live under
//
//	filter/doom.id/fonts/<font>/<CODEPOINT>.png
//
// where <font> selects the engine font being replaced (consolefont,
// defsmallfont, bigfont or bigupper) and <CODEPOINT> is the character code
// as four upper case hex digits. Create writes the directory entries of
// that path first, then glyphs are appended with WritePNG.
//
// Archives carry no timestamps, so the same glyphs always produce the same
// bytes.
package pk3
