// Package pixel implements the 1-bit color model and image buffers used to move
// pixels in and out of LED matrix displays.
//
// The types are compatible with Go's native [color.Color] and [image.Image] /
// [draw.Image] interfaces. Both buffers pack pixels least significant bit
// first, the same convention used for row and column bytes by the display
// driver and for glyph columns by the font tables.
package pixel
