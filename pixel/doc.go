// Package pixel implements the pixel encodings used by surfaces and their sinks.
//
// Surfaces store 32-bit RGBA words. Sinks that drive hardware with a narrower
// native format convert frames through the images in this package, which are
// compatible with Go's native [color.Color] and [image.Image] / [draw.Image]
// interfaces.
package pixel
