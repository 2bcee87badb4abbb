// Package imaging provides the image infrastructure for the ASCII pipeline.
//
// This package implements the pixel-level stages the sampler composes: a
// read-through image cache, grayscale conversion, additive brightness
// adjustment, and Lanczos resampling. All operations work with standard Go
// image types and use a coordinate system where (0,0) is at the top-left
// corner, X increases rightward, and Y increases downward.
//
// # Luminance
//
// Grayscale conversion uses the ITU-R BT.601 perceptual weighting,
// round(0.299*R + 0.587*G + 0.114*B) on 8-bit channels, and that single
// channel is authoritative for every later stage: brightness offsets apply
// to it directly and resampling interpolates the adjusted values.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The pixel operations are
// stateless; each returns a freshly allocated result and never writes to
// its input, so cached images can be shared across concurrent conversions.
// Row loops fan out internally via bild's parallel helper and always join
// before returning.
//
// # Error Handling
//
// The cache surfaces a missing source as an error matching fs.ErrNotExist
// and an undecodable one as the wrapped codec error. The pure pixel
// operations cannot fail and return no error.
package imaging
