// Package ascii implements the image-to-ASCII sampling pipeline.
//
// The pipeline is a deterministic, stateless transform from a decoded raster
// image and a validated parameter snapshot to a grid of glyphs. Stages run in
// a fixed order: grayscale conversion, optional crop, optional brightness
// adjustment, Lanczos resize, glyph-ramp quantization, and row assembly.
//
// # Pipeline Order
//
// The stage order is part of the contract:
//
//  1. Grayscale: every pixel becomes a luminance value in [0,255] using the
//     ITU-R BT.601 weighting (0.299*R + 0.587*G + 0.114*B, rounded).
//  2. Crop: percentage bounds are converted to pixel coordinates against the
//     original decoded image, never a resized intermediate.
//  3. Brightness: a signed offset is added to each luminance sample and the
//     result clamped to [0,255]. Resize interpolates already-brightened values.
//  4. Resize: target dimensions are round(dim * scale/100) per axis, floored
//     to a minimum of 1, resampled with a Lanczos filter.
//  5. Quantization: index = floor(g * (len(ramp)-1) / 255), reflected when
//     inversion is requested. No dithering or error diffusion.
//
// # Determinism
//
// Calling Convert twice with identical parameters on the same source yields
// byte-identical output. Every invocation owns its intermediate buffers
// exclusively; the only shared state is the read-through image cache, which
// treats decoded images as immutable.
//
// # Error Handling
//
// Failures are reported as a tagged *Error distinguishing a missing or
// unreadable source (KindNoValidImage), an out-of-range parameter
// (KindInvalidParameter), and an underlying codec failure (KindDecode).
// Callers can branch with errors.As or the Is* helpers; no panic crosses the
// package boundary.
package ascii
