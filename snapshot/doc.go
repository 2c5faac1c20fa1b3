// Package snapshot turns packed ARGB framebuffers into image files.
//
// Frames can be upscaled (nearest neighbour, so pixels stay sharp), reduced
// to a bilinear thumbnail, encoded as PNG, lossless WebP, or TGA, and pushed
// to an S3 bucket.
package snapshot
