// Package artifact synthesizes histology imaging artifacts onto RGB tiles
// for data augmentation.
//
// # Overview
//
// Seven artifact generators share a small set of numeric building blocks:
//
//   - RandSpline: random handle points resampled along a monotone cubic
//     path at unit arc-length spacing
//   - RandGaussField: a sum of randomized anisotropic 2D Gaussians
//   - Field / Region / Mask: Euclidean distance transforms, thresholds, and
//     8-bit alpha masks
//   - Composite: alpha blending of a color layer over a base image
//
// The generators are AddMarker, AddFold, AddSectioning, AddIllumination,
// AddBubbles, AddStain and AddTear. Apply dispatches on a Type.
//
// # Quick Start
//
//	img := artifact.FromImage(src)
//	seed := artifact.DeriveSeed("slide-07/tile_3_4", artifact.Marker, 0)
//	out, err := artifact.AddMarker(img, seed, artifact.DefaultMarkerOptions())
//
// # Reproducibility
//
// Every generator is a pure function of (image, options, seed). Random
// draws come from a Rand created inside the call and are taken in a fixed
// order, so the same inputs always produce the same bytes. DeriveSeed maps
// a tile or slide identity and an artifact Type to a seed.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Rasters are row-major: index y*width+x
package artifact
