// Package filter provides separable convolution filters over float rasters.
//
// Filters operate on Plane values (row-major, interleaved channels) and use
// the reflect-101 border rule (…cb|abcd|cb…) so that results line up with
// the OpenCV filters the artifact pipeline was tuned against:
//   - Box blur (normalized, any odd size)
//   - Gaussian blur (explicit sigma, or sigma derived from kernel size)
//
// Horizontal and vertical passes are parallelized per row; neither pass
// depends on row scheduling order.
package filter
