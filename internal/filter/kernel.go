package filter

import "math"

// smallGaussian holds the fixed kernels used for sizes up to 7 when no
// sigma is given.
var smallGaussian = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// SigmaForSize returns the sigma implied by an odd kernel size:
// 0.3*((size-1)*0.5-1) + 0.8.
func SigmaForSize(size int) float64 {
	return 0.3*((float64(size)-1)*0.5-1) + 0.8
}

// GaussianKernel generates a normalized 1D Gaussian kernel of the given odd
// size. If sigma <= 0 it is derived from the size, and sizes up to 7 use
// the fixed binomial-like kernels.
//
// Even or non-positive sizes return nil.
func GaussianKernel(size int, sigma float64) []float64 {
	if size <= 0 || size%2 == 0 {
		return nil
	}
	if sigma <= 0 {
		if k, ok := smallGaussian[size]; ok {
			return append([]float64(nil), k...)
		}
		sigma = SigmaForSize(size)
	}

	half := size / 2
	kernel := make([]float64, size)
	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// BoxKernel generates a normalized 1D box kernel of the given size.
// All values are 1/size. Non-positive sizes return nil.
func BoxKernel(size int) []float64 {
	if size <= 0 {
		return nil
	}
	kernel := make([]float64, size)
	val := 1.0 / float64(size)
	for i := range kernel {
		kernel[i] = val
	}
	return kernel
}
