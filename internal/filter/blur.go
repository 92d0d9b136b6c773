package filter

import (
	"sync"

	"github.com/gogpu/artifact/internal/cache"
	"github.com/gogpu/artifact/internal/parallel"
)

type kernelKey struct {
	size  int
	sigma float64
	box   bool
}

// kernels memoizes 1D kernels. Cached slices are shared and read-only.
var kernels = cache.New[kernelKey, []float64](64)

func cachedKernel(key kernelKey) []float64 {
	return kernels.GetOrCreate(key, func() []float64 {
		if key.box {
			return BoxKernel(key.size)
		}
		return GaussianKernel(key.size, key.sigma)
	})
}

// Plane is a row-major float raster with interleaved channels.
type Plane struct {
	Data     []float64
	Width    int
	Height   int
	Channels int
}

// NewPlane allocates a zeroed plane.
func NewPlane(width, height, channels int) Plane {
	return Plane{
		Data:     make([]float64, width*height*channels),
		Width:    width,
		Height:   height,
		Channels: channels,
	}
}

// Box applies a normalized size×size box filter.
func Box(src Plane, size int) Plane {
	k := cachedKernel(kernelKey{size: size, box: true})
	return Separable(src, k, k)
}

// Gaussian applies a size×size Gaussian filter. A non-positive sigma is
// derived from the size.
func Gaussian(src Plane, size int, sigma float64) Plane {
	k := cachedKernel(kernelKey{size: size, sigma: sigma})
	return Separable(src, k, k)
}

// Separable convolves src with kernelX along rows and kernelY along columns.
// A nil or single-tap kernel skips its pass. The source is never modified.
func Separable(src Plane, kernelX, kernelY []float64) Plane {
	dst := NewPlane(src.Width, src.Height, src.Channels)
	if src.Width == 0 || src.Height == 0 {
		return dst
	}

	temp := getTempBuffer(len(src.Data))
	defer putTempBuffer(temp)

	if len(kernelX) > 1 {
		horizontal(src, temp, kernelX)
	} else {
		copy(temp, src.Data)
	}

	if len(kernelY) > 1 {
		vertical(Plane{Data: temp, Width: src.Width, Height: src.Height, Channels: src.Channels}, dst.Data, kernelY)
	} else {
		copy(dst.Data, temp)
	}
	return dst
}

// horizontal applies 1D convolution along each row.
func horizontal(src Plane, out []float64, kernel []float64) {
	w, ch := src.Width, src.Channels
	half := len(kernel) / 2

	parallel.Rows(src.Height, func(y int) {
		row := src.Data[y*w*ch : (y+1)*w*ch]
		dst := out[y*w*ch : (y+1)*w*ch]
		for x := range w {
			for c := range ch {
				var acc float64
				for k, weight := range kernel {
					kx := reflect101(x+k-half, w)
					acc += row[kx*ch+c] * weight
				}
				dst[x*ch+c] = acc
			}
		}
	})
}

// vertical applies 1D convolution along each column.
func vertical(src Plane, out []float64, kernel []float64) {
	w, h, ch := src.Width, src.Height, src.Channels
	half := len(kernel) / 2
	stride := w * ch

	parallel.Rows(h, func(y int) {
		dst := out[y*stride : (y+1)*stride]
		for i := range stride {
			var acc float64
			for k, weight := range kernel {
				ky := reflect101(y+k-half, h)
				acc += src.Data[ky*stride+i] * weight
			}
			dst[i] = acc
		}
	})
}

// reflect101 maps an out-of-range index back into [0, n) without repeating
// the border sample.
func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		} else {
			i = 2*n - 2 - i
		}
	}
	return i
}

// tempPool recycles intermediate buffers between passes.
var tempPool = sync.Pool{
	New: func() any { return new([]float64) },
}

func getTempBuffer(size int) []float64 {
	bufPtr := tempPool.Get().(*[]float64)
	if cap(*bufPtr) < size {
		*bufPtr = make([]float64, size)
	}
	return (*bufPtr)[:size]
}

func putTempBuffer(buf []float64) {
	tempPool.Put(&buf)
}
