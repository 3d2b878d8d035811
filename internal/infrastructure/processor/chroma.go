package processor

import (
	"context"
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"
)

const (
	_defaultTolerance = 0.12
	_defaultFeather   = 0.6

	// ctx is checked once per this many visited pixels
	_ctxCheckEvery = 4096
)

// ChromaRemover treats the dominant border colour as background and clears
// every pixel connected to the border whose colour is within tolerance of it.
type ChromaRemover struct {
	tolerance float64 // 0..1, max channel distance
	feather   float64 // blur sigma applied to the alpha mask, 0 disables
}

func New(opts ...Option) *ChromaRemover {
	r := &ChromaRemover{
		tolerance: _defaultTolerance,
		feather:   _defaultFeather,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func (r *ChromaRemover) Name() string {
	return "chroma"
}

func (r *ChromaRemover) RemoveBackground(ctx context.Context, img image.Image) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("ChromaRemover - RemoveBackground: nil image")
	}

	src := imaging.Clone(img)
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	if w == 0 || h == 0 {
		return nil, fmt.Errorf("ChromaRemover - RemoveBackground: empty image")
	}

	bg := borderColor(src)

	background, err := r.floodFromBorder(ctx, src, bg)
	if err != nil {
		return nil, fmt.Errorf("ChromaRemover - RemoveBackground - r.floodFromBorder: %w", err)
	}

	mask := image.NewGray(src.Rect)
	for i, isBg := range background {
		if !isBg {
			mask.Pix[i] = 0xff
		}
	}

	var alpha func(i int) uint8
	if r.feather > 0 {
		blurred := imaging.Blur(mask, r.feather)
		alpha = func(i int) uint8 { return blurred.Pix[i*4] }
	} else {
		alpha = func(i int) uint8 { return mask.Pix[i] }
	}

	for i := range background {
		a := alpha(i)
		// background stays strictly below opaque even if the blur rounds up
		if background[i] && a == 0xff {
			a = 0xfe
		}
		if p := &src.Pix[i*4+3]; a < *p {
			*p = a
		}
	}

	return src, nil
}

func (r *ChromaRemover) floodFromBorder(ctx context.Context, src *image.NRGBA, bg [3]uint8) ([]bool, error) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	limit := int(r.tolerance * 255)

	visited := make([]bool, w*h)
	stack := make([]int, 0, 2*(w+h))

	push := func(x, y int) {
		i := y*w + x
		if visited[i] || !near(src.Pix[i*4:i*4+3], bg, limit) {
			return
		}
		visited[i] = true
		stack = append(stack, i)
	}

	for x := 0; x < w; x++ {
		push(x, 0)
		push(x, h-1)
	}
	for y := 0; y < h; y++ {
		push(0, y)
		push(w-1, y)
	}

	for n := 0; len(stack) > 0; n++ {
		if n%_ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w

		if x > 0 {
			push(x-1, y)
		}
		if x < w-1 {
			push(x+1, y)
		}
		if y > 0 {
			push(x, y-1)
		}
		if y < h-1 {
			push(x, y+1)
		}
	}

	return visited, nil
}

// borderColor is the per-channel median of the outermost pixels.
func borderColor(src *image.NRGBA) [3]uint8 {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()

	var channels [3][]uint8
	sample := func(x, y int) {
		i := (y*w + x) * 4
		for c := 0; c < 3; c++ {
			channels[c] = append(channels[c], src.Pix[i+c])
		}
	}

	for x := 0; x < w; x++ {
		sample(x, 0)
		if h > 1 {
			sample(x, h-1)
		}
	}
	for y := 1; y < h-1; y++ {
		sample(0, y)
		if w > 1 {
			sample(w-1, y)
		}
	}

	var bg [3]uint8
	for c := range channels {
		sort.Slice(channels[c], func(a, b int) bool { return channels[c][a] < channels[c][b] })
		bg[c] = channels[c][len(channels[c])/2]
	}

	return bg
}

func near(px []uint8, bg [3]uint8, limit int) bool {
	for c := 0; c < 3; c++ {
		d := int(px[c]) - int(bg[c])
		if d < 0 {
			d = -d
		}
		if d > limit {
			return false
		}
	}

	return true
}
