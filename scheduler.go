package mandel

import (
	"context"
	"fmt"
	"image"
	"runtime"
	"sync"
)

// DefaultBandHeight is the number of rows handed to a worker at a time.
const DefaultBandHeight = 16

// Scheduler hands out horizontal bands of one render to a pool of workers.
// Every band is written into its own slice of a shared, preallocated buffer,
// so workers never touch the same bytes.
type Scheduler struct {
	bounds Bounds
	region Region
	pixels []byte

	// OnBand, when set, is called after each band is finished.
	// It can be called from multiple goroutines in parallel.
	OnBand func(band image.Rectangle)

	totalPixels    int
	finishedPixels int
	workers        int

	pending []image.Rectangle
	m       sync.Mutex
}

func NewScheduler(b Bounds, r Region, bandHeight int) *Scheduler {
	if bandHeight <= 0 {
		bandHeight = DefaultBandHeight
	}
	return &Scheduler{
		bounds:      b,
		region:      r,
		pixels:      make([]byte, b.Pixels()),
		pending:     splitRows(b.Rect(), bandHeight),
		totalPixels: b.Pixels(),
	}
}

func (s *Scheduler) popBand() (band image.Rectangle, found bool) {
	s.m.Lock()
	defer s.m.Unlock()

	if len(s.pending) == 0 {
		return image.Rectangle{}, false
	}
	band = s.pending[0]
	s.pending = s.pending[1:]
	return band, true
}

// Progress reports the finished fraction of the image, in [0, 1].
func (s *Scheduler) Progress() float32 {
	s.m.Lock()
	defer s.m.Unlock()
	if s.totalPixels == 0 {
		return 1
	}
	return float32(s.finishedPixels) / float32(s.totalPixels)
}

// Workers reports how many workers are currently rendering.
func (s *Scheduler) Workers() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.workers
}

func (s *Scheduler) bandFinished(band image.Rectangle) {
	s.m.Lock()
	s.finishedPixels += s.bounds.W * band.Dy()
	s.m.Unlock()

	if s.OnBand != nil {
		s.OnBand(band)
	}
}

func (s *Scheduler) addWorker(delta int) {
	s.m.Lock()
	s.workers += delta
	s.m.Unlock()
}

// work renders pending bands until none are left or ctx is done.
func (s *Scheduler) work(ctx context.Context) error {
	s.addWorker(1)
	defer s.addWorker(-1)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		band, found := s.popBand()
		if !found {
			return nil
		}
		RenderRows(s.pixels, s.bounds, s.region, band)
		s.bandFinished(band)
	}
}

// Run renders the whole image on the given number of workers and returns the buffer
// once all of them have stopped. workers <= 0 means runtime.NumCPU().
// A Scheduler runs once; calling Run again returns the same buffer without rendering.
func (s *Scheduler) Run(ctx context.Context, workers int) ([]byte, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	s.m.Lock()
	if n := len(s.pending); workers > n {
		workers = max(n, 1)
	}
	s.m.Unlock()

	errs := make([]error, workers)
	if workers == 1 {
		errs[0] = s.work(ctx)
	} else {
		var wg sync.WaitGroup
		for w := range workers {
			wg.Go(func() {
				errs[w] = s.work(ctx)
			})
		}
		wg.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("render %s of %s: %w", s.bounds, s.region, err)
		}
	}
	return s.pixels, nil
}

// RenderParallel renders region r at bounds b on the given number of workers.
// The result is byte-identical to Render.
func RenderParallel(ctx context.Context, b Bounds, r Region, workers int) ([]byte, error) {
	return NewScheduler(b, r, DefaultBandHeight).Run(ctx, workers)
}

// splitRows splits r into full-width bands of bandH rows.
// The bottom band is shorter if r is not divisible.
func splitRows(r image.Rectangle, bandH int) []image.Rectangle {
	if bandH <= 0 {
		panic("band height must be positive")
	}

	h := r.Dy()
	bands := make([]image.Rectangle, 0, (h+bandH-1)/bandH)

	for oy := 0; oy < h; oy += bandH {
		bh := bandH
		if oy+bh > h {
			bh = h - oy
		}
		bands = append(bands, image.Rect(r.Min.X, r.Min.Y+oy, r.Max.X, r.Min.Y+oy+bh))
	}

	return bands
}
