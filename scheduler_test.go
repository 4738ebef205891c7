package mandel

import (
	"bytes"
	"context"
	"errors"
	"image"
	"sync"
	"testing"
)

func TestSplitRows(t *testing.T) {
	bands := splitRows(image.Rect(0, 0, 10, 35), 16)
	want := []image.Rectangle{
		image.Rect(0, 0, 10, 16),
		image.Rect(0, 16, 10, 32),
		image.Rect(0, 32, 10, 35),
	}
	if len(bands) != len(want) {
		t.Fatalf("got %d bands, want %d", len(bands), len(want))
	}
	for i := range want {
		if bands[i] != want[i] {
			t.Errorf("band %d = %v, want %v", i, bands[i], want[i])
		}
	}

	if got := splitRows(image.Rect(0, 0, 10, 0), 16); len(got) != 0 {
		t.Errorf("empty rect gave %d bands", len(got))
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	b := Bounds{73, 41}
	want := Render(b, TripleSpiral.UpperLeft, TripleSpiral.LowerRight)

	for _, workers := range []int{0, 1, 2, 5, 100} {
		got, err := RenderParallel(context.Background(), b, TripleSpiral, workers)
		if err != nil {
			t.Fatalf("workers=%d: %v", workers, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("workers=%d: output differs from Render", workers)
		}
	}
}

func TestSchedulerProgress(t *testing.T) {
	b := Bounds{20, 10}
	s := NewScheduler(b, DefaultRegion, 3)

	var (
		mu   sync.Mutex
		rows int
	)
	s.OnBand = func(band image.Rectangle) {
		mu.Lock()
		rows += band.Dy()
		mu.Unlock()
	}

	if p := s.Progress(); p != 0 {
		t.Fatalf("progress before run = %f", p)
	}
	if _, err := s.Run(context.Background(), 4); err != nil {
		t.Fatal(err)
	}
	if p := s.Progress(); p != 1 {
		t.Errorf("progress after run = %f, want 1", p)
	}
	if rows != b.H {
		t.Errorf("OnBand saw %d rows, want %d", rows, b.H)
	}
	if w := s.Workers(); w != 0 {
		t.Errorf("%d workers still active", w)
	}
}

func TestSchedulerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScheduler(Bounds{10, 10}, DefaultRegion, 1).Run(ctx, 2)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSchedulerEmpty(t *testing.T) {
	got, err := RenderParallel(context.Background(), Bounds{5, 0}, DefaultRegion, 4)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d bytes for an empty image", len(got))
	}
}
