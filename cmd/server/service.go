package main

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/marben/irpc"

	mandel "github.com/gabesaba/mandelbrot"
	"github.com/gabesaba/mandelbrot/internal/params"
)

// renderService answers render calls from every connected client.
// It implements mandel.RenderService, so it can be served over irpc as is.
type renderService struct {
	renderer  mandel.RenderService
	maxPixels int // <= 0 leaves only mandel.MaxPixels

	conns int
	m     sync.Mutex
}

var _ mandel.RenderService = &renderService{}

func newRenderService(r mandel.RenderService, maxPixels int) *renderService {
	return &renderService{renderer: r, maxPixels: maxPixels}
}

func (rs *renderService) addConn(delta int) {
	rs.m.Lock()
	rs.conns += delta
	c := rs.conns
	rs.m.Unlock()

	log.Printf("connections: %d", c)
}

// onConnect tracks the endpoint until its connection goes away.
func (rs *renderService) onConnect(ep *irpc.Endpoint) {
	log.Printf("got connection from: %s", ep.RemoteAddr())
	rs.addConn(1)
	go func() {
		<-ep.Context().Done()
		log.Printf("connection from %s closed: %v", ep.RemoteAddr(), context.Cause(ep.Context()))
		rs.addConn(-1)
	}()
}

// Render implements mandel.RenderService.
// ctx ends when the caller gives up or its connection drops, which stops the render.
func (rs *renderService) Render(ctx context.Context, r mandel.Region, b mandel.Bounds) ([]byte, error) {
	pixels, err := rs.render(ctx, params.Params{Region: r, Bounds: b})
	if err != nil {
		log.Printf("render %s of %s failed: %v", b, r, err)
		return nil, err
	}
	return pixels, nil
}

func (rs *renderService) render(ctx context.Context, p params.Params) ([]byte, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if rs.maxPixels > 0 && p.Bounds.Pixels() > rs.maxPixels {
		return nil, fmt.Errorf("%w: %s > %d pixels allowed by this server", mandel.ErrTooLarge, p.Bounds, rs.maxPixels)
	}
	start := time.Now()
	pixels, err := rs.renderer.Render(ctx, p.Region, p.Bounds)
	if err != nil {
		return nil, err
	}
	log.Printf("rendered %s of %s in %s", p.Bounds, p.Region, time.Since(start))
	return pixels, nil
}
