package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/gabesaba/mandelbrot"
	"github.com/gabesaba/mandelbrot/internal/params"
)

// localService renders requests in process, rejecting bounds the way the real server does.
type localService struct{}

func (localService) Render(ctx context.Context, r mandel.Region, b mandel.Bounds) ([]byte, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return mandel.SequentialRenderer{}.Render(ctx, r, b)
}

// cappedService refuses renders above limit pixels.
type cappedService struct {
	mandel.RenderService
	limit int
}

func (c cappedService) Render(ctx context.Context, r mandel.Region, b mandel.Bounds) ([]byte, error) {
	if b.Pixels() > c.limit {
		return nil, fmt.Errorf("%s is too many pixels for this server", b)
	}
	return c.RenderService.Render(ctx, r, b)
}

// serve runs an irpc server for svc on a loopback port and returns its address.
func serve(t *testing.T, svc mandel.RenderService) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	srv := irpc.NewServer(irpc.WithServices(mandel.NewRenderServiceIrpcService(svc)))
	go srv.Serve(l)
	t.Cleanup(func() { srv.Close() })
	return l.Addr().String()
}

func tcpServer(t *testing.T) string {
	t.Helper()
	return serve(t, localService{})
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	return cfg.Width, cfg.Height
}

func TestRunTCP(t *testing.T) {
	addr := tcpServer(t)
	out := filepath.Join(t.TempDir(), "mandel.png")

	var stdout bytes.Buffer
	err := run([]string{"-addr", addr, "-o", out, "-preview", "-2", "1", "1", "-1", "30", "10"}, &stdout)
	if err != nil {
		t.Fatal(err)
	}
	if w, h := decodeSize(t, out); w != 30 || h != 10 {
		t.Errorf("saved %dx%d, want 30x10", w, h)
	}
	if !strings.Contains(stdout.String(), out) {
		t.Errorf("summary does not name the file:\n%s", stdout.String())
	}
}

func TestRunWebsocket(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, nil)
		if err != nil {
			return
		}
		conn := websocket.NetConn(context.Background(), c, websocket.MessageBinary)
		ep := irpc.NewEndpoint(conn, irpc.WithEndpointServices(mandel.NewRenderServiceIrpcService(localService{})))
		<-ep.Context().Done()
	}))
	defer ts.Close()

	out := filepath.Join(t.TempDir(), "ws.png")
	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http")
	if err := run([]string{"-ws", wsURL, "-o", out, "-region", "seahorse-valley", "-1", "1", "1", "-1", "16", "12"}, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if w, h := decodeSize(t, out); w != 16 || h != 12 {
		t.Errorf("saved %dx%d, want 16x12", w, h)
	}
}

func TestRunArgCount(t *testing.T) {
	var stdout bytes.Buffer
	err := run([]string{"1", "2", "3"}, &stdout)
	if !errors.Is(err, params.ErrArgCount) {
		t.Fatalf("err = %v, want ErrArgCount", err)
	}
	if !strings.Contains(stdout.String(), "Program requires 6 args") {
		t.Errorf("usage not printed:\n%s", stdout.String())
	}
}

func TestRunHelp(t *testing.T) {
	var stdout bytes.Buffer
	if err := run([]string{"-h"}, &stdout); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("err = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(stdout.String(), "-timeout") {
		t.Errorf("flags not listed:\n%s", stdout.String())
	}
}

func TestRunRemoteError(t *testing.T) {
	addr := serve(t, cappedService{localService{}, 16})
	out := filepath.Join(t.TempDir(), "huge.png")

	err := run([]string{"-addr", addr, "-o", out, "-1", "1", "1", "-1", "5", "5"}, &bytes.Buffer{})
	if err == nil || !strings.Contains(err.Error(), "too many pixels") {
		t.Fatalf("err = %v, want the server's rejection", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written despite error: %v", err)
	}
}

func TestRunRejectsEmptyBounds(t *testing.T) {
	addr := tcpServer(t)
	out := filepath.Join(t.TempDir(), "never.png")

	if err := run([]string{"-addr", addr, "-o", out, "-1", "1", "1", "-1", "4", "0"}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output written despite error: %v", err)
	}
}

func TestRunUnreachable(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	addr := l.Addr().String()
	l.Close()

	if err := run([]string{"-addr", addr, "-o", filepath.Join(t.TempDir(), "x.png")}, &bytes.Buffer{}); err == nil {
		t.Fatal("expected dial error")
	}
}
