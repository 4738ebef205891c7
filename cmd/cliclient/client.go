package main

import (
	"context"
	"fmt"
	"net"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	mandel "github.com/gabesaba/mandelbrot"
	"github.com/gabesaba/mandelbrot/internal/params"
)

// dial connects to the render server over websocket when wsURL is set and over tcp otherwise.
func dial(ctx context.Context, addr, wsURL string) (net.Conn, error) {
	if wsURL != "" {
		c, _, err := websocket.Dial(ctx, wsURL, nil)
		if err != nil {
			return nil, fmt.Errorf("websocket.Dial %s: %w", wsURL, err)
		}
		return websocket.NetConn(context.Background(), c, websocket.MessageBinary), nil
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	return conn, nil
}

// fetch asks the server behind conn to render p and waits for the pixels.
// Cancelling ctx also stops the render on the server.
func fetch(ctx context.Context, conn net.Conn, p params.Params) ([]byte, error) {
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	client, err := mandel.NewRenderServiceIrpcClient(ep)
	if err != nil {
		return nil, fmt.Errorf("failed to create RenderService client: %w", err)
	}

	pixels, err := client.Render(ctx, p.Region, p.Bounds)
	if err != nil {
		return nil, fmt.Errorf("client.Render: %w", err)
	}
	return pixels, nil
}
