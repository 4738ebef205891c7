package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"
	"strings"

	"github.com/marben/irpc"

	mandel "github.com/gabesaba/mandelbrot"
)

// main is the entry point for the Mandelbrot render server.
// Every request is rendered by the server itself; clients only ask and save.
func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run() error {
	tcpAddr := flag.String("tcp", ":8081", "address of the raw tcp irpc endpoint")
	httpPort := flag.Int("http", 8080, "port serving /render.png, /regions and the /ws websocket endpoint")
	workers := flag.Int("workers", 0, "render goroutines per request, 0 uses every CPU")
	maxPixels := flag.Int("max-pixels", 4096*4096, "largest render accepted per request, 0 allows up to the hard limit")
	origins := flag.String("origins", "*", "comma separated origin patterns accepted on /ws")
	flag.Parse()

	// renderService implements mandel.RenderService and backs both irpc and the http endpoints
	renderService := newRenderService(mandel.ParallelRenderer{Workers: *workers}, *maxPixels)

	irpcServer := newIrpcServer(renderService)

	// TCP
	log.Printf("tcp listening on %s", *tcpAddr)
	tcpListener, err := net.Listen("tcp", *tcpAddr)
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(context.Background(), *httpPort, renderService, strings.Split(*origins, ","))

	// httpServer provides the png endpoint along with websocket endpoint
	go func() {
		if err := httpServer.ListenAndServe(); err != nil {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	// irpcServer can serve multiple listeners. In this case both tcp and websocket
	go func() {
		if err := irpcServer.Serve(tcpListener); err != nil {
			log.Fatalf("server.Serve tcp: %v", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); err != nil {
			log.Fatalf("server.Serve ws: %v", err)
		}
	}()

	log.Printf("mb server waiting for tcp and websocket connections")
	select {}
}

// newIrpcServer exposes rs as a mandel.RenderService to every connection the server accepts.
func newIrpcServer(rs *renderService) *irpc.Server {
	s := irpc.NewServer(irpc.WithOnConnect(rs.onConnect))
	s.AddService(mandel.NewRenderServiceIrpcService(rs))
	return s
}
