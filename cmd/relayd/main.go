// Command relayd wires a Router with a handful of example routes and
// starts the reactor server, mirroring the minimal main() the
// original C++ implementation uses to construct and start its
// HttpServer.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/yourusername/relay/internal/httpstatus"
	"github.com/yourusername/relay/internal/logging"
	"github.com/yourusername/relay/internal/mimetype"
	"github.com/yourusername/relay/pkg/relay/httpwire"
	"github.com/yourusername/relay/pkg/relay/reactor"
	"github.com/yourusername/relay/pkg/relay/router"
)

func main() {
	defaults := reactor.DefaultConfig()

	port := flag.Int("port", defaults.Port, "TCP listen port")
	threads := flag.Int("threads", defaults.NumberThreads, "reactor goroutine count")
	keepAliveTimeout := flag.Duration("keep-alive-timeout", defaults.KeepAliveTimeout, "idle READING timeout")
	logLevel := flag.String("log-level", "info", "debug|info|warning|error")
	flag.Parse()

	if lvl, err := logrus.ParseLevel(*logLevel); err == nil {
		logging.SetLevel(lvl)
	}

	r := buildRoutes()

	cfg := &reactor.Config{
		Port:             *port,
		NumberThreads:    *threads,
		KeepAliveTimeout: *keepAliveTimeout,
		SocketTuning:     defaults.SocketTuning,
	}
	srv := reactor.New(cfg, r)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := srv.Start(ctx); err != nil {
		logging.Criticalf("relayd: %v", err)
		os.Exit(1)
	}
}

func buildRoutes() *router.Router {
	r := router.New()

	r.AddRoute(httpwire.MethodGET, "/hello", func(req *httpwire.Request) *httpwire.Response {
		resp := httpwire.NewResponse()
		resp.SetStatus(httpstatus.OK)
		resp.SetContentType(mimetype.TextPlain)
		resp.SetBody([]byte("hi"))
		return resp
	})

	r.AddRoute(httpwire.MethodGET, "/items/{id}", func(req *httpwire.Request) *httpwire.Response {
		id, _ := req.GetPathParam("id")
		resp := httpwire.NewResponse()
		resp.SetStatus(httpstatus.OK)
		resp.SetContentType(mimetype.ApplicationJSON)
		resp.SetBody([]byte(`{"id":"` + id + `"}`))
		return resp
	})

	return r
}
