package mcp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/mindmap/pkg/app"
)

// Transport selects how the MCP server is exposed.
type Transport string

const (
	TransportHTTP  Transport = "http"
	TransportStdio Transport = "stdio"
)

// ParseTransport accepts "http" or "stdio"; empty means http.
func ParseTransport(v string) (Transport, error) {
	switch t := Transport(strings.ToLower(strings.TrimSpace(v))); t {
	case "", TransportHTTP:
		return TransportHTTP, nil
	case TransportStdio:
		return TransportStdio, nil
	default:
		return "", fmt.Errorf("unsupported transport %q (expected http or stdio)", v)
	}
}

const (
	defaultAddr = "127.0.0.1:8080"
	defaultPath = "/mcp"
)

// Runner serves one emotion log over MCP.
type Runner struct {
	Store   *app.LogStore
	Version string

	Transport Transport

	// HTTP transport.
	Addr     string
	Path     string
	CertFile string
	KeyFile  string
	// Listening receives the endpoint URL once the listener is bound.
	Listening func(url string)

	// Stdio transport, defaulting to os.Stdin and os.Stdout.
	In  io.Reader
	Out io.Writer
}

// NewServer builds the MCP server with every mindmap tool and resource.
func (r Runner) NewServer() (*server.MCPServer, error) {
	if r.Store == nil {
		return nil, errors.New("mcp runner requires a log store")
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}
	srv := server.NewMCPServer(
		"mindmap MCP",
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Log emotions, browse and search the emotion log, track the mood goal, and read weekly or monthly summaries."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)
	svc := NewService(r.Store)
	registerResources(srv, svc)
	registerTools(srv, svc)
	return srv, nil
}

// Do serves until ctx is done or the transport fails.
func (r Runner) Do(ctx context.Context) error {
	srv, err := r.NewServer()
	if err != nil {
		return err
	}
	switch r.Transport {
	case "", TransportHTTP:
		return r.serveHTTP(ctx, srv)
	case TransportStdio:
		return r.serveStdio(ctx, srv)
	default:
		return fmt.Errorf("unknown MCP transport %q", r.Transport)
	}
}

func (r Runner) serveStdio(ctx context.Context, srv *server.MCPServer) error {
	var in io.Reader = os.Stdin
	if r.In != nil {
		in = r.In
	}
	var out io.Writer = os.Stdout
	if r.Out != nil {
		out = r.Out
	}
	err := server.NewStdioServer(srv).Listen(ctx, in, out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func (r Runner) serveHTTP(ctx context.Context, srv *server.MCPServer) error {
	if (r.CertFile == "") != (r.KeyFile == "") {
		return errors.New("both http tls cert and key must be provided")
	}
	path := endpointPath(r.Path)
	addr := r.Addr
	if addr == "" {
		addr = defaultAddr
	}

	mux := http.NewServeMux()
	mux.Handle(path, server.NewStreamableHTTPServer(srv))
	httpSrv := &http.Server{Handler: mux}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	tls := r.CertFile != ""
	if r.Listening != nil {
		host, _, _ := net.SplitHostPort(addr)
		r.Listening(EndpointURL(ln.Addr(), host, path, tls))
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()

	if tls {
		err = httpSrv.ServeTLS(ln, r.CertFile, r.KeyFile)
	} else {
		err = httpSrv.Serve(ln)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func endpointPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return defaultPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return p
}

// EndpointURL renders the address a client should connect to. Wildcard
// hosts are replaced by the bound IP, or loopback when that is wildcard too.
func EndpointURL(bound net.Addr, host, path string, tls bool) string {
	scheme := "http"
	if tls {
		scheme = "https"
	}
	path = endpointPath(path)
	tcp, ok := bound.(*net.TCPAddr)
	if !ok {
		return fmt.Sprintf("%s://%s%s", scheme, bound.String(), path)
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
	}
	return fmt.Sprintf("%s://%s%s", scheme, net.JoinHostPort(host, strconv.Itoa(tcp.Port)), path)
}
