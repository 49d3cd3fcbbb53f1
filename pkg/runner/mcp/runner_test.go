package mcp

import (
	"net"
	"testing"
)

func TestParseTransport(t *testing.T) {
	for in, want := range map[string]Transport{"": TransportHTTP, "HTTP": TransportHTTP, " stdio ": TransportStdio} {
		got, err := ParseTransport(in)
		if err != nil || got != want {
			t.Errorf("ParseTransport(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseTransport("sse"); err == nil {
		t.Errorf("expected error for sse")
	}
}

func TestEndpointURL(t *testing.T) {
	tests := []struct {
		name  string
		bound net.Addr
		host  string
		path  string
		tls   bool
		want  string
	}{
		{name: "loopback", bound: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 8080}, host: "127.0.0.1", path: "/mcp", want: "http://127.0.0.1:8080/mcp"},
		{name: "wildcard", bound: &net.TCPAddr{IP: net.IPv4zero, Port: 9000}, host: "0.0.0.0", path: "mcp", want: "http://127.0.0.1:9000/mcp"},
		{name: "ipv6", bound: &net.TCPAddr{IP: net.IPv6loopback, Port: 443}, host: "::1", tls: true, want: "https://[::1]:443/mcp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EndpointURL(tt.bound, tt.host, tt.path, tt.tls); got != tt.want {
				t.Errorf("EndpointURL = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewServerRequiresStore(t *testing.T) {
	if _, err := (Runner{}).NewServer(); err == nil {
		t.Fatalf("expected error without a store")
	}
	r := Runner{Store: newTestService(t).Store}
	if _, err := r.NewServer(); err != nil {
		t.Fatalf("NewServer: %v", err)
	}
}
