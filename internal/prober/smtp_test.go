package prober_test

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"io"
	"math/big"
	"net"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeServer is a scripted SMTP server on loopback.
type fakeServer struct {
	ln net.Listener
	// rcpt returns the full reply line to RCPT TO for an address.
	rcpt func(addr string) string
	// noEHLO makes the server refuse EHLO.
	noEHLO bool
	// hang makes the server accept connections and never answer.
	hang bool
	// tls, when set, is offered through STARTTLS.
	tls *tls.Config
	// brokenTLS makes the server accept STARTTLS and hang up before the
	// handshake.
	brokenTLS bool

	wg       sync.WaitGroup
	mu       sync.Mutex
	commands []string
	conns    int
}

func withoutEHLO(s *fakeServer) { s.noEHLO = true }

func hanging(s *fakeServer) { s.hang = true }

func withTLS(t *testing.T) func(*fakeServer) {
	t.Helper()

	cert := selfSigned(t)

	return func(s *fakeServer) {
		s.tls = &tls.Config{Certificates: []tls.Certificate{cert}, MinVersion: tls.VersionTLS12}
	}
}

func withBrokenTLS(t *testing.T) func(*fakeServer) {
	t.Helper()

	enable := withTLS(t)

	return func(s *fakeServer) {
		enable(s)
		s.brokenTLS = true
	}
}

// selfSigned returns a throwaway certificate for fake.test.
func selfSigned(t *testing.T) tls.Certificate {
	t.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "fake.test"},
		DNSNames:     []string{"fake.test"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
		KeyUsage:     x509.KeyUsageDigitalSignature,
		ExtKeyUsage:  []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth},
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)

	return tls.Certificate{Certificate: [][]byte{der}, PrivateKey: key}
}

func newFakeServer(t *testing.T, rcpt func(addr string) string, opts ...func(*fakeServer)) *fakeServer {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	s := &fakeServer{ln: ln, rcpt: rcpt}
	for _, o := range opts {
		o(s)
	}
	s.wg.Add(1)
	go s.serve()
	t.Cleanup(func() {
		_ = ln.Close()
		s.wg.Wait()
	})

	return s
}

func (s *fakeServer) port() int {
	return s.ln.Addr().(*net.TCPAddr).Port //nolint: forcetypeassert
}

func (s *fakeServer) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.commands...)
}

func (s *fakeServer) connections() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.conns
}

func (s *fakeServer) serve() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns++
		s.mu.Unlock()

		s.wg.Add(1)
		go s.handle(conn)
	}
}

func (s *fakeServer) handle(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()

	if s.hang {
		_, _ = io.Copy(io.Discard, conn)

		return
	}

	tp := textproto.NewConn(conn)
	secure := false
	_ = tp.PrintfLine("220 fake.test ESMTP")
	for {
		line, err := tp.ReadLine()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.commands = append(s.commands, line)
		s.mu.Unlock()

		upper := strings.ToUpper(line)
		switch {
		case strings.HasPrefix(upper, "EHLO"):
			if s.noEHLO {
				_ = tp.PrintfLine("502 5.5.2 command not recognized")

				continue
			}
			_ = tp.PrintfLine("250-fake.test greets you")
			if s.tls != nil && !secure {
				_ = tp.PrintfLine("250-STARTTLS")
			}
			_ = tp.PrintfLine("250-PIPELINING")
			_ = tp.PrintfLine("250 8BITMIME")
		case upper == "STARTTLS" && s.tls != nil && !secure:
			_ = tp.PrintfLine("220 2.0.0 ready to start TLS")
			if s.brokenTLS {
				return
			}
			tlsConn := tls.Server(conn, s.tls)
			if err := tlsConn.Handshake(); err != nil {
				return
			}
			tp = textproto.NewConn(tlsConn)
			secure = true
		case strings.HasPrefix(upper, "HELO"):
			_ = tp.PrintfLine("250 fake.test")
		case strings.HasPrefix(upper, "MAIL FROM:"):
			_ = tp.PrintfLine("250 2.1.0 sender ok")
		case strings.HasPrefix(upper, "RCPT TO:"):
			addr := strings.TrimSuffix(strings.TrimPrefix(line[len("RCPT TO:"):], "<"), ">")
			_ = tp.PrintfLine("%s", s.rcpt(addr))
		case upper == "RSET":
			_ = tp.PrintfLine("250 2.0.0 reset")
		case upper == "QUIT":
			_ = tp.PrintfLine("221 2.0.0 bye")

			return
		case upper == "DATA":
			_ = tp.PrintfLine("354 go ahead")
		default:
			_ = tp.PrintfLine("500 5.5.1 unknown command")
		}
	}
}
