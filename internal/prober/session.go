package prober

import (
	"context"
	"crypto/tls"
	"net"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
)

// reply is a server answer to one command.
type reply struct {
	code    int
	message string
}

// session is one SMTP dialogue with a mail exchanger. It never issues DATA.
type session struct {
	// raw is the dialed connection. It is never reassigned, unlike conn
	// which becomes the TLS connection after STARTTLS.
	raw  net.Conn
	conn net.Conn
	text *textproto.Conn
	host string
}

func dial(ctx context.Context, d Dialer, host string, port int, timeout time.Duration) (*session, error) {
	conn, err := d.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", host)
	}
	if timeout > 0 {
		_ = conn.SetDeadline(time.Now().Add(timeout))
	}

	return &session{raw: conn, conn: conn, text: textproto.NewConn(conn), host: host}, nil
}

// watch interrupts blocked reads and writes once ctx is done. Deadlines on
// the dialed connection also bound a TLS connection layered on it.
func (s *session) watch(ctx context.Context) (stop func() bool) {
	raw := s.raw

	return context.AfterFunc(ctx, func() {
		_ = raw.SetDeadline(time.Now())
	})
}

func (s *session) cmd(format string, args ...any) (reply, error) {
	if err := s.text.PrintfLine(format, args...); err != nil {
		return reply{}, errors.Wrap(err, "write command")
	}

	return s.read()
}

func (s *session) read() (reply, error) {
	code, msg, err := s.text.ReadResponse(0)
	if err != nil {
		return reply{}, errors.Wrap(err, "read reply")
	}

	return reply{code: code, message: msg}, nil
}

// greet reads the banner and introduces the client, with HELO when EHLO is
// refused. It returns the EHLO extension lines.
func (s *session) greet(helo string) ([]string, error) {
	banner, err := s.read()
	if err != nil {
		return nil, err
	}
	if banner.code != 220 {
		return nil, errors.Errorf("unexpected greeting %d %s", banner.code, banner.message)
	}

	return s.hello(helo)
}

func (s *session) hello(helo string) ([]string, error) {
	ehlo, err := s.cmd("EHLO %s", helo)
	if err != nil {
		return nil, err
	}
	if ehlo.code == 250 {
		return strings.Split(ehlo.message, "\n"), nil
	}

	h, err := s.cmd("HELO %s", helo)
	if err != nil {
		return nil, err
	}
	if h.code != 250 {
		return nil, errors.Errorf("HELO refused: %d %s", h.code, h.message)
	}

	return nil, nil
}

// startTLS upgrades the connection and repeats the greeting.
func (s *session) startTLS(helo string, cfg *tls.Config) error {
	r, err := s.cmd("STARTTLS")
	if err != nil {
		return err
	}
	if r.code != 220 {
		return errors.Errorf("STARTTLS refused: %d %s", r.code, r.message)
	}

	tlsConn := tls.Client(s.conn, cfg)
	if err := tlsConn.Handshake(); err != nil {
		return errors.Wrap(err, "tls handshake")
	}
	s.conn = tlsConn
	s.text = textproto.NewConn(tlsConn)

	_, err = s.hello(helo)

	return err
}

// mailFrom declares the envelope sender.
func (s *session) mailFrom(sender string) (reply, error) {
	return s.cmd("MAIL FROM:<%s>", sender)
}

// rcptTo asks whether the recipient would be accepted.
func (s *session) rcptTo(recipient string) (reply, error) {
	return s.cmd("RCPT TO:<%s>", recipient)
}

// close aborts the transaction and hangs up. When graceful, RSET and QUIT
// are sent first and their replies awaited for a short grace period.
func (s *session) close(graceful bool) error {
	if graceful {
		_ = s.conn.SetDeadline(time.Now().Add(time.Second))
		if _, err := s.cmd("RSET"); err == nil {
			_, _ = s.cmd("QUIT")
		}
	}

	return s.text.Close() //nolint: wrapcheck
}

func hasExtension(lines []string, ext string) bool {
	for _, l := range lines {
		fields := strings.Fields(l)
		if len(fields) > 0 && strings.EqualFold(fields[0], ext) {
			return true
		}
	}

	return false
}
