// Package prober asks mail exchangers whether they would accept a recipient.
// A probe stops after RCPT TO: no message is ever transmitted. Probes against
// one exchanger are serialized and spaced, a random control address detects
// catch-all domains, and a domain that keeps failing is abandoned.
package prober

import (
	"context"
	"crypto/tls"
	"net"
	"time"

	"emailfinder/internal/config"
	"emailfinder/pkg/dnsresolve"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/metrics"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// Dialer opens connections to mail exchangers. *net.Dialer implements it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Options configure a Prober.
type Options struct {
	// Port is the SMTP port. Zero means 25.
	Port int
	// HeloName is announced in EHLO/HELO. Empty means "localhost".
	HeloName string
	// MailFrom is the envelope sender. Empty means verify@<probed domain>.
	MailFrom string
	// Timeout bounds one dialogue, connection included. Zero disables it.
	Timeout time.Duration
	// InterProbeDelay spaces consecutive probes to one exchanger.
	InterProbeDelay time.Duration
	// MaxConsecutiveFailures abandons a domain after that many timeouts or
	// connection errors in a row. Zero never abandons.
	MaxConsecutiveFailures int
	// CatchAllCheck probes a control address before the candidates.
	CatchAllCheck bool
	// StartTLS upgrades the connection when the server offers it.
	StartTLS bool
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Port:                   cfg.Prober.Port,
		HeloName:               cfg.Prober.HeloName,
		MailFrom:               cfg.Prober.MailFrom,
		Timeout:                cfg.Prober.Timeout,
		InterProbeDelay:        cfg.Prober.InterProbeDelay,
		MaxConsecutiveFailures: cfg.Prober.MaxConsecutiveFailures,
		CatchAllCheck:          cfg.Prober.CatchAllCheck,
		StartTLS:               cfg.Prober.StartTLS,
	}
}

// Prober probes mailboxes. It is safe for concurrent use; the per exchanger
// spacing applies to every caller sharing the Prober.
type Prober struct {
	dns    dnsresolve.Resolver
	dialer Dialer
	opts   Options
	gate   *hostGate

	// controlLocal returns the local part of catch-all control addresses
	controlLocal func() string

	probes  metric.Int64Counter
	latency metric.Float64Histogram
}

// New creates a Prober. A nil dialer uses a net.Dialer bounded by Timeout.
func New(dns dnsresolve.Resolver, dialer Dialer, opts Options) (*Prober, error) {
	if opts.Port <= 0 {
		opts.Port = 25
	}
	if opts.HeloName == "" {
		opts.HeloName = "localhost"
	}
	if dialer == nil {
		dialer = &net.Dialer{Timeout: opts.Timeout}
	}

	meter := otel.Meter("emailfinder/prober")
	probes, err := meter.Int64Counter(metrics.Namespace+"_smtp_probes_total",
		metric.WithDescription("Mailbox probes by kind and response"))
	if err != nil {
		return nil, errors.Wrap(err, "create probes counter")
	}
	latency, err := meter.Float64Histogram(metrics.Namespace+"_smtp_probe_duration_seconds",
		metric.WithDescription("Mailbox probe dialogue latency"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(metrics.NetworkBuckets...))
	if err != nil {
		return nil, errors.Wrap(err, "create latency histogram")
	}

	return &Prober{
		dns:          dns,
		dialer:       dialer,
		opts:         opts,
		gate:         newHostGate(opts.InterProbeDelay),
		controlLocal: func() string { return "nx-" + uuid.NewString() },
		probes:       probes,
		latency:      latency,
	}, nil
}

// Probe checks a single candidate against the preferred exchanger of its
// domain. Failures are reported in the result, never as errors.
func (p *Prober) Probe(ctx context.Context, c domain.Candidate) domain.ProbeResult {
	host, resp := p.exchanger(ctx, c.Domain)
	if host == "" {
		return p.noExchanger(ctx, c, resp)
	}

	return p.probeHost(ctx, host, c, "candidate")
}

// ProbeDomain probes candidates of one domain in order. When enabled, a
// control address is probed first and ACCEPTED results are downgraded to
// UNKNOWN if the control address is accepted too. After too many consecutive
// failures the remaining candidates are abandoned without being probed.
func (p *Prober) ProbeDomain(ctx context.Context, domainName string, candidates []domain.Candidate) []domain.ProbeResult {
	ctx = logger.WithFields(ctx, zap.String("domain", domainName))
	results := make([]domain.ProbeResult, 0, len(candidates))
	if len(candidates) == 0 {
		return results
	}

	host, resp := p.exchanger(ctx, domainName)
	if host == "" {
		for _, c := range candidates {
			results = append(results, p.noExchanger(ctx, c, resp))
		}

		return results
	}

	catchAll := false
	if p.opts.CatchAllCheck {
		control := domain.Candidate{Email: p.controlLocal() + "@" + domainName, Domain: domainName}
		res := p.probeHost(ctx, host, control, "control")
		catchAll = res.Response == domain.SMTPAccepted
		logger.Debug(ctx, "catch-all control probed",
			zap.String("response", string(res.Response)), zap.Bool("catchAll", catchAll))
	}

	failures := 0
	for _, c := range candidates {
		if p.opts.MaxConsecutiveFailures > 0 && failures >= p.opts.MaxConsecutiveFailures {
			results = append(results, domain.ProbeResult{
				Candidate: c,
				MXExists:  true,
				MXHost:    host,
				Response:  domain.SMTPUnknown,
				Abandoned: true,
			})

			continue
		}

		res := p.probeHost(ctx, host, c, "candidate")
		if res.Response.IsFailure() {
			failures++
			if failures == p.opts.MaxConsecutiveFailures {
				logger.Warn(ctx, "abandoning domain after consecutive probe failures",
					zap.String("mx", host), zap.Int("failures", failures))
			}
		} else {
			failures = 0
		}
		if catchAll && res.Response == domain.SMTPAccepted {
			res.Response = domain.SMTPUnknown
			res.CatchAll = true
		}
		results = append(results, res)
	}

	return results
}

// exchanger returns the preferred mail exchanger of domainName, or an empty
// host and the response to report when there is none.
func (p *Prober) exchanger(ctx context.Context, domainName string) (string, domain.SMTPResponse) {
	mx, err := p.dns.LookupMX(ctx, domainName)
	if err != nil {
		logger.Warn(ctx, "mx lookup failed", zap.String("domain", domainName), zap.Error(err))

		return "", domain.SMTPConnectionError
	}
	if len(mx) == 0 {
		return "", domain.SMTPUnknown
	}

	return mx[0].Host, ""
}

func (p *Prober) noExchanger(ctx context.Context, c domain.Candidate, resp domain.SMTPResponse) domain.ProbeResult {
	p.record(ctx, "candidate", resp, 0)

	return domain.ProbeResult{Candidate: c, MXExists: false, Response: resp}
}

func (p *Prober) probeHost(ctx context.Context, host string, c domain.Candidate, kind string) domain.ProbeResult {
	res := domain.ProbeResult{Candidate: c, MXExists: true, MXHost: host}

	release, err := p.gate.reserve(ctx, host)
	if err != nil {
		res.Response = classifyErr(err)
		p.record(ctx, kind, res.Response, 0)

		return res
	}
	defer release()

	probeCtx := ctx
	if p.opts.Timeout > 0 {
		var cancel context.CancelFunc
		probeCtx, cancel = context.WithTimeout(ctx, p.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	res.Response, res.Code, res.Message = p.dialogue(probeCtx, host, c)
	res.Latency = time.Since(start)
	p.record(ctx, kind, res.Response, res.Latency)

	logger.Debug(ctx, "mailbox probed",
		zap.String("email", c.Email),
		zap.String("mx", host),
		zap.String("response", string(res.Response)),
		zap.Int("code", res.Code),
		zap.Duration("latency", res.Latency))

	return res
}

func (p *Prober) dialogue(ctx context.Context, host string, c domain.Candidate) (resp domain.SMTPResponse, code int, msg string) {
	s, err := dial(ctx, p.dialer, host, p.opts.Port, p.opts.Timeout)
	if err != nil {
		return p.failure(ctx, err), 0, ""
	}
	stop := s.watch(ctx)
	defer func() {
		stop()
		// a broken dialogue is not worth a polite goodbye
		_ = s.close(!resp.IsFailure() && ctx.Err() == nil)
	}()

	ext, err := s.greet(p.opts.HeloName)
	if err != nil {
		return p.failure(ctx, err), 0, ""
	}

	if p.opts.StartTLS && hasExtension(ext, "STARTTLS") {
		//nolint: gosec // probes carry no secrets and mail exchanger certificates rarely match their names
		cfg := &tls.Config{ServerName: host, InsecureSkipVerify: true, MinVersion: tls.VersionTLS12}
		if err := s.startTLS(p.opts.HeloName, cfg); err != nil {
			return p.failure(ctx, err), 0, ""
		}
	}

	sender, err := s.mailFrom(p.sender(c.Domain))
	if err != nil {
		return p.failure(ctx, err), 0, ""
	}
	if sender.code/100 != 2 {
		return domain.SMTPUnknown, sender.code, sender.message
	}

	rcpt, err := s.rcptTo(c.Email)
	if err != nil {
		return p.failure(ctx, err), 0, ""
	}

	return Classify(rcpt.code, rcpt.message), rcpt.code, rcpt.message
}

func (p *Prober) failure(ctx context.Context, err error) domain.SMTPResponse {
	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return domain.SMTPTimeout
		}

		return domain.SMTPConnectionError
	}

	return classifyErr(err)
}

func (p *Prober) sender(domainName string) string {
	if p.opts.MailFrom != "" {
		return p.opts.MailFrom
	}

	return "verify@" + domainName
}

func (p *Prober) record(ctx context.Context, kind string, resp domain.SMTPResponse, latency time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("kind", kind),
		attribute.String("response", string(resp)),
	)
	p.probes.Add(ctx, 1, attrs)
	if latency > 0 {
		p.latency.Record(ctx, latency.Seconds(), attrs)
	}
}
