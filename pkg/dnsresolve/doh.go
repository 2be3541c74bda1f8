package dnsresolve

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// DefaultDoHEndpoint is Google's JSON DNS-over-HTTPS API.
const DefaultDoHEndpoint = "https://dns.google/resolve"

// DNS record types and response codes used by the JSON API.
const (
	typeA      = 1
	typeMX     = 15
	typeAAAA   = 28
	rcodeOK    = 0
	rcodeNXDom = 3
)

// DoH resolves names through a JSON DNS-over-HTTPS endpoint compatible with
// https://developers.google.com/speed/public-dns/docs/doh/json. It is safe for
// concurrent use.
type DoH struct {
	httpClient *http.Client
	endpoint   string
}

var _ Resolver = (*DoH)(nil)

// NewDoH creates a DoH resolver. An empty endpoint selects DefaultDoHEndpoint.
func NewDoH(httpClient *http.Client, endpoint string) *DoH {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = DefaultDoHEndpoint
	}

	return &DoH{httpClient: httpClient, endpoint: endpoint}
}

type dohAnswer struct {
	Type int
	Data string
}

type dohResponse struct {
	Status int
	Answer []dohAnswer
}

// LookupHost implements Resolver. It queries A and AAAA records.
func (d *DoH) LookupHost(ctx context.Context, host string) ([]string, error) {
	var addrs []string
	for _, qtype := range []int{typeA, typeAAAA} {
		answers, err := d.query(ctx, host, qtype)
		if err != nil {
			return nil, err
		}
		for _, a := range answers {
			if a.Type == qtype {
				addrs = append(addrs, a.Data)
			}
		}
		// one family is enough to prove the host exists
		if len(addrs) > 0 {
			break
		}
	}

	return addrs, nil
}

// LookupMX implements Resolver.
func (d *DoH) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	answers, err := d.query(ctx, domain, typeMX)
	if err != nil {
		return nil, err
	}

	var records []*net.MX
	for _, a := range answers {
		if a.Type != typeMX {
			continue
		}
		// data is "<preference> <exchange>"
		fields := strings.Fields(a.Data)
		if len(fields) != 2 {
			continue
		}
		pref, err := strconv.ParseUint(fields[0], 10, 16)
		if err != nil {
			continue
		}
		records = append(records, &net.MX{Host: fields[1], Pref: uint16(pref)})
	}

	return normalizeMX(records), nil
}

func (d *DoH) query(ctx context.Context, name string, qtype int) ([]dohAnswer, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("type", strconv.Itoa(qtype))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/dns-json")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("doh status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	parsed, err := decodeDoHResponse(body)
	if err != nil {
		return nil, errors.Wrap(err, "decode response")
	}

	switch parsed.Status {
	case rcodeOK:
		return parsed.Answer, nil
	case rcodeNXDom:
		return nil, nil
	default:
		return nil, errors.Errorf("doh rcode %d for %q", parsed.Status, name)
	}
}

func decodeDoHResponse(body []byte) (dohResponse, error) {
	var out dohResponse
	err := jx.DecodeBytes(body).Obj(func(d *jx.Decoder, key string) error {
		switch key {
		case "Status":
			v, err := d.Int()
			out.Status = v

			return err
		case "Answer":
			return d.Arr(func(d *jx.Decoder) error {
				var a dohAnswer
				if err := d.Obj(func(d *jx.Decoder, key string) error {
					switch key {
					case "type":
						v, err := d.Int()
						a.Type = v

						return err
					case "data":
						v, err := d.Str()
						a.Data = v

						return err
					default:
						return d.Skip()
					}
				}); err != nil {
					return err
				}
				out.Answer = append(out.Answer, a)

				return nil
			})
		default:
			return d.Skip()
		}
	})

	return out, err
}
