package v1handler

import (
	"io"
	"time"

	"emailfinder/pkg/domain"
	"emailfinder/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"github.com/google/uuid"
)

const maxBodyBytes = 64 << 10

// DecodePersonQuery reads a lookup request body:
//
//	{"firstName": "John", "lastName": "Doe", "company": "Acme",
//	 "extraDomains": ["acme.io"], "headless": true}
//
// Unknown fields are ignored. A missing "headless" field means headless.
func DecodePersonQuery(r io.Reader) (domain.PersonQuery, error) {
	q := domain.PersonQuery{Headless: true}

	d := jx.Decode(io.LimitReader(r, maxBodyBytes), 1024)
	if err := d.Obj(func(d *jx.Decoder, key string) error {
		var err error
		switch key {
		case "firstName":
			q.FirstName, err = d.Str()
		case "lastName":
			q.LastName, err = d.Str()
		case "company":
			if d.Next() == jx.Null {
				return d.Null()
			}
			q.Company, err = d.Str()
		case "extraDomains":
			if d.Next() == jx.Null {
				return d.Null()
			}
			err = d.Arr(func(d *jx.Decoder) error {
				s, err := d.Str()
				if err != nil {
					return errors.Wrap(err, "extra domain")
				}
				q.ExtraDomains = append(q.ExtraDomains, s)

				return nil
			})
		case "headless":
			q.Headless, err = d.Bool()
		default:
			err = d.Skip()
		}

		if err != nil {
			return errors.Wrap(err, key)
		}

		return nil
	}); err != nil {
		return q, serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return q, nil
}

func encodeTime(e *jx.Encoder, t time.Time) {
	if t.IsZero() {
		e.Null()

		return
	}
	e.Str(t.UTC().Format(time.RFC3339Nano))
}

func encodeStrings(e *jx.Encoder, values []string) {
	e.Arr(func(e *jx.Encoder) {
		for _, v := range values {
			e.Str(v)
		}
	})
}

// EncodeFindResult writes a lookup result.
func EncodeFindResult(e *jx.Encoder, res domain.FindResult) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("profile", func(e *jx.Encoder) {
			p := res.Profile
			e.Obj(func(e *jx.Encoder) {
				e.Field("name", func(e *jx.Encoder) { e.Str(p.Name) })
				e.Field("firstName", func(e *jx.Encoder) { e.Str(p.FirstName) })
				e.Field("lastName", func(e *jx.Encoder) { e.Str(p.LastName) })
				e.Field("company", func(e *jx.Encoder) { e.Str(p.Company) })
				e.Field("domain", func(e *jx.Encoder) { e.Str(p.Domain) })
			})
		})
		e.Field("domains", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, d := range res.Domains {
					e.Obj(func(e *jx.Encoder) {
						e.Field("domain", func(e *jx.Encoder) { e.Str(d.Domain) })
						e.Field("source", func(e *jx.Encoder) { e.Str(string(d.Source)) })
						e.Field("confidence", func(e *jx.Encoder) { e.Float64(d.Confidence) })
					})
				}
			})
		})
		e.Field("emails", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for _, s := range res.Emails {
					e.Obj(func(e *jx.Encoder) {
						e.Field("email", func(e *jx.Encoder) { e.Str(s.Email) })
						e.Field("domain", func(e *jx.Encoder) { e.Str(s.Domain) })
						e.Field("confidence", func(e *jx.Encoder) { e.Str(string(s.Confidence)) })
						e.Field("evidence", func(e *jx.Encoder) { e.Str(string(s.Evidence)) })
						e.Field("source", func(e *jx.Encoder) { e.Str(s.Source) })
					})
				}
			})
		})
	})
}

// EncodeLookup writes a lookup. The result is only present once completed.
func EncodeLookup(e *jx.Encoder, l domain.Lookup) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("id", func(e *jx.Encoder) { e.Str(uuid.UUID(l.ID).String()) })
		e.Field("status", func(e *jx.Encoder) { e.Str(string(l.Status)) })
		e.Field("query", func(e *jx.Encoder) {
			q := l.Query
			e.Obj(func(e *jx.Encoder) {
				e.Field("firstName", func(e *jx.Encoder) { e.Str(q.FirstName) })
				e.Field("lastName", func(e *jx.Encoder) { e.Str(q.LastName) })
				e.Field("company", func(e *jx.Encoder) { e.Str(q.Company) })
				e.Field("extraDomains", func(e *jx.Encoder) { encodeStrings(e, q.ExtraDomains) })
			})
		})
		if l.Status == domain.LookupStatusCompleted {
			e.Field("result", func(e *jx.Encoder) { EncodeFindResult(e, l.Result) })
		}
		e.Field("attempts", func(e *jx.Encoder) { e.UInt(l.Attempts) })
		e.Field("createdAt", func(e *jx.Encoder) { encodeTime(e, l.CreatedAt) })
		e.Field("updatedAt", func(e *jx.Encoder) { encodeTime(e, l.UpdatedAt) })
	})
}

// EncodeLookupList writes a page of lookups.
func EncodeLookupList(e *jx.Encoder, lookups []domain.Lookup, nextCursor string) {
	e.Obj(func(e *jx.Encoder) {
		e.Field("items", func(e *jx.Encoder) {
			e.Arr(func(e *jx.Encoder) {
				for i := range lookups {
					EncodeLookup(e, lookups[i])
				}
			})
		})
		e.Field("nextCursor", func(e *jx.Encoder) {
			if nextCursor == "" {
				e.Null()

				return
			}
			e.Str(nextCursor)
		})
	})
}
