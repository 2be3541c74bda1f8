package v1handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"emailfinder/internal/api/handler/v1handler"
	mockfinder "emailfinder/internal/finder/mock"
	mocklookup "emailfinder/internal/lookup/mock"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_BadRequest(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.With(serrors.ErrBadRequest, "first name is required")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrBadRequest.Error(), res.Response.Code)
	require.Equal(t, "first name is required", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	err := serrors.Wrap(serrors.ErrUnauthorized, errors.New("bad token"), "unauthorized")
	res := h.NewError(context.Background(), err)
	require.Equal(t, 401, res.StatusCode)
	// the message is exposed, not the cause
	require.Equal(t, "unauthorized", res.Response.Message)
}

func TestNewError_Unresolvable(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrUnresolvable))
	require.Equal(t, http.StatusUnprocessableEntity, res.StatusCode)
	require.Equal(t, "UNRESOLVABLE", res.Response.Code)
	require.Equal(t, "no domain could be resolved", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.KindOnly(serrors.ErrInternal))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, "internal error", res.Response.Message)
}

type testServer struct {
	lookups *mocklookup.MockService
	finder  *mockfinder.MockFinder
	mux     *http.ServeMux
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	ts := &testServer{
		lookups: mocklookup.NewMockService(ctrl),
		finder:  mockfinder.NewMockFinder(ctrl),
		mux:     http.NewServeMux(),
	}
	sec, err := v1handler.NewSecHandler(nil)
	require.NoError(t, err)
	v1handler.New(v1handler.Deps{Lookups: ts.lookups, Finder: ts.finder}).Routes(ts.mux, "/v1", sec)

	return ts
}

func (ts *testServer) do(method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	ts.mux.ServeHTTP(rec, req)

	return rec
}

var johnDoeResult = domain.FindResult{
	Profile: domain.Profile{Name: "John Doe", FirstName: "John", LastName: "Doe", Company: "Acme", Domain: "acme.com"},
	Domains: []domain.CompanyDomain{domain.NewCompanyDomain("acme.com", domain.DomainSourceDirect)},
	Emails: []domain.ScoredResult{{
		Email:      "john.doe@acme.com",
		Domain:     "acme.com",
		Confidence: domain.ConfidenceHigh,
		Evidence:   domain.EvidenceDiscovered,
		Source:     "format first.last discovered via search snippet; smtp accepted (250); domain direct",
	}},
}

func TestFindEmails(t *testing.T) {
	ts := newTestServer(t)

	ts.finder.EXPECT().Find(gomock.Any(), domain.PersonQuery{
		FirstName:    "John",
		LastName:     "Doe",
		Company:      "Acme",
		ExtraDomains: []string{"acme.io"},
		Headless:     true,
	}).Return(&johnDoeResult, nil)

	rec := ts.do(http.MethodPost, "/v1/find",
		`{"firstName":"John","lastName":"Doe","company":"Acme","extraDomains":["acme.io"],"unknown":{"a":1}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.JSONEq(t, `{
		"profile": {"name":"John Doe","firstName":"John","lastName":"Doe","company":"Acme","domain":"acme.com"},
		"domains": [{"domain":"acme.com","source":"`+string(domain.DomainSourceDirect)+`","confidence":`+
		jsonFloat(domain.DomainSourceDirect.Confidence())+`}],
		"emails": [{
			"email":"john.doe@acme.com",
			"domain":"acme.com",
			"confidence":"HIGH",
			"evidence":"`+string(domain.EvidenceDiscovered)+`",
			"source":"format first.last discovered via search snippet; smtp accepted (250); domain direct"
		}]
	}`, rec.Body.String())
}

func TestFindEmails_Errors(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/v1/find", `{"firstName":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	ts.finder.EXPECT().Find(gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrUnresolvable, "no domain for company"))
	rec = ts.do(http.MethodPost, "/v1/find", `{"firstName":"John","lastName":"Doe","company":"Nowhere"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	require.JSONEq(t, `{"code":"UNRESOLVABLE","message":"no domain for company"}`, rec.Body.String())
}

func TestCreateLookup(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	ts.lookups.EXPECT().Enqueue(gomock.Any(), domain.UserID(uuid.Nil), domain.PersonQuery{
		FirstName: "John",
		LastName:  "Doe",
		Company:   "Acme",
		Headless:  true,
	}).Return(&domain.Lookup{
		ID:        domain.LookupID(id),
		Query:     domain.PersonQuery{FirstName: "John", LastName: "Doe", Company: "Acme"},
		Status:    domain.LookupStatusPending,
		CreatedAt: created,
	}, nil)

	rec := ts.do(http.MethodPost, "/v1/lookups",
		`{"firstName":"John","lastName":"Doe","company":"Acme","extraDomains":null,"headless":true}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.JSONEq(t, `{
		"id":"`+id.String()+`",
		"status":"PENDING",
		"query":{"firstName":"John","lastName":"Doe","company":"Acme","extraDomains":[]},
		"attempts":0,
		"createdAt":"2025-01-02T03:04:05Z",
		"updatedAt":null
	}`, rec.Body.String())
}

func TestCreateLookup_CompletedFromCache(t *testing.T) {
	ts := newTestServer(t)

	ts.lookups.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Lookup{
		Status: domain.LookupStatusCompleted,
		Result: johnDoeResult,
	}, nil)

	rec := ts.do(http.MethodPost, "/v1/lookups", `{"firstName":"John","lastName":"Doe","company":"Acme"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"john.doe@acme.com"`)
}

func TestCreateLookup_BadRequest(t *testing.T) {
	ts := newTestServer(t)

	ts.lookups.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "last name is required"))

	rec := ts.do(http.MethodPost, "/v1/lookups", `{"firstName":"John","company":"Acme"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.JSONEq(t, `{"code":"BAD_REQUEST","message":"last name is required"}`, rec.Body.String())
}

func TestGetLookup(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()

	ts.lookups.EXPECT().Result(gomock.Any(), gomock.Any(), domain.LookupID(id)).Return(&domain.Lookup{
		ID:     domain.LookupID(id),
		Status: domain.LookupStatusFailed,
	}, nil)

	rec := ts.do(http.MethodGet, "/v1/lookups/"+id.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"status":"FAILED"`)
	require.NotContains(t, rec.Body.String(), `"result"`)

	rec = ts.do(http.MethodGet, "/v1/lookups/not-a-uuid", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)

	ts.lookups.EXPECT().Result(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, serrors.With(serrors.ErrNotFound, "lookup not found"))
	rec = ts.do(http.MethodGet, "/v1/lookups/"+uuid.NewString(), "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteLookup(t *testing.T) {
	ts := newTestServer(t)
	id := uuid.New()

	ts.lookups.EXPECT().Delete(gomock.Any(), gomock.Any(), domain.LookupID(id)).Return(nil)
	rec := ts.do(http.MethodDelete, "/v1/lookups/"+id.String(), "")
	require.Equal(t, http.StatusNoContent, rec.Code)

	ts.lookups.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	rec = ts.do(http.MethodDelete, "/v1/lookups/"+id.String(), "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestListLookups(t *testing.T) {
	ts := newTestServer(t)

	ts.lookups.EXPECT().UserLookups(gomock.Any(), gomock.Any(), domain.LookupStatusCompleted, "2025-01-01T00:00:00Z", uint(5)).
		Return([]domain.Lookup{{Status: domain.LookupStatusCompleted, Result: johnDoeResult}}, "2024-12-31T00:00:00Z", nil)

	rec := ts.do(http.MethodGet, "/v1/lookups?status=COMPLETED&cursor=2025-01-01T00:00:00Z&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"nextCursor":"2024-12-31T00:00:00Z"`)
	require.Contains(t, rec.Body.String(), `"john.doe@acme.com"`)

	ts.lookups.EXPECT().UserLookups(gomock.Any(), gomock.Any(), domain.LookupStatus(""), "", uint(v1handler.DefaultLimit)).
		Return(nil, "", nil)
	rec = ts.do(http.MethodGet, "/v1/lookups", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"items":[],"nextCursor":null}`, rec.Body.String())

	rec = ts.do(http.MethodGet, "/v1/lookups?limit=1000", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec = ts.do(http.MethodGet, "/v1/lookups?status=DONE", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
