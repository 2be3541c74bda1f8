package resolver_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"emailfinder/internal/resolver"
	mockdnsresolve "emailfinder/pkg/dnsresolve/mock"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"
	"emailfinder/pkg/websearch"
	mockwebsearch "emailfinder/pkg/websearch/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestResolve_DirectGuess(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsresolve.NewMockResolver(ctrl)
	search := mockwebsearch.NewMockEngine(ctrl)

	dns.EXPECT().LookupHost(gomock.Any(), "acme.com").Return([]string{"93.184.216.34"}, nil)

	r := resolver.New(dns, search, nil, resolver.Options{})
	got, err := r.Resolve(context.Background(), "Acme, Inc.")
	require.NoError(t, err)
	require.Equal(t, domain.NewCompanyDomain("acme.com", domain.DomainSourceDirect), got)
}

func TestResolve_DirectGuessByMX(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsresolve.NewMockResolver(ctrl)

	dns.EXPECT().LookupHost(gomock.Any(), "globex.com").Return(nil, nil)
	dns.EXPECT().LookupMX(gomock.Any(), "globex.com").Return([]*net.MX{{Host: "mx.globex.com", Pref: 10}}, nil)

	r := resolver.New(dns, nil, nil, resolver.Options{})
	got, err := r.Resolve(context.Background(), "Globex Corporation")
	require.NoError(t, err)
	require.Equal(t, "globex.com", got.Domain)
	require.Equal(t, domain.DomainSourceDirect, got.Source)
}

func TestResolve_SearchFallbackSkipsAggregators(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsresolve.NewMockResolver(ctrl)
	search := mockwebsearch.NewMockEngine(ctrl)

	dns.EXPECT().LookupHost(gomock.Any(), "initech.com").Return(nil, nil)
	dns.EXPECT().LookupMX(gomock.Any(), "initech.com").Return(nil, nil)
	search.EXPECT().Search(gomock.Any(), "Initech official website").Return([]websearch.Result{
		{URL: "https://www.linkedin.com/company/initech"},
		{URL: "https://en.wikipedia.org/wiki/Initech"},
		{URL: "not a url"},
		{URL: "https://careers.initech.co.uk/jobs"},
		{URL: "https://initech-other.com"},
	}, nil)

	r := resolver.New(dns, search, nil, resolver.Options{})
	got, err := r.Resolve(context.Background(), "Initech")
	require.NoError(t, err)
	require.Equal(t, domain.NewCompanyDomain("initech.co.uk", domain.DomainSourceSearchInferred), got)
}

func TestResolve_ExtraDenylistAndResultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsresolve.NewMockResolver(ctrl)
	search := mockwebsearch.NewMockEngine(ctrl)

	dns.EXPECT().LookupHost(gomock.Any(), gomock.Any()).Return(nil, nil)
	dns.EXPECT().LookupMX(gomock.Any(), gomock.Any()).Return(nil, nil)
	search.EXPECT().Search(gomock.Any(), gomock.Any()).Return([]websearch.Result{
		{URL: "https://companies.example.org/initech"},
		{URL: "https://initech.io"},
	}, nil)

	r := resolver.New(dns, search, nil, resolver.Options{SearchResults: 1, ExtraDenylist: []string{"example.org"}})
	_, err := r.Resolve(context.Background(), "Initech")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolve_SearchFailureIsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsresolve.NewMockResolver(ctrl)
	search := mockwebsearch.NewMockEngine(ctrl)

	dns.EXPECT().LookupHost(gomock.Any(), gomock.Any()).Return(nil, errors.New("servfail"))
	dns.EXPECT().LookupMX(gomock.Any(), gomock.Any()).Return(nil, errors.New("servfail"))
	search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, websearch.ErrBlocked)

	r := resolver.New(dns, search, nil, resolver.Options{})
	_, err := r.Resolve(context.Background(), "Initech")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolve_EmptyName(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := resolver.New(mockdnsresolve.NewMockResolver(ctrl), nil, nil, resolver.Options{})

	_, err := r.Resolve(context.Background(), " ,. ")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestResolveAll_AppendsSuppliedDomains(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsresolve.NewMockResolver(ctrl)
	dns.EXPECT().LookupHost(gomock.Any(), "acme.com").Return([]string{"1.2.3.4"}, nil)

	r := resolver.New(dns, nil, nil, resolver.Options{})
	got, err := r.ResolveAll(context.Background(), "Acme", []string{
		"https://www.Acme.com/", "acme.io", "@acme-labs.dev", "bogus", "acme.io",
	})
	require.NoError(t, err)
	require.Equal(t, []domain.CompanyDomain{
		domain.NewCompanyDomain("acme.com", domain.DomainSourceDirect),
		domain.NewCompanyDomain("acme.io", domain.DomainSourceSupplied),
		domain.NewCompanyDomain("acme-labs.dev", domain.DomainSourceSupplied),
	}, got)
}

func TestResolveAll_OnlyExtras(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := resolver.New(mockdnsresolve.NewMockResolver(ctrl), nil, nil, resolver.Options{})

	got, err := r.ResolveAll(context.Background(), "", []string{"acme.io"})
	require.NoError(t, err)
	require.Equal(t, []domain.CompanyDomain{domain.NewCompanyDomain("acme.io", domain.DomainSourceSupplied)}, got)
}

func TestResolveAll_Unresolvable(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsresolve.NewMockResolver(ctrl)
	dns.EXPECT().LookupHost(gomock.Any(), gomock.Any()).Return(nil, nil)
	dns.EXPECT().LookupMX(gomock.Any(), gomock.Any()).Return(nil, nil)

	r := resolver.New(dns, nil, nil, resolver.Options{})
	_, err := r.ResolveAll(context.Background(), "Nowhere Ltd", nil)
	require.ErrorIs(t, err, serrors.ErrUnresolvable)
}

func TestResolveAll_CanceledIsNotUnresolvable(t *testing.T) {
	ctrl := gomock.NewController(t)
	dns := mockdnsresolve.NewMockResolver(ctrl)
	search := mockwebsearch.NewMockEngine(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dns.EXPECT().LookupHost(gomock.Any(), "acme.com").Return(nil, context.Canceled)
	dns.EXPECT().LookupMX(gomock.Any(), "acme.com").Return(nil, context.Canceled)
	search.EXPECT().Search(gomock.Any(), gomock.Any()).Return(nil, context.Canceled)

	r := resolver.New(dns, search, nil, resolver.Options{})
	_, err := r.ResolveAll(ctx, "Acme", nil)
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, serrors.ErrUnresolvable)
	require.False(t, serrors.Permanent(err))
}
