package format_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"emailfinder/internal/format"
	"emailfinder/pkg/domain"
	mockstorage "emailfinder/pkg/storage/mock"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMemoryMemo(t *testing.T) {
	ctx := context.Background()
	memo := format.NewMemoryMemo()

	_, ok := memo.Get(ctx, "acme.com")
	require.False(t, ok)

	formats := []domain.EmailFormat{domain.FormatFirstDotLast}
	memo.Put(ctx, "acme.com", formats)
	formats[0] = domain.FormatLast

	got, ok := memo.Get(ctx, "acme.com")
	require.True(t, ok)
	require.Equal(t, []domain.EmailFormat{domain.FormatFirstDotLast}, got)

	// empty writes are ignored
	memo.Put(ctx, "acme.com", nil)
	got, ok = memo.Get(ctx, "acme.com")
	require.True(t, ok)
	require.Len(t, got, 1)

	// last writer wins
	memo.Put(ctx, "acme.com", []domain.EmailFormat{domain.FormatFirstInitialLast})
	got, _ = memo.Get(ctx, "acme.com")
	require.Equal(t, []domain.EmailFormat{domain.FormatFirstInitialLast}, got)
}

func TestMemoryMemo_Concurrent(t *testing.T) {
	ctx := context.Background()
	memo := format.NewMemoryMemo()
	all := domain.AssumedFormats()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			memo.Put(ctx, "acme.com", []domain.EmailFormat{all[i%len(all)]})
			_, _ = memo.Get(ctx, "acme.com")
		}()
	}
	wg.Wait()

	got, ok := memo.Get(ctx, "acme.com")
	require.True(t, ok)
	require.Len(t, got, 1)
}

func TestStoreMemo_ReadThrough(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockFormatStorage(ctrl)

	strg.EXPECT().DomainFormat(gomock.Any(), "acme.com").Return(&domain.DomainFormat{
		Domain:  "acme.com",
		Formats: []domain.EmailFormat{domain.FormatFirstDotLast},
		Source:  "search",
	}, nil).Times(1)

	memo := format.NewStoreMemo(strg)

	got, ok := memo.Get(ctx, "acme.com")
	require.True(t, ok)
	require.Equal(t, []domain.EmailFormat{domain.FormatFirstDotLast}, got)

	// served locally the second time
	got, ok = memo.Get(ctx, "acme.com")
	require.True(t, ok)
	require.Equal(t, []domain.EmailFormat{domain.FormatFirstDotLast}, got)
}

func TestStoreMemo_Missing(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockFormatStorage(ctrl)

	strg.EXPECT().DomainFormat(gomock.Any(), "nothing.com").Return(nil, nil)
	strg.EXPECT().DomainFormat(gomock.Any(), "broken.com").Return(nil, errors.New("connection reset"))

	memo := format.NewStoreMemo(strg)

	_, ok := memo.Get(ctx, "nothing.com")
	require.False(t, ok)
	_, ok = memo.Get(ctx, "broken.com")
	require.False(t, ok)
}

func TestStoreMemo_Put(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	strg := mockstorage.NewMockFormatStorage(ctrl)

	strg.EXPECT().StoreDomainFormat(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, f domain.DomainFormat) error {
			require.Equal(t, "acme.com", f.Domain)
			require.Equal(t, []domain.EmailFormat{domain.FormatFirstDotLast}, f.Formats)
			require.Equal(t, "search", f.Source)
			require.False(t, f.UpdatedAt.IsZero())

			return errors.New("read only")
		})

	memo := format.NewStoreMemo(strg)
	memo.Put(ctx, "acme.com", []domain.EmailFormat{domain.FormatFirstDotLast})

	// a storage failure still keeps the local copy
	got, ok := memo.Get(ctx, "acme.com")
	require.True(t, ok)
	require.Equal(t, []domain.EmailFormat{domain.FormatFirstDotLast}, got)
}
