package lookup_test

import (
	"context"
	"errors"
	"testing"
	"time"

	mockfinder "emailfinder/internal/finder/mock"
	"emailfinder/internal/lookup"
	"emailfinder/pkg/domain"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/serrors"
	"emailfinder/pkg/storage"
	mockstorage "emailfinder/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var johnDoe = domain.PersonQuery{
	FirstName: " John ",
	LastName:  "Doe",
	Company:   "Acme",
}

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, lookup.Service) {
	t.Helper()

	ctrl, st, _, s := newTestServiceWithFinder(t)

	return ctrl, st, s
}

func newTestServiceWithFinder(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, *mockfinder.MockFinder, lookup.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	f := mockfinder.NewMockFinder(ctrl)
	s := lookup.New(st, f, lookup.Options{MaxAttempts: 3, ResultCacheTTL: time.Hour})

	return ctrl, st, f, s
}

// expectWithTx wires Storage.WithTx to run its callback with a MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

func storeEcho(_ context.Context, lookups ...domain.Lookup) ([]domain.Lookup, error) {
	ret := append([]domain.Lookup(nil), lookups...)
	ret[0].ID = domain.LookupID(uuid.New())

	return ret, nil
}

func TestService_Enqueue_JobAdded(t *testing.T) {
	ctrl, st, s := newTestService(t)
	key := lookup.Key(domain.PersonQuery{FirstName: "John", LastName: "Doe", Company: "Acme"})

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLookups(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, lookups ...domain.Lookup) ([]domain.Lookup, error) {
				require.Len(t, lookups, 1)
				require.Equal(t, key, lookups[0].Key)
				require.Equal(t, "John", lookups[0].Query.FirstName)
				require.Equal(t, domain.LookupStatusPending, lookups[0].Status)

				return storeEcho(ctx, lookups...)
			},
		)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, args lookup.JobArgs, _ any) (bool, error) {
				require.Equal(t, key, args.Key)
				require.Equal(t, "FindEmailsJob", args.Kind())
				opts := args.InsertOpts()
				require.Equal(t, 3, opts.MaxAttempts)
				require.True(t, opts.UniqueOpts.ByArgs)
				require.Equal(t, time.Hour, opts.UniqueOpts.ByPeriod)

				return true, nil
			},
		)
	})

	l, err := s.Enqueue(context.Background(), domain.UserID{}, johnDoe)
	require.NoError(t, err)
	require.NotNil(t, l)
	require.Equal(t, domain.LookupStatusPending, l.Status)
}

func TestService_Enqueue_UsesLastCompletedResult(t *testing.T) {
	ctrl, st, s := newTestService(t)

	completed := domain.Lookup{
		Status: domain.LookupStatusCompleted,
		Result: domain.FindResult{Emails: []domain.ScoredResult{{Email: "john.doe@acme.com"}}},
	}

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLookups(gomock.Any(), gomock.Any()).DoAndReturn(storeEcho)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedLookupByKey(gomock.Any(), gomock.Any()).Return(&completed, nil)
		tx.EXPECT().UpdateLookupByID(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.LookupID, updates storage.LookupUpdates) (*domain.Lookup, error) {
				require.Equal(t, domain.LookupStatusCompleted, updates.Status)
				require.NotNil(t, updates.Result)

				return &domain.Lookup{Status: domain.LookupStatusCompleted, Result: *updates.Result}, nil
			},
		)
	})

	l, err := s.Enqueue(context.Background(), domain.UserID{}, johnDoe)
	require.NoError(t, err)
	require.Equal(t, domain.LookupStatusCompleted, l.Status)
	require.Equal(t, "john.doe@acme.com", l.Result.Emails[0].Email)
}

func TestService_Enqueue_PendingWhenJobExistsWithoutResult(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLookups(gomock.Any(), gomock.Any()).DoAndReturn(storeEcho)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedLookupByKey(gomock.Any(), gomock.Any()).Return(nil, nil)
	})

	l, err := s.Enqueue(context.Background(), domain.UserID{}, johnDoe)
	require.NoError(t, err)
	require.Equal(t, domain.LookupStatusPending, l.Status)
}

func TestService_Enqueue_InvalidQuery(t *testing.T) {
	_, st, s := newTestService(t)
	st.EXPECT().WithTx(gomock.Any(), gomock.Any()).Times(0)

	cases := []domain.PersonQuery{
		{FirstName: "", LastName: "Doe", Company: "Acme"},
		{FirstName: "John", LastName: "!!", Company: "Acme"},
		{FirstName: "John", LastName: "Doe"},
		{FirstName: "John", LastName: "Doe", ExtraDomains: []string{" "}},
	}
	for _, q := range cases {
		_, err := s.Enqueue(context.Background(), domain.UserID{}, q)
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	}
}

func TestService_Enqueue_PropagatesErrors(t *testing.T) {
	ctrl, st, s := newTestService(t)
	ctx := context.Background()

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLookups(gomock.Any(), gomock.Any()).Return(nil, errors.New("store err"))
	})
	_, err := s.Enqueue(ctx, domain.UserID{}, johnDoe)
	require.ErrorContains(t, err, "store err")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLookups(gomock.Any(), gomock.Any()).DoAndReturn(storeEcho)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("add err"))
	})
	_, err = s.Enqueue(ctx, domain.UserID{}, johnDoe)
	require.ErrorContains(t, err, "add err")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLookups(gomock.Any(), gomock.Any()).DoAndReturn(storeEcho)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedLookupByKey(gomock.Any(), gomock.Any()).Return(nil, errors.New("last err"))
	})
	_, err = s.Enqueue(ctx, domain.UserID{}, johnDoe)
	require.ErrorContains(t, err, "last err")

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().StoreLookups(gomock.Any(), gomock.Any()).DoAndReturn(storeEcho)
		tx.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)
		tx.EXPECT().LastCompletedLookupByKey(gomock.Any(), gomock.Any()).Return(&domain.Lookup{}, nil)
		tx.EXPECT().UpdateLookupByID(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("update err"))
	})
	_, err = s.Enqueue(ctx, domain.UserID{}, johnDoe)
	require.ErrorContains(t, err, "update err")
}

func TestService_UserLookups(t *testing.T) {
	_, st, s := newTestService(t)
	userID := domain.UserID(uuid.New())
	cursorTime := time.Now().Add(-time.Hour).UTC().Truncate(time.Second)
	nextTime := cursorTime.Add(-time.Minute)

	st.EXPECT().UserLookups(gomock.Any(), userID, domain.LookupStatusCompleted, cursorTime, uint(10)).
		Return(storage.UserLookups{
			Lookups:    []domain.Lookup{{Key: "k"}},
			NextCursor: &nextTime,
		}, nil)

	lookups, next, err := s.UserLookups(context.Background(), userID,
		domain.LookupStatusCompleted, cursorTime.Format(time.RFC3339), 10)
	require.NoError(t, err)
	require.Len(t, lookups, 1)
	require.Equal(t, nextTime.Format(time.RFC3339Nano), next)

	st.EXPECT().UserLookups(gomock.Any(), userID, domain.LookupStatus(""), time.Time{}, uint(5)).
		Return(storage.UserLookups{}, nil)
	_, next, err = s.UserLookups(context.Background(), userID, "", "", 5)
	require.NoError(t, err)
	require.Empty(t, next)
}

func TestService_UserLookups_InvalidCursor(t *testing.T) {
	_, _, s := newTestService(t)

	_, _, err := s.UserLookups(context.Background(), domain.UserID{}, "", "not-a-time", 5)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Result(t *testing.T) {
	_, st, s := newTestService(t)
	userID := domain.UserID{}
	id := domain.LookupID{}

	st.EXPECT().LookupByID(gomock.Any(), userID, id).Return(&domain.Lookup{Key: "k"}, nil)
	l, err := s.Result(context.Background(), userID, id)
	require.NoError(t, err)
	require.Equal(t, "k", l.Key)

	st.EXPECT().LookupByID(gomock.Any(), userID, id).Return(nil, nil)
	_, err = s.Result(context.Background(), userID, id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	st.EXPECT().LookupByID(gomock.Any(), userID, id).Return(nil, errors.New("boom"))
	_, err = s.Result(context.Background(), userID, id)
	require.Error(t, err)
}

func TestService_Delete(t *testing.T) {
	_, st, s := newTestService(t)
	userID := domain.UserID{}
	id := domain.LookupID{}

	st.EXPECT().DeleteLookup(gomock.Any(), userID, id).Return(&domain.Lookup{}, nil)
	require.NoError(t, s.Delete(context.Background(), userID, id))

	st.EXPECT().DeleteLookup(gomock.Any(), userID, id).Return(nil, nil)
	require.ErrorIs(t, s.Delete(context.Background(), userID, id), serrors.ErrNotFound)

	st.EXPECT().DeleteLookup(gomock.Any(), userID, id).Return(nil, errors.New("boom"))
	require.Error(t, s.Delete(context.Background(), userID, id))
}

func TestService_Run_Completes(t *testing.T) {
	_, st, f, s := newTestServiceWithFinder(t)
	args := lookup.JobArgs{Key: "k", Query: johnDoe}
	res := &domain.FindResult{Emails: []domain.ScoredResult{{Email: "john.doe@acme.com"}}}

	st.EXPECT().PendingLookupCountByKey(gomock.Any(), "k").Return(int64(2), nil)
	f.EXPECT().Find(gomock.Any(), johnDoe).Return(res, nil)
	st.EXPECT().UpdatePendingLookupsByKey(gomock.Any(), "k", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.LookupUpdates) error {
			require.Equal(t, domain.LookupStatusCompleted, updates.Status)
			require.Same(t, res, updates.Result)
			require.NotNil(t, updates.LastError)
			require.Empty(t, *updates.LastError)

			return nil
		})

	require.NoError(t, s.Run(context.Background(), args))
}

func TestService_Run_SkipsWithoutPending(t *testing.T) {
	_, st, f, s := newTestServiceWithFinder(t)

	st.EXPECT().PendingLookupCountByKey(gomock.Any(), "k").Return(int64(0), nil)
	f.EXPECT().Find(gomock.Any(), gomock.Any()).Times(0)

	require.NoError(t, s.Run(context.Background(), lookup.JobArgs{Key: "k", Query: johnDoe}))
}

func TestService_Run_Unresolvable(t *testing.T) {
	_, st, f, s := newTestServiceWithFinder(t)

	st.EXPECT().PendingLookupCountByKey(gomock.Any(), "k").Return(int64(1), nil)
	f.EXPECT().Find(gomock.Any(), johnDoe).Return(nil, serrors.With(serrors.ErrUnresolvable, "no domain"))
	st.EXPECT().UpdatePendingLookupsByKey(gomock.Any(), "k", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.LookupUpdates) error {
			require.Equal(t, domain.LookupStatusFailed, updates.Status)
			require.Zero(t, updates.MaxAttempts)
			require.Equal(t, "no domain", *updates.LastError)

			return nil
		})

	err := s.Run(context.Background(), lookup.JobArgs{Key: "k", Query: johnDoe})
	require.ErrorIs(t, err, serrors.ErrUnresolvable)
}

func TestService_Run_TransientFailure(t *testing.T) {
	_, st, f, s := newTestServiceWithFinder(t)

	st.EXPECT().PendingLookupCountByKey(gomock.Any(), "k").Return(int64(1), nil)
	f.EXPECT().Find(gomock.Any(), johnDoe).Return(nil, errors.New("database gone"))
	st.EXPECT().UpdatePendingLookupsByKey(gomock.Any(), "k", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.LookupUpdates) error {
			require.Equal(t, domain.LookupStatusFailed, updates.Status)
			require.Equal(t, 3, updates.MaxAttempts)

			return errors.New("also gone")
		})

	err := s.Run(context.Background(), lookup.JobArgs{Key: "k", Query: johnDoe})
	require.ErrorContains(t, err, "database gone")
}

func TestService_Run_CountError(t *testing.T) {
	_, st, _, s := newTestServiceWithFinder(t)

	st.EXPECT().PendingLookupCountByKey(gomock.Any(), "k").Return(int64(0), errors.New("boom"))

	require.Error(t, s.Run(context.Background(), lookup.JobArgs{Key: "k"}))
}

func TestService_Run_InterruptedLeavesLookupsPending(t *testing.T) {
	_, st, f, s := newTestServiceWithFinder(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st.EXPECT().PendingLookupCountByKey(gomock.Any(), "k").Return(int64(1), nil)
	f.EXPECT().Find(gomock.Any(), johnDoe).DoAndReturn(func(ctx context.Context, _ domain.PersonQuery) (*domain.FindResult, error) {
		cancel()

		return nil, ctx.Err()
	})
	st.EXPECT().UpdatePendingLookupsByKey(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := s.Run(ctx, lookup.JobArgs{Key: "k", Query: johnDoe})
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, serrors.Permanent(err))
}
