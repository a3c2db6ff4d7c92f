package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	catalogMocks "github.com/facturio/invoice-price-alerts/internal/catalog/mocks"
	storeMocks "github.com/facturio/invoice-price-alerts/internal/store/mocks"
	domain "github.com/facturio/invoice-price-alerts/pkg/types"
)

func TestNewScheduler_RegistersCronEntries(t *testing.T) {
	t.Parallel()

	t.Run("with catalog", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		mc := catalogMocks.NewMockCatalog(t)
		a := NewAnalyzer(ms, mc, WithLogger(quietLogger()))

		sched, err := NewScheduler(a, ms, 15*time.Minute, 5*time.Minute, quietLogger())
		require.NoError(t, err)
		assert.Len(t, sched.Entries(), 2)
	})

	t.Run("without catalog skips refresh job", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		a := NewAnalyzer(ms, nil, WithLogger(quietLogger()))

		sched, err := NewScheduler(a, ms, 15*time.Minute, 5*time.Minute, quietLogger())
		require.NoError(t, err)
		assert.Len(t, sched.Entries(), 1)
	})
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	a := NewAnalyzer(ms, nil, WithLogger(quietLogger()))

	sched, err := NewScheduler(a, ms, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_CatalogRefreshRecordsJobRun(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		mc := catalogMocks.NewMockCatalog(t)

		mc.EXPECT().ListProducts(mock.Anything).Return([]domain.ProductRecord{
			{ID: "cat-1", Name: "Tuerca M8", Price: 3.2, Source: domain.SourceCatalog},
		}, nil).Once()
		ms.EXPECT().InsertJobRun(mock.Anything, JobCatalogRefresh).Return("run-1", nil).Once()
		ms.EXPECT().CompleteJobRun(mock.Anything, "run-1", "success", "", 1).Return(nil).Once()

		a := NewAnalyzer(ms, mc, WithLogger(quietLogger()))
		sched, err := NewScheduler(a, ms, time.Hour, time.Hour, quietLogger())
		require.NoError(t, err)

		sched.runCatalogRefresh()
	})

	t.Run("failure recorded with error text", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		mc := catalogMocks.NewMockCatalog(t)

		mc.EXPECT().ListProducts(mock.Anything).Return(nil, errors.New("gateway timeout")).Once()
		ms.EXPECT().InsertJobRun(mock.Anything, JobCatalogRefresh).Return("run-2", nil).Once()
		ms.EXPECT().CompleteJobRun(mock.Anything, "run-2", "error", "gateway timeout", 0).
			Return(nil).Once()

		a := NewAnalyzer(ms, mc, WithLogger(quietLogger()))
		sched, err := NewScheduler(a, ms, time.Hour, time.Hour, quietLogger())
		require.NoError(t, err)

		sched.runCatalogRefresh()
	})
}

func TestScheduler_ConfigReloadRecordsJobRun(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	stored := domain.DefaultAlertConfig()
	stored.NormalDiscountPct = 20.0

	ms.EXPECT().InsertJobRun(mock.Anything, JobConfigReload).Return("run-3", nil).Once()
	ms.EXPECT().GetAlertConfig(mock.Anything).Return(&stored, nil).Once()
	ms.EXPECT().CompleteJobRun(mock.Anything, "run-3", "success", "", 1).Return(nil).Once()

	a := NewAnalyzer(ms, nil, WithLogger(quietLogger()))
	sched, err := NewScheduler(a, ms, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	sched.runConfigReload()
	assert.InDelta(t, 20.0, a.Config().NormalDiscountPct, 0.001)
}

func TestScheduler_LedgerFailureDoesNotBlockJob(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	stored := domain.DefaultAlertConfig()

	ms.EXPECT().InsertJobRun(mock.Anything, JobConfigReload).
		Return("", errors.New("connection lost")).Once()
	ms.EXPECT().GetAlertConfig(mock.Anything).Return(&stored, nil).Once()

	a := NewAnalyzer(ms, nil, WithLogger(quietLogger()))
	sched, err := NewScheduler(a, ms, time.Hour, time.Hour, quietLogger())
	require.NoError(t, err)

	// CompleteJobRun must not be called when the run was never recorded.
	sched.runConfigReload()
}
