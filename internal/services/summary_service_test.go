package services

import (
	"context"
	"testing"
	"time"

	"centring-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummaryService(t *testing.T, records []*models.TransactionRecord) *SummaryService {
	t.Helper()
	store := &stubStore{records: records}
	svc := newTestService(t, store)
	require.NoError(t, svc.Refresh(context.Background()))
	return NewSummaryService(svc)
}

func TestComputeSumsMatchingMonthAndYear(t *testing.T) {
	svc := newSummaryService(t, []*models.TransactionRecord{
		{ID: "1", Date: "2025-05-14", PaidAmount: 500},
		{ID: "2", Date: "2025-05-20", PaidAmount: 250},
		{ID: "3", Date: "2024-05-20", PaidAmount: 999}, // same month, other year
		{ID: "4", Date: "2025-06-01", PaidAmount: 100}, // same year, other month
	})

	total, err := svc.Compute(5, 2025)
	require.NoError(t, err)
	assert.Equal(t, 750.0, total)
	assert.Equal(t, 750.0, svc.LastTotal())
}

func TestComputeZeroWhenNothingMatches(t *testing.T) {
	svc := newSummaryService(t, []*models.TransactionRecord{
		{ID: "1", Date: "2025-05-14", PaidAmount: 500},
	})

	total, err := svc.Compute(1, 1999)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total)
}

func TestComputeRequiresBothMonthAndYear(t *testing.T) {
	svc := newSummaryService(t, nil)

	_, err := svc.Compute(0, 2025)
	assert.ErrorIs(t, err, ErrMonthYearRequired)

	_, err = svc.Compute(5, 0)
	assert.ErrorIs(t, err, ErrMonthYearRequired)

	_, err = svc.Compute(13, 2025)
	assert.ErrorIs(t, err, ErrMonthYearRequired)
}

func TestYearWindowIsThirtyTrailingYears(t *testing.T) {
	svc := newSummaryService(t, nil)

	years := svc.YearWindow()
	require.Len(t, years, 30)

	current := time.Now().Year()
	assert.Equal(t, current, years[0])
	assert.Equal(t, current-29, years[29])
}

func TestDisplayTotalTruncatesToWholeRupees(t *testing.T) {
	assert.Equal(t, "₹750.00", DisplayTotal(750))
	assert.Equal(t, "₹750.00", DisplayTotal(750.99))
	assert.Equal(t, "₹0.00", DisplayTotal(0))
}
