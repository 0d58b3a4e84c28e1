package services

import (
	"errors"
	"fmt"
	"sync"

	"centring-backend/internal/timeutil"
)

var ErrMonthYearRequired = errors.New("please select both month and year")

// SummaryService computes the paid-amount total for a month and year over
// the shared record snapshot, and remembers the last computed total for
// the views that display it.
type SummaryService struct {
	Records *RecordService

	mu        sync.RWMutex
	lastTotal float64
}

func NewSummaryService(records *RecordService) *SummaryService {
	return &SummaryService{Records: records}
}

// YearWindow returns the selectable years: the current year down to 29
// years back.
func (s *SummaryService) YearWindow() []int {
	current := timeutil.Now().Year()
	years := make([]int, 0, 30)
	for y := current; y > current-30; y-- {
		years = append(years, y)
	}
	return years
}

// Compute sums paidAmount over records whose date falls in the given
// month AND year. Both must be selected; zero means not selected.
func (s *SummaryService) Compute(month, year int) (float64, error) {
	if month < 1 || month > 12 || year == 0 {
		return 0, ErrMonthYearRequired
	}

	var total float64
	for _, r := range s.Records.Records() {
		if timeutil.Month(r.Date) == month && timeutil.Year(r.Date) == year {
			total += r.PaidAmount
		}
	}

	s.mu.Lock()
	s.lastTotal = total
	s.mu.Unlock()
	return total, nil
}

// LastTotal returns the most recently computed total.
func (s *SummaryService) LastTotal() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastTotal
}

// DisplayTotal renders a total the way the views show it: rupee symbol
// and a fixed "00" minor-unit suffix. Fractions truncate by display;
// the underlying total keeps its precision.
func DisplayTotal(total float64) string {
	return fmt.Sprintf("₹%d.00", int64(total))
}
