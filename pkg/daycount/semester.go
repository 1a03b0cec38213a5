package daycount

import (
	"fmt"

	"github.com/iwvelando/cesantias/pkg/datetime"
	"go.uber.org/zap"
)

// SemesterAllocation holds the 30/360 days of a period that fall in each
// semester of a reference year.
type SemesterAllocation struct {
	Year          int
	Semester1Days int
	Semester2Days int
	// Rescaled is set when the per-semester counts overshot the period total
	// and had to be redistributed.
	Rescaled bool
}

// Total returns the days allocated across both semesters.
func (a SemesterAllocation) Total() int {
	return a.Semester1Days + a.Semester2Days
}

// Splitter partitions periods into semesters, used for prima de servicios.
type Splitter struct {
	logger *zap.Logger
}

// NewSplitter creates a new splitter with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewSplitter(logger *zap.Logger) *Splitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Splitter{logger: logger}
}

// Split returns how many days of period fall in each semester of
// referenceYear. Days outside the reference year are not allocated.
func (s *Splitter) Split(period Period, referenceYear int) (SemesterAllocation, error) {
	total, err := period.Days()
	if err != nil {
		return SemesterAllocation{}, err
	}

	alloc := SemesterAllocation{Year: referenceYear}
	for semester := 1; semester <= 2; semester++ {
		days, err := semesterDays(period, referenceYear, semester)
		if err != nil {
			return SemesterAllocation{}, err
		}
		if semester == 1 {
			alloc.Semester1Days = days
		} else {
			alloc.Semester2Days = days
		}
	}

	alloc = s.reconcileAllocation(period, total, alloc)

	s.logger.Debug("period split by semester",
		zap.String("op", "daycount.Split"),
		zap.String("period", period.String()),
		zap.Int("year", referenceYear),
		zap.Int("semester1", alloc.Semester1Days),
		zap.Int("semester2", alloc.Semester2Days),
	)
	return alloc, nil
}

// reconcileAllocation applies reconcile to alloc and warns when the counts
// had to be rescaled.
func (s *Splitter) reconcileAllocation(period Period, total int, alloc SemesterAllocation) SemesterAllocation {
	s1, s2, rescaled := reconcile(alloc.Semester1Days, alloc.Semester2Days, total)
	if !rescaled {
		return alloc
	}
	s.logger.Warn("semester day counts exceeded period total, rescaled",
		zap.String("op", "daycount.Split"),
		zap.String("period", period.String()),
		zap.Int("year", alloc.Year),
		zap.Int("total", total),
		zap.Int("semester1", alloc.Semester1Days),
		zap.Int("semester2", alloc.Semester2Days),
	)
	alloc.Semester1Days, alloc.Semester2Days, alloc.Rescaled = s1, s2, true
	return alloc
}

func semesterDays(period Period, year, semester int) (int, error) {
	start, err := datetime.SemesterStart(year, semester)
	if err != nil {
		return 0, err
	}
	end, err := datetime.SemesterEnd(year, semester)
	if err != nil {
		return 0, err
	}

	overlap, ok := period.Intersect(Period{Start: start, End: end})
	if !ok {
		return 0, nil
	}
	days, err := overlap.Days()
	if err != nil {
		return 0, fmt.Errorf("semester %d of %d: %w", semester, year, err)
	}
	return days, nil
}

// reconcile redistributes s1 and s2 proportionally when their sum exceeds the
// period total by more than one day. One day of slack absorbs double counting
// at the semester boundary.
func reconcile(s1, s2, total int) (int, int, bool) {
	sum := s1 + s2
	if sum <= total+1 {
		return s1, s2, false
	}
	scaled := s1 * total / sum
	return scaled, total - scaled, true
}
