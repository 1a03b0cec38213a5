package daycount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSplit(t *testing.T) {
	splitter := NewSplitter(zap.NewNop())

	tests := []struct {
		name  string
		start string
		end   string
		year  int
		s1    int
		s2    int
	}{
		{"whole year", "2024-01-01", "2024-12-31", 2024, 180, 180},
		{"spans both semesters", "2024-03-15", "2024-09-10", 2024, 106, 70},
		{"first semester only", "2024-02-01", "2024-05-31", 2024, 120, 0},
		{"second semester only", "2024-08-01", "2024-12-31", 2024, 0, 150},
		{"starts previous year", "2023-10-01", "2024-03-31", 2024, 90, 0},
		{"ends next year", "2024-10-01", "2025-03-31", 2024, 0, 90},
		{"outside reference year", "2023-01-01", "2023-12-31", 2024, 0, 0},
		{"semester boundary", "2024-06-30", "2024-07-01", 2024, 1, 1},
		{"starts on first semester end", "2024-06-30", "2024-12-31", 2024, 1, 180},
		{"ends on second semester start", "2024-01-01", "2024-07-01", 2024, 180, 1},
		{"single day", "2024-04-10", "2024-04-10", 2024, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alloc, err := splitter.Split(Period{Start: date(tt.start), End: date(tt.end)}, tt.year)
			require.NoError(t, err)
			assert.Equal(t, tt.year, alloc.Year)
			assert.Equal(t, tt.s1, alloc.Semester1Days, "semester 1")
			assert.Equal(t, tt.s2, alloc.Semester2Days, "semester 2")
			assert.False(t, alloc.Rescaled)
		})
	}
}

func TestSplitReconcilesWithTotal(t *testing.T) {
	splitter := NewSplitter(nil)

	periods := []Period{
		{Start: date("2024-01-01"), End: date("2024-12-31")},
		{Start: date("2024-01-31"), End: date("2024-12-31")},
		{Start: date("2024-05-31"), End: date("2024-07-31")},
		{Start: date("2024-06-30"), End: date("2024-07-01")},
		{Start: date("2024-02-29"), End: date("2024-08-31")},
	}

	for _, p := range periods {
		alloc, err := splitter.Split(p, 2024)
		require.NoError(t, err)
		total, err := p.Days()
		require.NoError(t, err)
		assert.Equal(t, total, alloc.Total(), "period %s", p)
	}
}

func TestSplitInvalidPeriod(t *testing.T) {
	splitter := NewSplitter(nil)
	_, err := splitter.Split(Period{Start: date("2024-12-31"), End: date("2024-01-01")}, 2024)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestSplitIsIdempotent(t *testing.T) {
	splitter := NewSplitter(nil)
	p := Period{Start: date("2024-03-15"), End: date("2024-09-10")}

	first, err := splitter.Split(p, 2024)
	require.NoError(t, err)
	second, err := splitter.Split(p, 2024)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSplitLogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	splitter := NewSplitter(zap.New(core))

	_, err := splitter.Split(Period{Start: date("2024-01-01"), End: date("2024-12-31")}, 2024)
	require.NoError(t, err)

	entries := logs.FilterMessage("period split by semester").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "daycount.Split", entries[0].ContextMap()["op"])
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}

func TestReconcileAllocationWarnsWhenRescaled(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	splitter := NewSplitter(zap.New(core))
	p := Period{Start: date("2024-01-01"), End: date("2024-12-31")}

	got := splitter.reconcileAllocation(p, 360, SemesterAllocation{Year: 2024, Semester1Days: 200, Semester2Days: 200})

	assert.True(t, got.Rescaled)
	assert.Equal(t, 180, got.Semester1Days)
	assert.Equal(t, 180, got.Semester2Days)
	assert.Equal(t, 2024, got.Year)

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warnings, 1)
	fields := warnings[0].ContextMap()
	assert.Equal(t, "daycount.Split", fields["op"])
	assert.Equal(t, int64(360), fields["total"])
	assert.Equal(t, int64(200), fields["semester1"])
	assert.Equal(t, int64(200), fields["semester2"])
}

func TestReconcileAllocationLeavesConsistentCounts(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	splitter := NewSplitter(zap.New(core))
	p := Period{Start: date("2024-01-01"), End: date("2024-12-31")}
	alloc := SemesterAllocation{Year: 2024, Semester1Days: 180, Semester2Days: 180}

	got := splitter.reconcileAllocation(p, 360, alloc)

	assert.Equal(t, alloc, got)
	assert.Zero(t, logs.Len())
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name         string
		s1, s2       int
		total        int
		wantS1       int
		wantS2       int
		wantRescaled bool
	}{
		{"exact", 180, 180, 360, 180, 180, false},
		{"within one day of slack", 181, 180, 360, 181, 180, false},
		{"overshoot split evenly", 200, 200, 360, 180, 180, true},
		{"overshoot floors first semester", 100, 50, 100, 66, 34, true},
		{"under total untouched", 90, 0, 180, 90, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s1, s2, rescaled := reconcile(tt.s1, tt.s2, tt.total)
			assert.Equal(t, tt.wantS1, s1)
			assert.Equal(t, tt.wantS2, s2)
			assert.Equal(t, tt.wantRescaled, rescaled)
			if rescaled {
				assert.Equal(t, tt.total, s1+s2)
			}
		})
	}
}
