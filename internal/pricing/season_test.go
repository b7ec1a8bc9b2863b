package pricing

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestInSeason(t *testing.T) {
	starts := []time.Time{date(2024, 12, 1)}
	ends := []time.Time{date(2024, 12, 31)}

	tests := []struct {
		name       string
		travelDate time.Time
		starts     []time.Time
		ends       []time.Time
		want       bool
	}{
		{"inside window", date(2024, 12, 15), starts, ends, true},
		{"start boundary inclusive", date(2024, 12, 1), starts, ends, true},
		{"end boundary inclusive", date(2024, 12, 31), starts, ends, true},
		{"day after window", date(2025, 1, 1), starts, ends, false},
		{"day before window", date(2024, 11, 30), starts, ends, false},
		{"zero travel date", time.Time{}, starts, ends, false},
		{"no start dates", date(2024, 12, 15), nil, ends, false},
		{"no end dates", date(2024, 12, 15), starts, nil, false},
		{
			"second of two windows matches",
			date(2025, 5, 10),
			[]time.Time{date(2024, 12, 1), date(2025, 5, 1)},
			[]time.Time{date(2024, 12, 31), date(2025, 5, 31)},
			true,
		},
		{
			"mismatched array lengths walk shared prefix",
			date(2025, 5, 10),
			[]time.Time{date(2024, 12, 1), date(2025, 5, 1)},
			[]time.Time{date(2024, 12, 31)},
			false,
		},
		{
			"zero-valued window entries are skipped",
			date(2024, 12, 15),
			[]time.Time{{}, date(2024, 12, 1)},
			[]time.Time{{}, date(2024, 12, 31)},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InSeason(tt.travelDate, tt.starts, tt.ends); got != tt.want {
				t.Errorf("InSeason() = %v, want %v", got, tt.want)
			}
		})
	}
}
