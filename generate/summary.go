package generate

import "github.com/montanaflynn/stats"

// GainSummary describes how many new pairs each accepted case contributed.
type GainSummary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summary computes gain statistics over Diagnostics.Gains. A run without
// accepted cases yields the zero summary.
func (r Result) Summary() (GainSummary, error) {
	if len(r.Diagnostics.Gains) == 0 {
		return GainSummary{}, nil
	}
	data := stats.LoadRawData(r.Diagnostics.Gains)

	var (
		s   = GainSummary{Count: len(data)}
		err error
	)
	if s.Mean, err = stats.Mean(data); err != nil {
		return GainSummary{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return GainSummary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return GainSummary{}, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return GainSummary{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return GainSummary{}, err
	}
	return s, nil
}
