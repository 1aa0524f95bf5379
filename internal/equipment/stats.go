package equipment

import "github.com/samber/lo"

// Stats summarises both collections. Averages are zero for an empty collection.
type Stats struct {
	TotalRubbers   int     `json:"totalRubbers"`
	TotalBlades    int     `json:"totalBlades"`
	AvgRubberPrice float64 `json:"avgRubberPrice"`
	AvgBladePrice  float64 `json:"avgBladePrice"`
}

func ComputeStats(rubbers []Rubber, blades []Blade) Stats {
	return Stats{
		TotalRubbers:   len(rubbers),
		TotalBlades:    len(blades),
		AvgRubberPrice: lo.MeanBy(rubbers, func(r Rubber) float64 { return r.Price }),
		AvgBladePrice:  lo.MeanBy(blades, func(b Blade) float64 { return b.Price }),
	}
}
