package core

import (
	"sort"

	"github.com/nicknexus/impact/schema"
)

// Build groups the surviving data points by metric and computes one
// cumulative value per metric per calendar day across the resolved domain.
// Totals are computed for every known metric regardless of chart
// granularity; excluded points contribute to neither. The result is a pure
// function of its inputs: no caching, no mutation of the snapshot.
func Build(metrics []schema.Metric, points []schema.DataPoint, res Resolution) schema.SeriesResult {
	totals := make(map[string]float64, len(metrics))
	known := make(map[string]struct{}, len(metrics))
	for _, m := range metrics {
		totals[m.ID] = 0
		known[m.ID] = struct{}{}
	}

	// Partition by the predicate, then group by metric. Points referencing
	// an unknown metric id are dropped; the metrics list is authoritative.
	groups := make(map[string][]schema.DataPoint, len(metrics))
	surviving := 0
	for _, p := range points {
		if _, ok := known[p.MetricID]; !ok {
			continue
		}
		if res.Includes != nil && !res.Includes(p) {
			continue
		}
		groups[p.MetricID] = append(groups[p.MetricID], p)
		totals[p.MetricID] += p.Value
		surviving++
	}

	// Stable sort keeps the original relative order of same-day points so
	// running totals are deterministic for tied effective dates.
	for id := range groups {
		group := groups[id]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].EffectiveDate().Before(group[j].EffectiveDate())
		})
	}

	if !res.Defined() || surviving == 0 {
		return schema.SeriesResult{ChartPoints: []schema.ChartPoint{}, Totals: totals}
	}

	startDay := schema.TruncateToDay(res.Start)
	endDay := schema.TruncateToDay(res.End)

	// One row per day regardless of domain length; a per-metric cursor
	// advances through the pre-sorted groups instead of re-summing.
	cursors := make(map[string]int, len(metrics))
	running := make(map[string]float64, len(metrics))

	chartPoints := make([]schema.ChartPoint, 0, schema.DaysBetween(startDay, endDay))
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		values := make(map[string]float64, len(metrics))
		for _, m := range metrics {
			group := groups[m.ID]
			i := cursors[m.ID]
			for i < len(group) && !group[i].EffectiveDay().After(day) {
				running[m.ID] += group[i].Value
				i++
			}
			cursors[m.ID] = i
			values[m.ID] = running[m.ID]
		}
		chartPoints = append(chartPoints, schema.ChartPoint{
			Label:  schema.FormatDayLabel(day),
			Date:   day,
			Values: values,
		})
	}

	return schema.SeriesResult{ChartPoints: chartPoints, Totals: totals}
}

// SelectVisible returns chart points restricted to the given metric ids.
// This is a display filter applied after Build; color assignment still
// works off the full metrics list, so toggling visibility never
// reshuffles colors. A nil visible slice means "show everything".
func SelectVisible(points []schema.ChartPoint, visible []string) []schema.ChartPoint {
	if visible == nil {
		return points
	}
	keep := make(map[string]struct{}, len(visible))
	for _, id := range visible {
		keep[id] = struct{}{}
	}
	out := make([]schema.ChartPoint, len(points))
	for i, p := range points {
		values := make(map[string]float64, len(keep))
		for id, v := range p.Values {
			if _, ok := keep[id]; ok {
				values[id] = v
			}
		}
		out[i] = schema.ChartPoint{Label: p.Label, Date: p.Date, Values: values}
	}
	return out
}
