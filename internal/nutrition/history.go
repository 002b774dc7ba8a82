package nutrition

import (
	"math"

	"github.com/arnold/nutritrack-api/internal/models"
)

// UpsertTotals replaces the totals of the record for date, preserving its
// water, or creates a zero-water record. Returns false without touching the
// map when the stored totals are already structurally equal — callers skip
// persistence in that case. Records for other days are never touched.
func UpsertTotals(history models.HistoryMap, date string, totals models.NutrientData) bool {
	current, exists := history[date]
	if exists && TotalsEqual(current.Totals, totals) {
		return false
	}

	record := models.DailyRecord{Date: date, Totals: totals}
	if exists {
		record.Water = current.Water
	}
	history[date] = record
	return true
}

// AddWater applies a signed delta to the day's water, clamped at zero.
// A missing record is zero-initialized first.
func AddWater(history models.HistoryMap, date string, delta float64) models.DailyRecord {
	record, ok := history[date]
	if !ok {
		record = models.DailyRecord{Date: date, Totals: models.NutrientData{}}
	}
	record.Water = math.Max(0, record.Water+delta)
	history[date] = record
	return record
}

// ResetDay replaces the record for date with an empty one. Other days are
// untouched.
func ResetDay(history models.HistoryMap, date string) {
	history[date] = models.DailyRecord{Date: date, Totals: models.NutrientData{}}
}
