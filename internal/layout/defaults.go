package layout

// Card ids of the dashboard grid.
const (
	CardRiskDist          = "riskDist"
	CardWeeklyTrend       = "weeklyTrend"
	CardStressIndicators  = "stressIndicators"
	CardFeatureImportance = "featureImportance"
	CardAtRiskTable       = "atRiskTable"
)

// defaultLayouts is never handed out directly; Defaults returns copies.
var defaultLayouts = Layouts{
	LG: {
		{ID: CardRiskDist, X: 0, Y: 0, W: 3, H: 4, MinW: 3, MinH: 4},
		{ID: CardWeeklyTrend, X: 3, Y: 0, W: 9, H: 4, MinW: 4, MinH: 4},
		{ID: CardStressIndicators, X: 0, Y: 4, W: 6, H: 3, MinW: 4, MinH: 3},
		{ID: CardFeatureImportance, X: 6, Y: 4, W: 6, H: 3, MinW: 4, MinH: 3},
		{ID: CardAtRiskTable, X: 0, Y: 7, W: 12, H: 4, MinW: 8, MinH: 4},
	},
	MD: {
		{ID: CardRiskDist, X: 0, Y: 0, W: 3, H: 4, MinW: 3, MinH: 4},
		{ID: CardWeeklyTrend, X: 3, Y: 0, W: 7, H: 4, MinW: 4, MinH: 4},
		{ID: CardStressIndicators, X: 0, Y: 4, W: 5, H: 3, MinW: 4, MinH: 3},
		{ID: CardFeatureImportance, X: 5, Y: 4, W: 5, H: 3, MinW: 4, MinH: 3},
		{ID: CardAtRiskTable, X: 0, Y: 7, W: 10, H: 4, MinW: 8, MinH: 4},
	},
	SM: {
		{ID: CardRiskDist, X: 0, Y: 0, W: 3, H: 4, MinW: 2, MinH: 4},
		{ID: CardWeeklyTrend, X: 3, Y: 0, W: 3, H: 4, MinW: 3, MinH: 4},
		{ID: CardStressIndicators, X: 0, Y: 4, W: 6, H: 3, MinW: 4, MinH: 3},
		{ID: CardFeatureImportance, X: 0, Y: 7, W: 6, H: 3, MinW: 4, MinH: 3},
		{ID: CardAtRiskTable, X: 0, Y: 10, W: 6, H: 4, MinW: 4, MinH: 4},
	},
	XS: {
		{ID: CardRiskDist, X: 0, Y: 0, W: 4, H: 4, MinW: 4, MinH: 4},
		{ID: CardWeeklyTrend, X: 0, Y: 4, W: 4, H: 4, MinW: 4, MinH: 4},
		{ID: CardStressIndicators, X: 0, Y: 8, W: 4, H: 3, MinW: 4, MinH: 3},
		{ID: CardFeatureImportance, X: 0, Y: 11, W: 4, H: 3, MinW: 4, MinH: 3},
		{ID: CardAtRiskTable, X: 0, Y: 14, W: 4, H: 5, MinW: 4, MinH: 4},
	},
	XXS: {
		{ID: CardRiskDist, X: 0, Y: 0, W: 2, H: 4, MinW: 2, MinH: 4},
		{ID: CardWeeklyTrend, X: 0, Y: 4, W: 2, H: 4, MinW: 2, MinH: 4},
		{ID: CardStressIndicators, X: 0, Y: 8, W: 2, H: 3, MinW: 2, MinH: 3},
		{ID: CardFeatureImportance, X: 0, Y: 11, W: 2, H: 3, MinW: 2, MinH: 3},
		{ID: CardAtRiskTable, X: 0, Y: 14, W: 2, H: 6, MinW: 2, MinH: 4},
	},
}

// Defaults returns a fresh deep copy of the initial layouts.
func Defaults() Layouts {
	return defaultLayouts.Clone()
}
