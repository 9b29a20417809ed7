package domain

type ActivityType string

const (
	ActivityMatch    ActivityType = "match"
	ActivityTraining ActivityType = "training"
	ActivitySleep    ActivityType = "sleep"
	ActivityStrength ActivityType = "strength"
	ActivityPower    ActivityType = "power"
	ActivityRest     ActivityType = "rest"
)

// ValidActivityTypes is the canonical set of accepted activity type strings.
var ValidActivityTypes = map[string]bool{
	"match": true, "training": true, "sleep": true,
	"strength": true, "power": true, "rest": true,
}

// ActivityTypes lists the activity types in display order.
var ActivityTypes = []ActivityType{
	ActivityMatch, ActivityTraining, ActivitySleep,
	ActivityStrength, ActivityPower, ActivityRest,
}

// Valid reports whether t is one of the fixed activity types.
func (t ActivityType) Valid() bool {
	return ValidActivityTypes[string(t)]
}

type Icon string

const (
	IconTrophy     Icon = "trophy"
	IconVolleyball Icon = "volleyball"
	IconMoon       Icon = "moon"
	IconDumbbell   Icon = "dumbbell"
	IconZap        Icon = "zap"
	IconCoffee     Icon = "coffee"
)

// ValidIcons is the canonical set of accepted icon names.
var ValidIcons = map[string]bool{
	"trophy": true, "volleyball": true, "moon": true,
	"dumbbell": true, "zap": true, "coffee": true,
}

// Metric selects one macro series for insights.
type Metric string

const (
	MetricCalories Metric = "calories"
	MetricProtein  Metric = "protein"
	MetricCarbs    Metric = "carbs"
	MetricFat      Metric = "fat"
)

// ValidMetrics is the canonical set of accepted metric strings.
var ValidMetrics = map[string]bool{
	"calories": true, "protein": true, "carbs": true, "fat": true,
}

type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
)

// Days returns the number of calendar days the timeframe covers.
func (t Timeframe) Days() int {
	if t == TimeframeMonth {
		return 30
	}
	return 7
}

// IngredientSource marks where a suggested ingredient comes from.
type IngredientSource string

const (
	SourcePantry IngredientSource = "pantry"
	SourceStore  IngredientSource = "store"
)

// ParseActivityType converts s into an ActivityType, reporting whether it is
// one of the fixed values.
func ParseActivityType(s string) (ActivityType, bool) {
	t := ActivityType(s)
	return t, t.Valid()
}
