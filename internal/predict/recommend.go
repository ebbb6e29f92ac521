package predict

import "time"

// Recommendation rule tables. Each bracket contributes at most one line;
// order is fixed: overall conditions, temperature timing, wind technique,
// moon strategy.

type scoreBracket struct {
	min  int
	text string
}

var overallRules = []scoreBracket{
	{70, "Excellent conditions - plan an all-day hunt"},
	{40, "Decent window - concentrate on prime movement periods"},
	{0, "Slow day expected - hunt food sources with passive techniques"},
}

type floatBracket struct {
	min  float64
	text string
}

// Evaluated high to low; the catch-all carries the ideal-range advice.
var tempRules = []floatBracket{
	{61, "Warm for the season - hunt the first and last hour of light"},
	{40, "Temperatures in the ideal range - dawn and dusk sits will produce"},
	{-999, "Cold snap - deer feed during the warmer midday hours"},
}

var windRules = []floatBracket{
	{21, "High wind - hunt protected draws from elevated stands"},
	{13, "Moderate wind - use natural windbreaks and watch your scent lines"},
	{-999, "Light wind - ground blinds and still hunting are effective"},
}

var moonRules = []struct {
	maxIllum float64
	text     string
}{
	{25, "Dark moon - expect heavy daylight feeding near food sources"},
	{74, "Partial moon - keep to standard dawn and dusk strategies"},
	{100, "Bright moon - night feeding likely, favor midday movement"},
}

func recommendations(score int, tempF, windMph, illuminationPct float64) []string {
	recs := make([]string, 0, 4)

	for _, r := range overallRules {
		if score >= r.min {
			recs = append(recs, r.text)
			break
		}
	}
	for _, r := range tempRules {
		if tempF >= r.min {
			recs = append(recs, r.text)
			break
		}
	}
	for _, r := range windRules {
		if windMph >= r.min {
			recs = append(recs, r.text)
			break
		}
	}
	for _, r := range moonRules {
		if illuminationPct <= r.maxIllum {
			recs = append(recs, r.text)
			break
		}
	}

	return recs
}

func moonImpact(illuminationPct float64) string {
	switch {
	case illuminationPct <= 25:
		return "New Moon - Excellent"
	case illuminationPct >= 75:
		return "Full Moon - Good"
	default:
		return "Partial - Fair"
	}
}

func weatherImpact(tempF float64) string {
	switch {
	case tempF >= 35 && tempF <= 55:
		return "Favorable"
	case tempF > 55:
		return "Too Warm"
	default:
		return "Cold"
	}
}

func historyLabel(count int) string {
	switch {
	case count >= 5:
		return "Heavy recent activity"
	case count >= 2:
		return "Steady recent activity"
	case count >= 1:
		return "Some recent activity"
	default:
		return "Limited recent activity"
	}
}

func historyImpact(count int) string {
	if count >= 2 {
		return "Area is producing"
	}
	return "Sparse local reports"
}

func deerMovement(score int) string {
	switch {
	case score > 70:
		return "High movement expected"
	case score > 50:
		return "Moderate movement"
	default:
		return "Limited movement"
	}
}

func deerStrategy(windMph float64) string {
	if windMph < 10 {
		return "Downwind of bedding areas"
	}
	return "Protected areas with cover"
}

func turkeyMovement(m time.Month) string {
	switch {
	case isSpring(m):
		return "Spring gobbling active"
	case isFall(m):
		return "Fall flocking behavior"
	default:
		return "Normal feeding patterns"
	}
}

func turkeyStrategy(m time.Month) string {
	if isSpring(m) {
		return "Use hen calls at dawn"
	}
	return "Target feeding areas"
}
