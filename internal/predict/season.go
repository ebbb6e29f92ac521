package predict

import "time"

// seasonFor maps a calendar month onto a movement score and context label.
// October through December is the rut; July through September game barely
// moves in the heat.
func seasonFor(m time.Month) (float64, string) {
	switch {
	case m >= time.October && m <= time.December:
		return 0.9, "Peak Season (Rut)"
	case m >= time.April && m <= time.June:
		return 0.7, "Spring Season"
	case m >= time.July && m <= time.September:
		return 0.3, "Summer (Low Activity)"
	default:
		return 0.4, "Winter Season"
	}
}

func seasonImpact(score float64) string {
	switch {
	case score >= 0.9:
		return "Peak movement period"
	case score >= 0.7:
		return "Active breeding and feeding"
	case score >= 0.4:
		return "Reduced winter patterns"
	default:
		return "Minimal daytime movement"
	}
}

func isSpring(m time.Month) bool {
	return m >= time.April && m <= time.June
}

func isFall(m time.Month) bool {
	return m >= time.October && m <= time.December
}
