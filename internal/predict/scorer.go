package predict

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/huntwet/huntwet/internal/config"
	"github.com/huntwet/huntwet/internal/history"
	"github.com/huntwet/huntwet/internal/moon"
	"github.com/huntwet/huntwet/internal/signal"
	"github.com/huntwet/huntwet/internal/weather"
)

// Bundle carries the three provider signals for one request. Adapters have
// already absorbed any upstream failure, so every field holds a usable
// value; the provenance flags say which ones were substituted.
type Bundle struct {
	Lunar   moon.Reading
	Weather weather.Reading
	History history.Reading
}

// Factor is one signal's contribution to the composite score.
type Factor struct {
	Score  int    `json:"score"` // 0-100
	Label  string `json:"label"`
	Impact string `json:"impact"`
}

// Factors breaks the composite down per signal.
type Factors struct {
	Moon    Factor `json:"moonPhase"`
	Weather Factor `json:"weather"`
	Season  Factor `json:"season"`
	History Factor `json:"recentActivity"`
}

// SpeciesPrediction is the per-species outlook.
type SpeciesPrediction struct {
	Probability int    `json:"probability"`
	Movement    string `json:"movement"`
	Strategy    string `json:"strategy"`
}

// Species groups the supported game species.
type Species struct {
	Deer   SpeciesPrediction `json:"deer"`
	Turkey SpeciesPrediction `json:"turkey"`
}

// Result is the full prediction for one location and date.
type Result struct {
	ActivityScore   int      `json:"activityScore"`
	ActivityLevel   string   `json:"activityLevel"`
	Confidence      int      `json:"confidence"`
	Degraded        bool     `json:"degraded"`
	Factors         Factors  `json:"factors"`
	Species         Species  `json:"predictions"`
	Recommendations []string `json:"recommendations"`
}

// Scorer combines lunar, weather, season, and history signals into an
// activity prediction. The composite score is fully deterministic for a
// given bundle and date; the injected RNG feeds only confidence jitter and
// the species-probability spread.
type Scorer struct {
	cfg config.Scoring
	mu  sync.Mutex // rand.Rand is not safe for concurrent requests
	rng *rand.Rand
}

func New(cfg config.Scoring, rng *rand.Rand) *Scorer {
	return &Scorer{cfg: cfg, rng: rng}
}

// Sub-score tables. Each maps a raw signal onto [0,1].

// moonScore favors the ends of the lunar cycle: a dark moon pushes feeding
// into daylight, a bright one still beats the middling phases.
func moonScore(illuminationPct float64) float64 {
	switch {
	case illuminationPct <= 25:
		return 0.8
	case illuminationPct >= 75:
		return 0.7
	default:
		return 0.6
	}
}

func tempScore(tempF float64) float64 {
	switch {
	case tempF >= 35 && tempF <= 55:
		return 1.0
	case tempF >= 25 && tempF <= 65:
		return 0.7
	default:
		return 0.4
	}
}

func pressureScore(inHg float64) float64 {
	switch {
	case inHg > 30.0:
		return 0.9
	case inHg < 29.5:
		return 0.3
	default:
		return 0.7
	}
}

func windScore(mph float64) float64 {
	switch {
	case mph <= 12:
		return 0.9
	case mph <= 20:
		return 0.6
	default:
		return 0.3
	}
}

func weatherScore(w weather.Reading) float64 {
	return (tempScore(w.TemperatureF) + pressureScore(w.PressureInHg) + windScore(w.WindMph)) / 3
}

func historyScore(recentHarvestCount int) float64 {
	switch {
	case recentHarvestCount >= 5:
		return 0.9
	case recentHarvestCount >= 2:
		return 0.7
	case recentHarvestCount >= 1:
		return 0.6
	default:
		return 0.4
	}
}

// Score produces the prediction for a date. It never fails: a bundle built
// entirely from defaults still scores, it just comes back degraded with
// confidence pinned low.
func (s *Scorer) Score(date time.Time, b Bundle) Result {
	ms := moonScore(b.Lunar.IlluminationPct)
	ws := weatherScore(b.Weather)
	ss, seasonLabel := seasonFor(date.Month())
	hs := historyScore(b.History.RecentHarvestCount)

	w := s.cfg.Weights
	raw := ms*w.Moon + ws*w.Weather + ss*w.Season + hs*w.History
	score := clamp(int(math.Round(raw*100)), s.cfg.ScoreFloor, s.cfg.ScoreCeiling)

	degraded := b.Lunar.Provenance != signal.Live &&
		b.Weather.Provenance != signal.Live &&
		b.History.Provenance != signal.Live

	return Result{
		ActivityScore:   score,
		ActivityLevel:   s.level(score),
		Confidence:      s.confidence(b, degraded),
		Degraded:        degraded,
		Factors:         s.factors(b, seasonLabel, ms, ws, ss, hs),
		Species:         s.species(score, date.Month(), b.Weather.WindMph),
		Recommendations: recommendations(score, b.Weather.TemperatureF, b.Weather.WindMph, b.Lunar.IlluminationPct),
	}
}

func (s *Scorer) level(score int) string {
	for _, bracket := range s.cfg.Levels {
		if score >= bracket.Min {
			return bracket.Label
		}
	}
	return s.cfg.Levels[len(s.cfg.Levels)-1].Label
}

// confidence communicates data provenance, not statistical certainty:
// 85-95 when every provider answered live, 60-65 once anything fell back,
// flat 60 when nothing did.
func (s *Scorer) confidence(b Bundle, degraded bool) int {
	if degraded {
		return 60
	}
	allLive := b.Lunar.Provenance == signal.Live &&
		b.Weather.Provenance == signal.Live &&
		b.History.Provenance == signal.Live
	if allLive {
		return 85 + s.intn(11)
	}
	return 60 + s.intn(6)
}

func (s *Scorer) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

func (s *Scorer) factors(b Bundle, seasonLabel string, ms, ws, ss, hs float64) Factors {
	return Factors{
		Moon: Factor{
			Score:  int(math.Round(ms * 100)),
			Label:  b.Lunar.PhaseName,
			Impact: moonImpact(b.Lunar.IlluminationPct),
		},
		Weather: Factor{
			Score:  int(math.Round(ws * 100)),
			Label:  b.Weather.Condition,
			Impact: weatherImpact(b.Weather.TemperatureF),
		},
		Season: Factor{
			Score:  int(math.Round(ss * 100)),
			Label:  seasonLabel,
			Impact: seasonImpact(ss),
		},
		History: Factor{
			Score:  int(math.Round(hs * 100)),
			Label:  historyLabel(b.History.RecentHarvestCount),
			Impact: historyImpact(b.History.RecentHarvestCount),
		},
	}
}

// species applies the only post-processing jitter in the pipeline. The
// composite score is already fixed by the time this runs.
func (s *Scorer) species(score int, month time.Month, windMph float64) Species {
	deerProb := clamp(score+s.intn(10)-5, 10, 90)
	turkeyProb := clamp(score-10+s.intn(15), 5, 85)

	return Species{
		Deer: SpeciesPrediction{
			Probability: deerProb,
			Movement:    deerMovement(score),
			Strategy:    deerStrategy(windMph),
		},
		Turkey: SpeciesPrediction{
			Probability: turkeyProb,
			Movement:    turkeyMovement(month),
			Strategy:    turkeyStrategy(month),
		},
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
