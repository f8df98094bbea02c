package blend

import "strconv"

// Answers is the typed form of a completed quiz. The quiz UI submits answers
// as a positionally ordered string array; ParseAnswers is the only place
// that ordering is known, so the dosage rules never depend on it.
type Answers struct {
	AgeBand     string
	Gender      string
	Activity    string
	Bodyweight  int // lbs, 0 when absent or unparseable
	WorkoutTime string
	BetaAlanine string
	Caffeine    string
	Flavor      string
}

// Quiz option values. The dosage rules match on these exact strings.
const (
	ActivityEndurance    = "Endurance Sports (Running, Cycling, Swimming)"
	ActivityPower        = "Power Sports (Football, Wrestling)"
	ActivityHybrid       = "Hybrid Sports (Basketball, Soccer)"
	ActivityBodybuilding = "Bodybuilding"
	ActivityPowerlifting = "Powerlifting"
	ActivityHIIT         = "HIIT / Weightlifting"
	ActivityGymBro       = "Gym Bro Mix"

	BetaMore    = "I dont feel my pre anymore"
	BetaLike    = "I like it"
	BetaOK      = "Its ok"
	BetaDislike = "Don't like it"

	CaffeineVeryHigh = "Very High"
	CaffeineHigh     = "High"
	CaffeineModerate = "Moderate"
	CaffeineLow      = "Low"
	CaffeineStimFree = "Stim Free"
)

// Bodyweight answers outside this range are rejected by the quiz UI; the
// pipeline treats anything unparseable as "no adjustment".
const (
	MinBodyweight = 80
	MaxBodyweight = 500
)

// ParseAnswers decodes the positional answer array. A short or missing
// array returns ok=false and callers leave the base template unadjusted.
// An eight-element array carries the flavor last and the caffeine
// preference before it; a seven-element array ends with the caffeine
// preference.
func ParseAnswers(raw []string) (Answers, bool) {
	if len(raw) < 7 {
		return Answers{}, false
	}

	a := Answers{
		AgeBand:     raw[0],
		Gender:      raw[1],
		Activity:    raw[2],
		WorkoutTime: raw[4],
		BetaAlanine: raw[5],
	}
	if len(raw) >= 8 {
		a.Caffeine = raw[6]
		a.Flavor = raw[7]
	} else {
		a.Caffeine = raw[len(raw)-1]
	}

	if w, err := strconv.Atoi(raw[3]); err == nil && w >= MinBodyweight && w <= MaxBodyweight {
		a.Bodyweight = w
	}
	return a, true
}
