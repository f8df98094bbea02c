package blend

import "github.com/adaptiv-labs/adaptiv/internal/formula"

// PremadeBlend is a pro-built sport blend: a fixed answer set run through
// the same pipeline a quiz taker goes through.
type PremadeBlend struct {
	Name        string
	Description string
	Answers     Answers
}

// Baseline answers for premade blends: a middle-band customer the pipeline
// leaves at 1x before the sport-specific rules kick in.
func neutralAnswers(activity, caffeine string) Answers {
	return Answers{
		AgeBand:     "26–35",
		Gender:      "Other",
		Activity:    activity,
		Bodyweight:  160,
		BetaAlanine: BetaLike,
		Caffeine:    caffeine,
	}
}

// Premade is the storefront's sport blend lineup.
var Premade = []PremadeBlend{
	{
		Name:        "Bodybuilding Mix",
		Description: "Maximum pump and performance.",
		Answers:     neutralAnswers(ActivityBodybuilding, CaffeineHigh),
	},
	{
		Name:        "Powerlifting Mix",
		Description: "Elite focus and intensity.",
		Answers:     neutralAnswers(ActivityPowerlifting, CaffeineVeryHigh),
	},
	{
		Name:        "Gym Bro Mix",
		Description: "Maximize pump and intensity for every workout (excluding leg day)",
		Answers:     neutralAnswers(ActivityGymBro, CaffeineHigh),
	},
	{
		Name:        "Endurance Mix",
		Description: "High in electrolytes with an endurance focus.",
		Answers:     neutralAnswers(ActivityEndurance, CaffeineModerate),
	},
	{
		Name:        "Dunker Mix",
		Description: "High dose vertical power supplements.",
		Answers:     neutralAnswers(ActivityPower, CaffeineHigh),
	},
	{
		Name:        "Soccer Mix",
		Description: "A mix of endurance, speed and power.",
		Answers:     neutralAnswers(ActivityHybrid, CaffeineModerate),
	},
	{
		Name:        "Yoga Mix",
		Description: "Light focus, clean electrolytes, and energy.",
		Answers:     neutralAnswers(ActivityHIIT, CaffeineLow),
	},
	{
		Name:        "HIIT Mix",
		Description: "A moderate mix of power, endurance, and energy.",
		Answers:     neutralAnswers(ActivityHIIT, CaffeineModerate),
	},
}

// Formula computes the blend's adjusted ingredient list.
func (b PremadeBlend) Formula() []formula.Ingredient {
	return AdjustWith(b.Answers, formula.BaseTemplate())
}
