// Package leveling turns accumulated task experience into a level and a title.
package leveling

const ExpPerLevel = 100

const (
	TitleApprentice = "apprentice researcher"
	TitleJunior     = "junior engineer"
	TitleCoreMember = "core lab member"
	TitleLeader     = "project leader"
	TitleLegendary  = "legendary engineer"
)

// thresholds are ordered ascending; the last one met wins.
var thresholds = []struct {
	minLevel int
	title    string
}{
	{3, TitleJunior},
	{5, TitleCoreMember},
	{10, TitleLeader},
	{20, TitleLegendary},
}

type Stats struct {
	Level              int    `json:"level"`
	TotalExp           int    `json:"total_exp"`
	NextLevelExpReq    int    `json:"next_level_exp_req"`
	ProgressPercentage int    `json:"progress_percentage"`
	Title              string `json:"title"`
}

// Compute derives the player stats for totalExp. Negative input counts as zero.
func Compute(totalExp int) Stats {
	if totalExp < 0 {
		totalExp = 0
	}

	level := totalExp/ExpPerLevel + 1

	return Stats{
		Level:              level,
		TotalExp:           totalExp,
		NextLevelExpReq:    level * ExpPerLevel,
		ProgressPercentage: totalExp % ExpPerLevel,
		Title:              TitleFor(level),
	}
}

func TitleFor(level int) string {
	title := TitleApprentice
	for _, th := range thresholds {
		if level >= th.minLevel {
			title = th.title
		}
	}
	return title
}
