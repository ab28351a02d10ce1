package leveling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name     string
		totalExp int
		want     Stats
	}{
		{"zero", 0, Stats{Level: 1, TotalExp: 0, NextLevelExpReq: 100, ProgressPercentage: 0, Title: TitleApprentice}},
		{"mid first level", 60, Stats{Level: 1, TotalExp: 60, NextLevelExpReq: 100, ProgressPercentage: 60, Title: TitleApprentice}},
		{"level 2 boundary", 100, Stats{Level: 2, TotalExp: 100, NextLevelExpReq: 200, ProgressPercentage: 0, Title: TitleApprentice}},
		{"junior", 200, Stats{Level: 3, TotalExp: 200, NextLevelExpReq: 300, ProgressPercentage: 0, Title: TitleJunior}},
		{"core member", 400, Stats{Level: 5, TotalExp: 400, NextLevelExpReq: 500, ProgressPercentage: 0, Title: TitleCoreMember}},
		{"just below leader", 899, Stats{Level: 9, TotalExp: 899, NextLevelExpReq: 900, ProgressPercentage: 99, Title: TitleCoreMember}},
		{"leader", 900, Stats{Level: 10, TotalExp: 900, NextLevelExpReq: 1000, ProgressPercentage: 0, Title: TitleLeader}},
		{"legendary", 1900, Stats{Level: 20, TotalExp: 1900, NextLevelExpReq: 2000, ProgressPercentage: 0, Title: TitleLegendary}},
		{"far past legendary", 12345, Stats{Level: 124, TotalExp: 12345, NextLevelExpReq: 12400, ProgressPercentage: 45, Title: TitleLegendary}},
		{"negative clamps", -40, Stats{Level: 1, TotalExp: 0, NextLevelExpReq: 100, ProgressPercentage: 0, Title: TitleApprentice}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.totalExp))
		})
	}
}

func TestComputeInvariants(t *testing.T) {
	for exp := 0; exp <= 5000; exp += 7 {
		s := Compute(exp)
		assert.Equal(t, exp/100+1, s.Level)
		assert.Equal(t, exp%100, s.ProgressPercentage)
		assert.Equal(t, s.Level*100, s.NextLevelExpReq)
		assert.Less(t, s.TotalExp, s.NextLevelExpReq)
	}
}

func TestTitleForIsMonotonic(t *testing.T) {
	order := map[string]int{
		TitleApprentice: 0,
		TitleJunior:     1,
		TitleCoreMember: 2,
		TitleLeader:     3,
		TitleLegendary:  4,
	}

	prev := order[TitleFor(1)]
	for level := 2; level <= 30; level++ {
		cur := order[TitleFor(level)]
		assert.GreaterOrEqual(t, cur, prev, "level %d", level)
		prev = cur
	}
}
