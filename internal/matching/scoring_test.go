package matching

import (
	"testing"

	"github.com/hackflow/hackflow-api/internal/models"
	"github.com/stretchr/testify/assert"
)

func skills(pairs ...string) []models.Skill {
	out := make([]models.Skill, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, models.Skill{Name: pairs[i], Level: models.SkillLevel(pairs[i+1])})
	}
	return out
}

func TestSkillCompatibility(t *testing.T) {
	tests := []struct {
		name string
		a, b []models.Skill
		want int
	}{
		{name: "identical", a: skills("Go", "Expert"), b: skills("go", "Beginner"), want: 100},
		{name: "one of three", a: skills("React", "Expert", "Go", "Expert"), b: skills("react", "Expert", "Python", "Expert"), want: 33},
		{name: "disjoint", a: skills("Go", "Expert"), b: skills("Rust", "Expert"), want: 0},
		{name: "left empty", a: nil, b: skills("Go", "Expert"), want: 50},
		{name: "right empty", a: skills("Go", "Expert"), b: nil, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SkillCompatibility(tt.a, tt.b))
		})
	}
}

func TestSkillCompatibility_Range(t *testing.T) {
	roster := Roster()
	for _, a := range roster {
		for _, b := range roster {
			got := SkillCompatibility(a.Skills, b.Skills)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		}
	}
}

func TestTimezoneCompatibility(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{a: "PST", b: "EST", want: 76},
		{a: "IST", b: "GMT", want: 56},
		{a: "PST", b: "JST", want: 0},
		{a: "XYZ", b: "UTC", want: 100},
		{a: "UTC+5:30", b: "ist", want: 100},
		{a: "GMT-3", b: "BRT", want: 100},
		{a: "CET", b: "CET", want: 100},
	}

	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, TimezoneCompatibility(tt.a, tt.b))
		})
	}
}

func TestTimezoneCompatibility_Symmetric(t *testing.T) {
	for a := range utcOffsets {
		assert.Equal(t, 100, TimezoneCompatibility(a, a))
		for b := range utcOffsets {
			assert.Equal(t, TimezoneCompatibility(a, b), TimezoneCompatibility(b, a), "%s/%s", a, b)
		}
	}
}

func TestExperienceCompatibility(t *testing.T) {
	assert.Equal(t, 100, ExperienceCompatibility(skills("Go", "Advanced"), skills("Rust", "Advanced")))
	assert.Equal(t, 50, ExperienceCompatibility(nil, skills("Go", "Expert")))
	assert.Equal(t, 0, ExperienceCompatibility(skills("Go", "Expert"), skills("Go", "Beginner")))
	assert.Equal(t, 33, ExperienceCompatibility(skills("Go", "Advanced"), skills("Go", "Beginner")))

	// decreasing in the gap between averages
	base := skills("Go", "Beginner")
	prev := 101
	for _, level := range []string{"Beginner", "Intermediate", "Advanced", "Expert"} {
		got := ExperienceCompatibility(base, skills("Go", level))
		assert.Less(t, got, prev)
		prev = got
	}
}

func TestInterestCompatibility(t *testing.T) {
	assert.Equal(t, 50, InterestCompatibility(nil, []string{"AI"}))
	assert.Equal(t, 67, InterestCompatibility([]string{"AI", "Web3"}, []string{"ai", "Fintech", "Web3"}))
}

func TestMatchScore(t *testing.T) {
	assert.Equal(t, 100, MatchScore(models.CompatibilityScore{Technical: 100, Timezone: 100, Experience: 100, Interests: 100}))
	assert.Equal(t, 50, MatchScore(models.CompatibilityScore{Technical: 50, Timezone: 50, Experience: 50, Interests: 50}))
	assert.Equal(t, 53, MatchScore(models.CompatibilityScore{Technical: 33, Timezone: 76, Experience: 100, Interests: 0}))
}

func TestLevelOrdinal(t *testing.T) {
	assert.Equal(t, 1, LevelOrdinal(models.LevelBeginner))
	assert.Equal(t, 2, LevelOrdinal(models.LevelIntermediate))
	assert.Equal(t, 3, LevelOrdinal("advanced"))
	assert.Equal(t, 4, LevelOrdinal(models.LevelExpert))
	assert.Equal(t, 1, LevelOrdinal("guru"))
}
