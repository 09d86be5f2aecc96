// Package profile holds the user-facing account data shown on the
// dashboard: identity, skill attributes and uploaded resumes.
package profile

import (
	"time"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Profile struct {
	ID       string `json:"id"` // identity provider UUID
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// Attributes are the skill maps behind the dashboard's skill bars.
// Values are percentages, 0..100. StrongSkills is the subset of
// TechSkills the user already masters.
type Attributes struct {
	ProfileID    string         `json:"profile_id"`
	CareerGoal   string         `json:"career_goal,omitempty"`
	TechSkills   map[string]int `json:"tech_skills"`
	StrongSkills map[string]int `json:"strong_skills"`
	SoftSkills   map[string]int `json:"soft_skills"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

// AttributesPatch is a partial update: nil fields are left untouched.
type AttributesPatch struct {
	CareerGoal   *string        `json:"career_goal,omitempty"`
	TechSkills   map[string]int `json:"tech_skills,omitempty"`
	StrongSkills map[string]int `json:"strong_skills,omitempty"`
	SoftSkills   map[string]int `json:"soft_skills,omitempty"`
}

// SkillBar is one row of the dashboard chart.
type SkillBar struct {
	Name    string
	Percent int
}

// Bars flattens a skill map into rows sorted by descending percentage
// (ties broken by name) with values clamped to 0..100.
func Bars(skills map[string]int) []SkillBar {
	names := maps.Keys(skills)
	slices.Sort(names)
	bars := make([]SkillBar, 0, len(names))
	for _, name := range names {
		bars = append(bars, SkillBar{Name: name, Percent: clamp(skills[name])})
	}
	slices.SortStableFunc(bars, func(a, b SkillBar) int {
		return b.Percent - a.Percent
	})
	return bars
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

type Resume struct {
	ID              int       `json:"id"`
	ProfileID       string    `json:"profile_id"`
	Title           string    `json:"title"`
	OriginalContent string    `json:"original_content"`
	CreatedAt       time.Time `json:"created_at"`
	HasAnalysis     bool      `json:"has_analysis"`

	OriginalFilename string `json:"original_filename,omitempty"`
	FileType         string `json:"file_type,omitempty"`
	FileSizeBytes    int    `json:"file_size_bytes,omitempty"`
}
