package challenge

import (
	"time"
)

// Category identifies what kind of response a challenge expects.
type Category string

const (
	CategoryCode         Category = "code"
	CategoryDailyTask    Category = "daily-task"
	CategoryOrganization Category = "organization"
)

// ParseCategory maps a backend category string to a Category. Unknown
// strings come back as-is so callers can still display them.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryCode, CategoryDailyTask, CategoryOrganization:
		return Category(s)
	}
	return Category(s)
}

func (c Category) Known() bool {
	switch c {
	case CategoryCode, CategoryDailyTask, CategoryOrganization:
		return true
	}
	return false
}

// Difficulty is the level plus the time budget for a challenge.
// Levels arrive normalized from the backend as easy|medium|hard.
type Difficulty struct {
	Level     string `json:"level"`
	TimeLimit int    `json:"time_limit"` // minutes
}

// Duration returns the time limit as a time.Duration.
func (d Difficulty) Duration() time.Duration {
	return time.Duration(d.TimeLimit) * time.Minute
}

// FS is the file tree of a code challenge: paths, the file the editor
// should open first, and the starting content per path.
type FS struct {
	Files    []string          `json:"files"`
	Open     string            `json:"open,omitempty"`
	Contents map[string]string `json:"contents"`
}

// Description carries the statement and evaluation metadata.
// Enunciado holds structured context: the original email for
// daily-task challenges, requirements for organization challenges.
type Description struct {
	Text           string         `json:"text"`
	Type           string         `json:"type"` // codigo | texto_livre | planejamento
	Language       string         `json:"language,omitempty"`
	EvalCriteria   []string       `json:"eval_criteria,omitempty"`
	TargetSkill    string         `json:"target_skill,omitempty"`
	AffectedSkills []string       `json:"affected_skills,omitempty"`
	Hints          []string       `json:"hints,omitempty"`
	Enunciado      map[string]any `json:"enunciado,omitempty"`
}

// EmailContent returns the original email text of a daily-task
// challenge, empty when the challenge has none.
func (d Description) EmailContent() string {
	if d.Enunciado == nil {
		return ""
	}
	if s, ok := d.Enunciado["email_content"].(string); ok {
		return s
	}
	return ""
}

// Challenge is one timed exercise as served by the backend.
type Challenge struct {
	ID           int         `json:"id"`
	ProfileID    string      `json:"profile_id"`
	Title        string      `json:"title"`
	Description  Description `json:"description"`
	Difficulty   Difficulty  `json:"difficulty"`
	FS           *FS         `json:"fs,omitempty"`
	Category     Category    `json:"category,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	TemplateCode any         `json:"template_code,omitempty"`
}
