package subm

// Result is the backend's evaluation of a submission, returned
// synchronously by POST /submissions.
type Result struct {
	SubmissionID int    `json:"submission_id"`
	Status       string `json:"status"` // sent | evaluating | scored | error

	Score    *int           `json:"score,omitempty"`    // 0..100
	Metrics  map[string]int `json:"metrics,omitempty"`  // criterion -> 0..100
	Feedback string         `json:"feedback,omitempty"` // markdown or plain text

	SkillsProgression *SkillsProgression `json:"skills_progression,omitempty"`

	// Single-skill fields kept by the backend for older clients.
	TargetSkill       string `json:"target_skill,omitempty"`
	DeltaApplied      *int   `json:"delta_applied,omitempty"`
	UpdatedSkillValue *int   `json:"updated_skill_value,omitempty"`
}

// SkillsProgression describes how the evaluation moved each skill.
type SkillsProgression struct {
	SkillsUpdated []string       `json:"skills_updated"`
	Deltas        map[string]int `json:"deltas"`
	NewValues     map[string]int `json:"new_values"`
	SkillType     string         `json:"skill_type"` // tech_skills | soft_skills
}

// Scored reports whether the evaluation completed with a score.
func (r Result) Scored() bool {
	return r.Status == "scored" && r.Score != nil
}
