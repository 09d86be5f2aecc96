package apistub

import (
	"encoding/json"
	"net/http"

	"github.com/praxis-dev/client/subm"
)

// createSubmission scores deterministically: the point of the stub is
// exercising the wire contract, not grading quality.
func (s *Server) createSubmission(w http.ResponseWriter, r *http.Request) {
	var req subm.Submission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handleError(r, w, newErrInvalidSubmission().SetDebug(err))
		return
	}
	if req.SubmittedCode.Check() != nil {
		handleError(r, w, newErrInvalidSubmission())
		return
	}

	profileID := profileIDFrom(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()

	ch, ok := s.challenges[req.ChallengeID]
	if !ok {
		handleError(r, w, newErrChallengeNotFound())
		return
	}
	if s.submitted[req.ChallengeID] {
		handleError(r, w, newErrSubmissionAlreadyEvaluated())
		return
	}
	s.submitted[req.ChallengeID] = true

	score := scorePayload(req.SubmittedCode)
	submissionID := s.allocID()

	progression := s.applyProgression(profileID, ch.Description.EvalCriteria, score)

	result := subm.Result{
		SubmissionID:      submissionID,
		Status:            "scored",
		Score:             &score,
		Metrics:           map[string]int{},
		Feedback:          "Avaliação simulada: submissão recebida e pontuada pelo ambiente local.",
		SkillsProgression: progression,
		TargetSkill:       ch.Description.TargetSkill,
	}
	for _, criterion := range ch.Description.EvalCriteria {
		result.Metrics[criterion] = score
	}

	writeJson(w, http.StatusOK, result)
}

// scorePayload maps content volume to a stable 40..95 score.
func scorePayload(p subm.Payload) int {
	var length int
	switch {
	case p.Code != nil:
		for _, content := range p.Code.Files {
			length += len(content)
		}
	case p.FreeText != nil:
		length = len(p.FreeText.Content)
	case p.Plan != nil:
		length = len(p.Plan.Implementation)
		for _, text := range p.Plan.Sections {
			length += len(text)
		}
	}
	score := 40 + length/20
	if score > 95 {
		score = 95
	}
	return score
}

// applyProgression bumps each evaluated skill by a delta derived from
// the score and returns the progression block for the response.
// Caller holds s.mu.
func (s *Server) applyProgression(profileID string, skills []string, score int) *subm.SkillsProgression {
	attrs, ok := s.attributes[profileID]
	if !ok || len(skills) == 0 {
		return nil
	}
	delta := (score - 50) / 10
	if delta < 1 {
		delta = 1
	}

	progression := &subm.SkillsProgression{
		SkillsUpdated: skills,
		Deltas:        map[string]int{},
		NewValues:     map[string]int{},
		SkillType:     "tech_skills",
	}
	for _, skill := range skills {
		value := attrs.TechSkills[skill] + delta
		if value > 100 {
			value = 100
		}
		attrs.TechSkills[skill] = value
		progression.Deltas[skill] = delta
		progression.NewValues[skill] = value
	}
	s.attributes[profileID] = attrs
	return progression
}
