// Package subm assembles challenge responses into the canonical
// submission payload and gates them on minimum-content rules before
// anything touches the network.
package subm

import (
	"github.com/praxis-dev/client/challenge"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Submission is the canonical shape sent to POST /submissions.
// ProfileID is filled in by the API client from the session; builders
// leave it empty.
type Submission struct {
	ProfileID     string  `json:"profile_id"`
	ChallengeID   int     `json:"challenge_id"`
	SubmittedCode Payload `json:"submitted_code"`
	CommitMessage string  `json:"commit_message,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	TimeTakenSec  int     `json:"time_taken_sec"`
}

// BuildCode assembles a code-challenge submission. An empty mainFile
// defaults to the lexicographically first filename; Go maps have no
// insertion order, so the default has to be deterministic rather than
// "first inserted".
func BuildCode(challengeID int, files map[string]string, mainFile string, timeTakenSec int, commitMessage, notes string) Submission {
	if mainFile == "" && len(files) > 0 {
		keys := maps.Keys(files)
		slices.Sort(keys)
		mainFile = keys[0]
	}
	return Submission{
		ChallengeID:   challengeID,
		SubmittedCode: Payload{Code: &CodePayload{Files: files, MainFile: mainFile}},
		CommitMessage: commitMessage,
		Notes:         notes,
		TimeTakenSec:  clampSeconds(timeTakenSec),
	}
}

// BuildTask assembles a daily-task (free text) submission.
func BuildTask(challengeID int, content string, timeTakenSec int, notes string) Submission {
	return Submission{
		ChallengeID:   challengeID,
		SubmittedCode: Payload{FreeText: &FreeTextPayload{Content: content}},
		Notes:         notes,
		TimeTakenSec:  clampSeconds(timeTakenSec),
	}
}

// BuildPlan assembles an organization (planning) submission.
func BuildPlan(challengeID int, sections map[string]string, implementation string, timeTakenSec int, notes string) Submission {
	return Submission{
		ChallengeID:   challengeID,
		SubmittedCode: Payload{Plan: &PlanPayload{Sections: sections, Implementation: implementation}},
		Notes:         notes,
		TimeTakenSec:  clampSeconds(timeTakenSec),
	}
}

func clampSeconds(sec int) int {
	if sec < 0 {
		return 0
	}
	return sec
}

// Category reports which challenge category this submission's payload
// belongs to.
func (s Submission) Category() challenge.Category {
	return s.SubmittedCode.Category()
}
