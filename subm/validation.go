package subm

import (
	"strings"

	"github.com/praxis-dev/client/challenge"
)

// Minimum-content rules, enforced client-side so an obviously empty
// submission never costs a round trip.
const (
	MinTaskContentLen        = 50
	MinPlanImplementationLen = 100
)

// IsValid reports whether the payload clears the minimum-content bar
// for the given category. The payload variant must also match the
// category; anything unknown is invalid.
func IsValid(cat challenge.Category, p Payload) bool {
	if p.Category() != cat {
		return false
	}
	switch cat {
	case challenge.CategoryCode:
		if len(p.Code.Files) == 0 {
			return false
		}
		for _, content := range p.Code.Files {
			if strings.TrimSpace(content) != "" {
				return true
			}
		}
		return false
	case challenge.CategoryDailyTask:
		return len(strings.TrimSpace(p.FreeText.Content)) >= MinTaskContentLen
	case challenge.CategoryOrganization:
		if len(p.Plan.Sections) == 0 {
			return false
		}
		return len(strings.TrimSpace(p.Plan.Implementation)) >= MinPlanImplementationLen
	}
	return false
}

// ValidationMessage is the sentence shown inline when IsValid fails.
func ValidationMessage(cat challenge.Category) string {
	switch cat {
	case challenge.CategoryCode:
		return "Adicione código em pelo menos um arquivo antes de enviar."
	case challenge.CategoryDailyTask:
		return "Sua resposta precisa ter pelo menos 50 caracteres."
	case challenge.CategoryOrganization:
		return "Preencha as seções do planejamento e detalhe a implementação com pelo menos 100 caracteres."
	}
	return "Preencha sua resposta antes de enviar."
}
