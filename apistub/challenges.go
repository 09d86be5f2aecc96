package apistub

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/praxis-dev/client/challenge"
)

// One canned challenge per category, personalized only by ID and
// owner. Content mirrors the shape the generator service produces.
func (s *Server) generateChallenges(w http.ResponseWriter, r *http.Request) {
	profileID := profileIDFrom(r.Context())

	s.mu.Lock()
	generated := []challenge.Challenge{
		s.seedCodeChallenge(profileID),
		s.seedDailyTaskChallenge(profileID),
		s.seedOrganizationChallenge(profileID),
	}
	ids := make([]int, len(generated))
	for i, ch := range generated {
		s.challenges[ch.ID] = ch
		ids[i] = ch.ID
	}
	s.activeByPID[profileID] = append(ids, s.activeByPID[profileID]...)
	s.mu.Unlock()

	writeJson(w, http.StatusOK, generated)
}

func (s *Server) listActiveChallenges(w http.ResponseWriter, r *http.Request) {
	profileID := profileIDFrom(r.Context())
	limit := 3
	if v := r.URL.Query().Get("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err == nil && parsed >= 1 && parsed <= 10 {
			limit = parsed
		}
	}

	s.mu.Lock()
	active := []challenge.Challenge{}
	for _, id := range s.activeByPID[profileID] {
		if len(active) == limit {
			break
		}
		if ch, ok := s.challenges[id]; ok && !s.submitted[id] {
			active = append(active, ch)
		}
	}
	s.mu.Unlock()

	writeJson(w, http.StatusOK, active)
}

func (s *Server) getChallenge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "challengeID"))
	if err != nil {
		handleError(r, w, newErrChallengeNotFound())
		return
	}

	s.mu.Lock()
	ch, ok := s.challenges[id]
	s.mu.Unlock()
	if !ok {
		handleError(r, w, newErrChallengeNotFound())
		return
	}
	writeJson(w, http.StatusOK, ch)
}

func (s *Server) seedCodeChallenge(profileID string) challenge.Challenge {
	id := s.allocID()
	return challenge.Challenge{
		ID:        id,
		ProfileID: profileID,
		Title:     fmt.Sprintf("Bug no endpoint de login (#%d)", id),
		Category:  challenge.CategoryCode,
		Description: challenge.Description{
			Text:         "E aí! O endpoint de login tá aceitando email sem @. Dá uma olhada na validação e corrige antes do deploy de sexta.",
			Type:         "codigo",
			Language:     "python",
			EvalCriteria: []string{"FastAPI", "Validação de dados", "Tratamento de erros"},
			TargetSkill:  "FastAPI",
			Hints:        []string{"Use EmailStr do pydantic", "HTTPException(status_code=400)"},
		},
		Difficulty: challenge.Difficulty{Level: "medium", TimeLimit: 45},
		FS: &challenge.FS{
			Files: []string{"app/main.py"},
			Open:  "app/main.py",
			Contents: map[string]string{
				"app/main.py": "def login(email: str, password: str):\n    # TODO: validar email\n    return {\"ok\": True}\n",
			},
		},
		CreatedAt: time.Now().UTC(),
	}
}

func (s *Server) seedDailyTaskChallenge(profileID string) challenge.Challenge {
	id := s.allocID()
	return challenge.Challenge{
		ID:        id,
		ProfileID: profileID,
		Title:     fmt.Sprintf("Responder cliente insatisfeito (#%d)", id),
		Category:  challenge.CategoryDailyTask,
		Description: challenge.Description{
			Text:         "Chegou um email de um cliente reclamando que o relatório mensal veio com dados errados. Responda com empatia e um plano de ação.",
			Type:         "texto_livre",
			EvalCriteria: []string{"Comunicação", "Empatia"},
			TargetSkill:  "Comunicação",
			Enunciado: map[string]any{
				"email_content": "Olá, o relatório de abril veio com os totais trocados. Preciso disso corrigido até amanhã. — Carla",
			},
		},
		Difficulty: challenge.Difficulty{Level: "easy", TimeLimit: 20},
		CreatedAt:  time.Now().UTC(),
	}
}

func (s *Server) seedOrganizationChallenge(profileID string) challenge.Challenge {
	id := s.allocID()
	return challenge.Challenge{
		ID:        id,
		ProfileID: profileID,
		Title:     fmt.Sprintf("Planejar migração do banco (#%d)", id),
		Category:  challenge.CategoryOrganization,
		Description: challenge.Description{
			Text:         "Precisamos migrar do SQLite para PostgreSQL sem downtime. Estruture o planejamento: requisitos, riscos e etapas de implementação.",
			Type:         "planejamento",
			EvalCriteria: []string{"Arquitetura", "PostgreSQL", "Planejamento"},
			TargetSkill:  "PostgreSQL",
			Enunciado: map[string]any{
				"requisitos_funcionais":     []string{"migração sem perda de dados", "rollback possível"},
				"requisitos_nao_funcionais": []string{"downtime zero", "janela de 2 semanas"},
			},
		},
		Difficulty: challenge.Difficulty{Level: "hard", TimeLimit: 60},
		CreatedAt:  time.Now().UTC(),
	}
}
