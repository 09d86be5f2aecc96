package apistub

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/golang-jwt/jwt/v5/request"
	"github.com/google/uuid"

	"github.com/praxis-dev/client/httpjson"
	"github.com/praxis-dev/client/profile"
)

type profileIDKey struct{}

// Detail strings returned by the real backend's auth dependency. The
// client's error classifier pattern-matches these, so the stub must
// not reword them.
const (
	detailTokenMissing = "Token de autenticação não fornecido"
	detailTokenExpired = "Token expirado. Faça login novamente."
	detailTokenInvalid = "Token inválido"
)

type stubClaims struct {
	Email    string `json:"email,omitempty"`
	FullName string `json:"full_name,omitempty"`
	jwt.RegisteredClaims
}

// requireBearer mimics the backend's auth dependency: it decodes the
// bearer token without signature verification (the stub trusts its
// callers) and creates the profile on first sight.
func (s *Server) requireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			httpjson.WriteDetail(w, http.StatusUnauthorized, detailTokenMissing)
			return
		}

		claims := &stubClaims{}
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
			httpjson.WriteDetail(w, http.StatusUnauthorized, detailTokenInvalid)
			return
		}
		if claims.ExpiresAt != nil && time.Now().After(claims.ExpiresAt.Time) {
			httpjson.WriteDetail(w, http.StatusUnauthorized, detailTokenExpired)
			return
		}

		profileID := claims.Subject
		if profileID == "" {
			profileID = uuid.NewString()
		}
		s.ensureProfile(profileID, claims.Email, claims.FullName)

		ctx := context.WithValue(r.Context(), profileIDKey{}, profileID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func profileIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(profileIDKey{}).(string)
	return id
}

func (s *Server) ensureProfile(id, email, fullName string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[id]; ok {
		return
	}
	if fullName == "" {
		fullName = "User Mock"
	}
	s.profiles[id] = profile.Profile{ID: id, FullName: fullName, Email: email}
	s.attributes[id] = profile.Attributes{
		ProfileID:  id,
		CareerGoal: "Desenvolvedor(a) Backend",
		TechSkills: map[string]int{
			"Python": 55, "FastAPI": 40, "Docker": 35,
			"AWS": 25, "React": 45, "PostgreSQL": 50,
		},
		StrongSkills: map[string]int{"Python": 55, "PostgreSQL": 50, "React": 45},
		SoftSkills:   map[string]int{"Comunicação": 60, "Trabalho em Equipe": 65},
		UpdatedAt:    time.Now().UTC(),
	}
}
