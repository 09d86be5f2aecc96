package apistub

import (
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/praxis-dev/client/profile"
	"github.com/praxis-dev/client/srvcerr"
)

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	profileID := profileIDFrom(r.Context())

	s.mu.Lock()
	prof, ok := s.profiles[profileID]
	s.mu.Unlock()
	if !ok {
		handleError(r, w, srvcerr.ErrInternalSE())
		return
	}
	writeJson(w, http.StatusOK, prof)
}

func (s *Server) getAttributes(w http.ResponseWriter, r *http.Request) {
	requested := chi.URLParam(r, "profileID")
	if requested != profileIDFrom(r.Context()) {
		handleError(r, w, newErrForbiddenAttributes())
		return
	}

	s.mu.Lock()
	attrs, ok := s.attributes[requested]
	s.mu.Unlock()
	if !ok {
		handleError(r, w, newErrAttributesNotFound())
		return
	}
	writeJson(w, http.StatusOK, attrs)
}

func (s *Server) patchAttributes(w http.ResponseWriter, r *http.Request) {
	requested := chi.URLParam(r, "profileID")
	if requested != profileIDFrom(r.Context()) {
		handleError(r, w, newErrForbiddenAttributes())
		return
	}

	var patch profile.AttributesPatch
	if err := decodeJson(r.Body, &patch); err != nil {
		handleError(r, w, newErrInvalidSubmission().SetDebug(err))
		return
	}

	s.mu.Lock()
	attrs, ok := s.attributes[requested]
	if !ok {
		s.mu.Unlock()
		handleError(r, w, newErrAttributesNotFound())
		return
	}
	if patch.CareerGoal != nil {
		attrs.CareerGoal = *patch.CareerGoal
	}
	if patch.TechSkills != nil {
		attrs.TechSkills = patch.TechSkills
	}
	if patch.StrongSkills != nil {
		attrs.StrongSkills = patch.StrongSkills
	}
	if patch.SoftSkills != nil {
		attrs.SoftSkills = patch.SoftSkills
	}
	attrs.UpdatedAt = time.Now().UTC()
	s.attributes[requested] = attrs
	s.mu.Unlock()

	writeJson(w, http.StatusOK, attrs)
}

func (s *Server) deleteAccount(w http.ResponseWriter, r *http.Request) {
	profileID := profileIDFrom(r.Context())

	s.mu.Lock()
	delete(s.profiles, profileID)
	delete(s.attributes, profileID)
	delete(s.resumes, profileID)
	delete(s.activeByPID, profileID)
	s.mu.Unlock()

	writeJson(w, http.StatusOK, map[string]string{"status": "deleted"})
}

var supportedResumeTypes = []string{
	"application/pdf",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	"application/msword",
	"text/plain",
	"text/markdown",
}

func (s *Server) uploadResume(w http.ResponseWriter, r *http.Request) {
	profileID := profileIDFrom(r.Context())

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		handleError(r, w, newErrInvalidSubmission().SetDebug(err))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(r, w, newErrInvalidSubmission().SetDebug(err))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !resumeTypeSupported(contentType) {
		handleError(r, w, newErrUnsupportedFileType(contentType))
		return
	}
	data, err := io.ReadAll(io.LimitReader(file, 10<<20))
	if err != nil {
		handleError(r, w, srvcerr.ErrInternalSE().SetDebug(err))
		return
	}

	title := r.FormValue("title")
	if title == "" {
		title = header.Filename
	}

	s.mu.Lock()
	resume := profile.Resume{
		ID:               s.allocID(),
		ProfileID:        profileID,
		Title:            title,
		OriginalContent:  extractText(contentType, data),
		CreatedAt:        time.Now().UTC(),
		OriginalFilename: header.Filename,
		FileType:         contentType,
		FileSizeBytes:    len(data),
	}
	s.resumes[profileID] = append(s.resumes[profileID], resume)
	s.mu.Unlock()

	writeJson(w, http.StatusOK, resume)
}

func (s *Server) listResumes(w http.ResponseWriter, r *http.Request) {
	profileID := profileIDFrom(r.Context())

	s.mu.Lock()
	list := append([]profile.Resume{}, s.resumes[profileID]...)
	s.mu.Unlock()

	writeJson(w, http.StatusOK, list)
}

func resumeTypeSupported(contentType string) bool {
	base := contentType
	if i := strings.Index(base, ";"); i >= 0 {
		base = base[:i]
	}
	base = strings.TrimSpace(base)
	for _, t := range supportedResumeTypes {
		if base == t {
			return true
		}
	}
	return false
}

// extractText stands in for the backend's document parser: plain text
// passes through, binary formats get a placeholder.
func extractText(contentType string, data []byte) string {
	if strings.HasPrefix(contentType, "text/") {
		return string(data)
	}
	return "(texto extraído do documento)"
}
