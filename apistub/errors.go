package apistub

import (
	"net/http"

	"github.com/praxis-dev/client/srvcerr"
)

// Detail strings follow the real backend's wording so the classifier
// behaves identically against the stub.

const ErrCodeChallengeNotFound = "challenge_not_found"

func newErrChallengeNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeChallengeNotFound,
		"Desafio não encontrado",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeAttributesNotFound = "attributes_not_found"

func newErrAttributesNotFound() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeAttributesNotFound,
		"Atributos não encontrados para o perfil",
	).SetHttpStatusCode(http.StatusNotFound)
}

const ErrCodeSubmissionAlreadyEvaluated = "submission_already_evaluated"

func newErrSubmissionAlreadyEvaluated() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeSubmissionAlreadyEvaluated,
		"Submissão já foi avaliada",
	).SetHttpStatusCode(http.StatusConflict)
}

const ErrCodeForbiddenAttributes = "forbidden_attributes"

func newErrForbiddenAttributes() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeForbiddenAttributes,
		"Você não pode acessar atributos de outro usuário",
	).SetHttpStatusCode(http.StatusForbidden)
}

const ErrCodeInvalidSubmission = "invalid_submission"

func newErrInvalidSubmission() *srvcerr.Error {
	return srvcerr.New(
		ErrCodeInvalidSubmission,
		"Conteúdo da submissão é obrigatório",
	).SetHttpStatusCode(http.StatusBadRequest)
}

const ErrCodeUnsupportedFileType = "unsupported_file_type"

func newErrUnsupportedFileType(contentType string) *srvcerr.Error {
	return srvcerr.New(
		ErrCodeUnsupportedFileType,
		"Tipo de arquivo não suportado: "+contentType,
	).SetHttpStatusCode(http.StatusBadRequest)
}
