// Package uimsg turns errors into the fixed Portuguese sentences shown
// to the user. Raw technical text never reaches the screen: every
// error goes through ForError, which always returns a displayable
// sentence.
package uimsg

// Fixed user-facing sentences. Display copy lives here and nowhere
// else, so wording changes touch a single file.
const (
	MsgBadLogin         = "Email ou senha incorretos. Verifique seus dados e tente novamente."
	MsgConfirmEmail     = "Confirme seu email antes de entrar. Verifique sua caixa de entrada."
	MsgDuplicateAccount = "Este email já está cadastrado. Tente fazer login."
	MsgInvalidEmail     = "Digite um email válido."
	MsgPasswordMin      = "A senha deve ter pelo menos 6 caracteres."
	MsgSessionExpired   = "Sua sessão expirou. Faça login novamente."
	MsgRequestNewLink   = "Link inválido ou expirado. Solicite um novo."

	MsgChallengeNotFound  = "Desafio não encontrado. Ele pode ter sido removido."
	MsgChallengeExpired   = "Este desafio expirou. Gere novos desafios para continuar."
	MsgChallengeCompleted = "Você já completou este desafio."

	MsgFillFields = "Preencha todos os campos obrigatórios."
	MsgTooLong    = "Sua resposta é muito longa. Tente resumir."
	MsgSlowDown   = "Muitas tentativas em sequência. Aguarde um momento e tente novamente."

	MsgConnectivity = "Não foi possível conectar ao servidor. Verifique sua internet e tente novamente."
	MsgServerError  = "Erro no servidor. Tente novamente em instantes."
	MsgUnavailable  = "O serviço está temporariamente indisponível. Tente novamente em breve."
	MsgNoPermission = "Você não tem permissão para fazer isso."

	MsgUnexpected = "Ocorreu um erro inesperado. Tente novamente."
)
