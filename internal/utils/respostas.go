package utils

import (
	"encoding/json"
	"net/http"
)

// ErroResposta é o corpo padrão de erro da API.
type ErroResposta struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// RespondJSON serializa o corpo com o status informado.
func RespondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// RespondErro escreve o corpo {"error": mensagem}.
func RespondErro(w http.ResponseWriter, status int, mensagem string) {
	RespondJSON(w, status, ErroResposta{Error: mensagem})
}

// RespondErroDetalhes escreve {"error": mensagem, "details": detalhes},
// usado nas falhas de validação campo a campo.
func RespondErroDetalhes(w http.ResponseWriter, status int, mensagem string, detalhes any) {
	RespondJSON(w, status, ErroResposta{Error: mensagem, Details: detalhes})
}
