package escala

import (
	"encoding/json"
	"strings"
	"time"
)

// ErroDeCampo descreve uma falha de validação em um campo do payload.
type ErroDeCampo struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// TextoNulavel distingue um campo de texto omitido de um campo enviado como
// null. Definido fica true sempre que a chave aparece no JSON; Valor fica nil
// quando o cliente manda null para limpar o campo.
type TextoNulavel struct {
	Definido bool
	Valor    *string
}

func (t *TextoNulavel) UnmarshalJSON(b []byte) error {
	t.Definido = true
	if string(b) == "null" {
		t.Valor = nil
		return nil
	}
	return json.Unmarshal(b, &t.Valor)
}

// formatos aceitos para dataAbate, do mais ao menos específico
var formatosData = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseData(valor string) (time.Time, bool) {
	valor = strings.TrimSpace(valor)
	for _, layout := range formatosData {
		if t, err := time.Parse(layout, valor); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// CriarEscalaRequest é o payload de POST /escalas.
type CriarEscalaRequest struct {
	DataAbate   *string `json:"dataAbate"`
	Volume      *int    `json:"volume"`
	Status      *string `json:"status"`
	Observacoes *string `json:"observacoes"`
	ProdutorID  *int    `json:"produtorId"`
	PlantaID    *int    `json:"plantaId"`
}

// Validar confere o payload de criação e devolve a data já interpretada
// junto com a lista de erros campo a campo (vazia quando o payload é válido).
func (r *CriarEscalaRequest) Validar() (time.Time, []ErroDeCampo) {
	var erros []ErroDeCampo
	var data time.Time

	if r.DataAbate == nil {
		erros = append(erros, ErroDeCampo{Campo: "dataAbate", Mensagem: "A data do abate é obrigatória"})
	} else if d, ok := parseData(*r.DataAbate); ok {
		data = d
	} else {
		erros = append(erros, ErroDeCampo{Campo: "dataAbate", Mensagem: "Data inválida"})
	}

	if r.Volume == nil || *r.Volume <= 0 {
		erros = append(erros, ErroDeCampo{Campo: "volume", Mensagem: "O volume deve ser um número inteiro positivo"})
	}
	if r.ProdutorID == nil || *r.ProdutorID <= 0 {
		erros = append(erros, ErroDeCampo{Campo: "produtorId", Mensagem: "O produtorId deve ser um número inteiro positivo"})
	}
	if r.PlantaID == nil || *r.PlantaID <= 0 {
		erros = append(erros, ErroDeCampo{Campo: "plantaId", Mensagem: "O plantaId deve ser um número inteiro positivo"})
	}

	return data, erros
}

// AtualizarEscalaRequest é o payload de PUT /escalas/{id}. Todos os campos
// são opcionais; observacoes aceita null explícito para limpar o texto.
type AtualizarEscalaRequest struct {
	DataAbate   *string      `json:"dataAbate"`
	Volume      *int         `json:"volume"`
	Status      *string      `json:"status"`
	Observacoes TextoNulavel `json:"observacoes"`
	ProdutorID  *int         `json:"produtorId"`
	PlantaID    *int         `json:"plantaId"`
}

// Validar confere apenas os campos presentes no payload parcial.
func (r *AtualizarEscalaRequest) Validar() (time.Time, []ErroDeCampo) {
	var erros []ErroDeCampo
	var data time.Time

	if r.DataAbate != nil {
		if d, ok := parseData(*r.DataAbate); ok {
			data = d
		} else {
			erros = append(erros, ErroDeCampo{Campo: "dataAbate", Mensagem: "Data inválida"})
		}
	}
	if r.Volume != nil && *r.Volume <= 0 {
		erros = append(erros, ErroDeCampo{Campo: "volume", Mensagem: "O volume deve ser um número inteiro positivo"})
	}
	if r.ProdutorID != nil && *r.ProdutorID <= 0 {
		erros = append(erros, ErroDeCampo{Campo: "produtorId", Mensagem: "O produtorId deve ser um número inteiro positivo"})
	}
	if r.PlantaID != nil && *r.PlantaID <= 0 {
		erros = append(erros, ErroDeCampo{Campo: "plantaId", Mensagem: "O plantaId deve ser um número inteiro positivo"})
	}

	return data, erros
}
