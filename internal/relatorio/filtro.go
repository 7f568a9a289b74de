package relatorio

import (
	"strings"

	"github.com/AgroEscala/api-escalas/internal/escala"
)

// Filtro define os critérios aplicados sobre a lista de escalas. Campos
// vazios não filtram nada.
type Filtro struct {
	Produtor string // substring do nome do produtor, sem distinção de caixa
	Planta   string // substring do nome da planta, sem distinção de caixa
	Status   string // comparação exata
}

// Filtrar devolve as escalas que atendem a todos os critérios presentes.
func Filtrar(escalas []escala.Escala, f Filtro) []escala.Escala {
	resultado := make([]escala.Escala, 0, len(escalas))
	for _, e := range escalas {
		if f.Produtor != "" && !contemSemCaixa(e.Produtor.Nome, f.Produtor) {
			continue
		}
		if f.Planta != "" && !contemSemCaixa(e.Planta.Nome, f.Planta) {
			continue
		}
		if f.Status != "" && e.Status != f.Status {
			continue
		}
		resultado = append(resultado, e)
	}
	return resultado
}

func contemSemCaixa(texto, trecho string) bool {
	return strings.Contains(strings.ToLower(texto), strings.ToLower(trecho))
}
