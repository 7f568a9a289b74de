package relatorio

import (
	"sort"
	"strings"

	"github.com/AgroEscala/api-escalas/internal/escala"
)

// Colunas de ordenação aceitas.
const (
	OrdenarPorData     = "dataAbate"
	OrdenarPorProdutor = "produtor"
	OrdenarPorPlanta   = "planta"
	OrdenarPorVolume   = "volume"
	OrdenarPorStatus   = "status"
)

// Ordenar devolve uma cópia ordenada pela coluna indicada. Comparações de
// texto ignoram caixa; colunas desconhecidas caem em dataAbate.
func Ordenar(escalas []escala.Escala, coluna, direcao string) []escala.Escala {
	resultado := make([]escala.Escala, len(escalas))
	copy(resultado, escalas)

	menor := func(a, b escala.Escala) bool {
		switch coluna {
		case OrdenarPorProdutor:
			return strings.ToLower(a.Produtor.Nome) < strings.ToLower(b.Produtor.Nome)
		case OrdenarPorPlanta:
			return strings.ToLower(a.Planta.Nome) < strings.ToLower(b.Planta.Nome)
		case OrdenarPorVolume:
			return a.Volume < b.Volume
		case OrdenarPorStatus:
			return strings.ToLower(a.Status) < strings.ToLower(b.Status)
		default:
			return a.DataAbate.Before(b.DataAbate)
		}
	}

	sort.SliceStable(resultado, func(i, j int) bool {
		if direcao == "desc" {
			return menor(resultado[j], resultado[i])
		}
		return menor(resultado[i], resultado[j])
	})
	return resultado
}
