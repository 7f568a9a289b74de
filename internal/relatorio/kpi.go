package relatorio

import (
	"sort"

	"github.com/AgroEscala/api-escalas/internal/escala"
	"github.com/AgroEscala/api-escalas/internal/models"
)

// KPIs agrega os números exibidos no topo do dashboard.
type KPIs struct {
	TotalEscalas      int `json:"totalEscalas"`
	EscalasAgendadas  int `json:"escalasAgendadas"`
	EscalasConcluidas int `json:"escalasConcluidas"`
	VolumeTotal       int `json:"volumeTotal"`
}

// CalcularKPIs percorre as escalas uma única vez.
func CalcularKPIs(escalas []escala.Escala) KPIs {
	k := KPIs{TotalEscalas: len(escalas)}
	for _, e := range escalas {
		switch e.Status {
		case models.StatusAgendado:
			k.EscalasAgendadas++
		case models.StatusConcluido:
			k.EscalasConcluidas++
		}
		k.VolumeTotal += e.Volume
	}
	return k
}

// ItemStatus é um ponto do gráfico de escalas por status.
type ItemStatus struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ContagemPorStatus devolve a contagem por status distinto, na ordem em que
// cada status aparece pela primeira vez na lista.
func ContagemPorStatus(escalas []escala.Escala) []ItemStatus {
	indices := make(map[string]int)
	var itens []ItemStatus
	for _, e := range escalas {
		if i, ok := indices[e.Status]; ok {
			itens[i].Count++
			continue
		}
		indices[e.Status] = len(itens)
		itens = append(itens, ItemStatus{Name: e.Status, Count: 1})
	}
	return itens
}

// AtividadeRecente devolve as n escalas mais recentes por dataAbate.
func AtividadeRecente(escalas []escala.Escala, n int) []escala.Escala {
	recentes := make([]escala.Escala, len(escalas))
	copy(recentes, escalas)
	sort.SliceStable(recentes, func(i, j int) bool {
		return recentes[j].DataAbate.Before(recentes[i].DataAbate)
	})
	if len(recentes) > n {
		recentes = recentes[:n]
	}
	return recentes
}
