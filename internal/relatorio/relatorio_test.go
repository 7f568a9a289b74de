package relatorio

import (
	"testing"
	"time"

	"github.com/AgroEscala/api-escalas/internal/escala"
	"github.com/AgroEscala/api-escalas/internal/planta"
	"github.com/AgroEscala/api-escalas/internal/produtor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func escalaDe(produtorNome, plantaNome, status string, volume int, data string) escala.Escala {
	d, _ := time.Parse(time.RFC3339, data)
	return escala.Escala{
		DataAbate: d,
		Volume:    volume,
		Status:    status,
		Produtor:  produtor.Produtor{Nome: produtorNome},
		Planta:    planta.Planta{Nome: plantaNome},
	}
}

func TestFiltrarPorProdutorIgnoraCaixa(t *testing.T) {
	escalas := []escala.Escala{
		escalaDe("Fazenda A", "Planta X", "Agendado", 50, "2024-01-02T00:00:00Z"),
		escalaDe("Fazenda B", "Planta X", "Agendado", 10, "2024-01-01T00:00:00Z"),
	}

	filtradas := Filtrar(escalas, Filtro{Produtor: "fazenda a"})
	require.Len(t, filtradas, 1)
	assert.Equal(t, "Fazenda A", filtradas[0].Produtor.Nome)
}

func TestFiltrarCombinaCriterios(t *testing.T) {
	escalas := []escala.Escala{
		escalaDe("Fazenda A", "Planta X", "Agendado", 50, "2024-01-02T00:00:00Z"),
		escalaDe("Fazenda A", "Planta Y", "Concluído", 30, "2024-01-03T00:00:00Z"),
		escalaDe("Fazenda B", "Planta X", "Agendado", 10, "2024-01-01T00:00:00Z"),
	}

	filtradas := Filtrar(escalas, Filtro{Produtor: "fazenda", Status: "Agendado"})
	require.Len(t, filtradas, 2)

	// filtro vazio é passagem direta
	assert.Len(t, Filtrar(escalas, Filtro{}), 3)
}

func TestOrdenarPorVolume(t *testing.T) {
	escalas := []escala.Escala{
		escalaDe("Fazenda A", "Planta X", "Agendado", 50, "2024-01-02T00:00:00Z"),
		escalaDe("Fazenda B", "Planta X", "Agendado", 10, "2024-01-01T00:00:00Z"),
	}

	asc := Ordenar(escalas, OrdenarPorVolume, "asc")
	assert.Equal(t, []int{asc[0].Volume, asc[1].Volume}, []int{10, 50})

	desc := Ordenar(escalas, OrdenarPorVolume, "desc")
	assert.Equal(t, []int{desc[0].Volume, desc[1].Volume}, []int{50, 10})

	// a entrada não é alterada
	assert.Equal(t, 50, escalas[0].Volume)
}

func TestOrdenarPorNomeIgnoraCaixa(t *testing.T) {
	escalas := []escala.Escala{
		escalaDe("fazenda b", "Planta X", "Agendado", 1, "2024-01-01T00:00:00Z"),
		escalaDe("Fazenda A", "Planta X", "Agendado", 2, "2024-01-02T00:00:00Z"),
	}

	ordenadas := Ordenar(escalas, OrdenarPorProdutor, "asc")
	assert.Equal(t, "Fazenda A", ordenadas[0].Produtor.Nome)
}

func TestOrdenarColunaDesconhecidaCaiEmData(t *testing.T) {
	escalas := []escala.Escala{
		escalaDe("Fazenda A", "Planta X", "Agendado", 1, "2024-01-02T00:00:00Z"),
		escalaDe("Fazenda B", "Planta X", "Agendado", 2, "2024-01-01T00:00:00Z"),
	}

	ordenadas := Ordenar(escalas, "tanto faz", "asc")
	assert.True(t, ordenadas[0].DataAbate.Before(ordenadas[1].DataAbate))
}

func TestCalcularKPIs(t *testing.T) {
	escalas := []escala.Escala{
		escalaDe("A", "X", "Concluído", 50, "2024-01-01T00:00:00Z"),
		escalaDe("B", "X", "Agendado", 75, "2024-01-02T00:00:00Z"),
		escalaDe("A", "Y", "Agendado", 100, "2024-01-03T00:00:00Z"),
		escalaDe("B", "Y", "Agendado", 80, "2024-01-04T00:00:00Z"),
	}

	k := CalcularKPIs(escalas)
	assert.Equal(t, 4, k.TotalEscalas)
	assert.Equal(t, 3, k.EscalasAgendadas)
	assert.Equal(t, 1, k.EscalasConcluidas)
	assert.Equal(t, 305, k.VolumeTotal)
}

func TestContagemPorStatusOrdemDePrimeiraOcorrencia(t *testing.T) {
	escalas := []escala.Escala{
		escalaDe("A", "X", "Concluído", 1, "2024-01-01T00:00:00Z"),
		escalaDe("B", "X", "Agendado", 1, "2024-01-02T00:00:00Z"),
		escalaDe("A", "Y", "Agendado", 1, "2024-01-03T00:00:00Z"),
		escalaDe("B", "Y", "Cancelado", 1, "2024-01-04T00:00:00Z"),
	}

	itens := ContagemPorStatus(escalas)
	require.Len(t, itens, 3)
	assert.Equal(t, ItemStatus{Name: "Concluído", Count: 1}, itens[0])
	assert.Equal(t, ItemStatus{Name: "Agendado", Count: 2}, itens[1])
	assert.Equal(t, ItemStatus{Name: "Cancelado", Count: 1}, itens[2])
}

func TestAtividadeRecenteTop5(t *testing.T) {
	var escalas []escala.Escala
	for dia := 1; dia <= 7; dia++ {
		escalas = append(escalas,
			escalaDe("A", "X", "Agendado", dia, time.Date(2024, 1, dia, 0, 0, 0, 0, time.UTC).Format(time.RFC3339)))
	}

	recentes := AtividadeRecente(escalas, 5)
	require.Len(t, recentes, 5)
	assert.Equal(t, 7, recentes[0].DataAbate.Day())
	assert.Equal(t, 3, recentes[4].DataAbate.Day())

	todas := AtividadeRecente(escalas[:2], 5)
	assert.Len(t, todas, 2)
}

func TestAgruparPorDiaComFusoFixo(t *testing.T) {
	escalas := []escala.Escala{
		escalaDe("A", "X", "Agendado", 1, "2024-03-15T00:00:00Z"),
	}
	escalas[0].ID = 1

	// reproduz a conta do cliente: UTC menos o deslocamento do fuso
	// (para UTC-3 o instante anda +3h antes de truncar)
	fuso := time.FixedZone("UTC-3", -3*3600)
	porDia := AgruparPorDia(escalas, fuso, zap.NewNop())
	require.Len(t, porDia, 1)
	assert.Len(t, porDia["2024-03-15"], 1)

	// em UTC a mesma escala fica no próprio dia
	porDiaUTC := AgruparPorDia(escalas, time.UTC, zap.NewNop())
	assert.Len(t, porDiaUTC["2024-03-15"], 1)

	// num fuso a leste (UTC+3) o instante recua 3h e muda de dia
	fusoLeste := time.FixedZone("UTC+3", 3*3600)
	porDiaLeste := AgruparPorDia(escalas, fusoLeste, zap.NewNop())
	assert.Len(t, porDiaLeste["2024-03-14"], 1)
}

func TestAgruparPorDiaPulaDataZerada(t *testing.T) {
	escalas := []escala.Escala{
		{ID: 1, Status: "Agendado"},
		escalaDe("A", "X", "Agendado", 1, "2024-03-15T12:00:00Z"),
	}

	porDia := AgruparPorDia(escalas, time.UTC, zap.NewNop())
	require.Len(t, porDia, 1)
	assert.Len(t, porDia["2024-03-15"], 1)
}
