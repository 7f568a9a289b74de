package escala

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrStr(s string) *string { return &s }
func ptrInt(i int) *int       { return &i }

func TestCriarEscalaRequestValida(t *testing.T) {
	req := CriarEscalaRequest{
		DataAbate:  ptrStr("2024-03-15T00:00:00Z"),
		Volume:     ptrInt(50),
		ProdutorID: ptrInt(1),
		PlantaID:   ptrInt(2),
	}

	data, erros := req.Validar()
	require.Empty(t, erros)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), data)
}

func TestCriarEscalaRequestAceitaDataSimples(t *testing.T) {
	req := CriarEscalaRequest{
		DataAbate:  ptrStr("2024-01-02"),
		Volume:     ptrInt(10),
		ProdutorID: ptrInt(1),
		PlantaID:   ptrInt(1),
	}

	data, erros := req.Validar()
	require.Empty(t, erros)
	assert.Equal(t, 2024, data.Year())
	assert.Equal(t, time.January, data.Month())
	assert.Equal(t, 2, data.Day())
}

func TestCriarEscalaRequestCamposObrigatorios(t *testing.T) {
	req := CriarEscalaRequest{}

	_, erros := req.Validar()
	require.Len(t, erros, 4)

	campos := make(map[string]string)
	for _, e := range erros {
		campos[e.Campo] = e.Mensagem
	}
	assert.Equal(t, "A data do abate é obrigatória", campos["dataAbate"])
	assert.Equal(t, "O volume deve ser um número inteiro positivo", campos["volume"])
	assert.Contains(t, campos, "produtorId")
	assert.Contains(t, campos, "plantaId")
}

func TestCriarEscalaRequestDataInvalida(t *testing.T) {
	req := CriarEscalaRequest{
		DataAbate:  ptrStr("não é data"),
		Volume:     ptrInt(10),
		ProdutorID: ptrInt(1),
		PlantaID:   ptrInt(1),
	}

	_, erros := req.Validar()
	require.Len(t, erros, 1)
	assert.Equal(t, "dataAbate", erros[0].Campo)
	assert.Equal(t, "Data inválida", erros[0].Mensagem)
}

func TestCriarEscalaRequestVolumeNegativo(t *testing.T) {
	req := CriarEscalaRequest{
		DataAbate:  ptrStr("2024-01-02"),
		Volume:     ptrInt(-5),
		ProdutorID: ptrInt(1),
		PlantaID:   ptrInt(1),
	}

	_, erros := req.Validar()
	require.Len(t, erros, 1)
	assert.Equal(t, "volume", erros[0].Campo)
}

func TestAtualizarEscalaRequestTudoOpcional(t *testing.T) {
	var req AtualizarEscalaRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))

	_, erros := req.Validar()
	assert.Empty(t, erros)
	assert.False(t, req.Observacoes.Definido)
}

func TestAtualizarEscalaRequestObservacoesNull(t *testing.T) {
	var req AtualizarEscalaRequest
	require.NoError(t, json.Unmarshal([]byte(`{"observacoes": null}`), &req))

	assert.True(t, req.Observacoes.Definido)
	assert.Nil(t, req.Observacoes.Valor)
}

func TestAtualizarEscalaRequestObservacoesTexto(t *testing.T) {
	var req AtualizarEscalaRequest
	require.NoError(t, json.Unmarshal([]byte(`{"observacoes": "novo texto"}`), &req))

	assert.True(t, req.Observacoes.Definido)
	require.NotNil(t, req.Observacoes.Valor)
	assert.Equal(t, "novo texto", *req.Observacoes.Valor)
}

func TestAtualizarEscalaRequestCamposPresentesInvalidos(t *testing.T) {
	req := AtualizarEscalaRequest{
		DataAbate:  ptrStr("xx"),
		Volume:     ptrInt(0),
		ProdutorID: ptrInt(-1),
	}

	_, erros := req.Validar()
	assert.Len(t, erros, 3)
}
