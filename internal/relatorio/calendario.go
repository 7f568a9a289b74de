package relatorio

import (
	"time"

	"github.com/AgroEscala/api-escalas/internal/escala"
	"go.uber.org/zap"
)

// AgruparPorDia agrupa as escalas pelo dia de calendário em que o front-end
// exibe a dataAbate. A conta reproduz a do cliente: soma o deslocamento do
// fuso ao instante UTC antes de truncar para o dia. Escalas com data zerada
// são puladas com um aviso.
func AgruparPorDia(escalas []escala.Escala, fuso *time.Location, logger *zap.Logger) map[string][]escala.Escala {
	if fuso == nil {
		fuso = time.UTC
	}
	porDia := make(map[string][]escala.Escala)
	for _, e := range escalas {
		if e.DataAbate.IsZero() {
			logger.Warn("escala sem dataAbate ignorada no calendário", zap.Uint("id", e.ID))
			continue
		}
		_, deslocamento := e.DataAbate.In(fuso).Zone()
		dia := e.DataAbate.UTC().Add(-time.Duration(deslocamento) * time.Second).Format("2006-01-02")
		porDia[dia] = append(porDia[dia], e)
	}
	return porDia
}
