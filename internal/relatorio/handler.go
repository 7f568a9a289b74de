package relatorio

import (
	"net/http"
	"strconv"
	"time"

	"github.com/AgroEscala/api-escalas/internal/escala"
	"github.com/AgroEscala/api-escalas/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler expõe as visões de leitura (dashboard, calendário e a lista
// filtrada/ordenada de escalas) calculadas sobre a listagem completa.
type Handler struct {
	DB      *gorm.DB
	Escalas escala.Repository
	Logger  *zap.Logger
}

func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		DB:      db,
		Escalas: escala.NewRepository(),
		Logger:  logger,
	}
}

// ListarEscalas trata GET /relatorios/escalas com os parâmetros de consulta
// produtor, planta, status, ordenarPor e direcao.
func (h *Handler) ListarEscalas(w http.ResponseWriter, r *http.Request) {
	escalas, err := h.Escalas.ListarTodas(h.DB)
	if err != nil {
		h.Logger.Error("erro ao buscar escalas", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao buscar escalas")
		return
	}

	q := r.URL.Query()
	escalas = Filtrar(escalas, Filtro{
		Produtor: q.Get("produtor"),
		Planta:   q.Get("planta"),
		Status:   q.Get("status"),
	})
	if coluna := q.Get("ordenarPor"); coluna != "" {
		escalas = Ordenar(escalas, coluna, q.Get("direcao"))
	}

	utils.RespondJSON(w, http.StatusOK, escalas)
}

type dashboardResposta struct {
	KPIs             KPIs            `json:"kpis"`
	EscalasPorStatus []ItemStatus    `json:"escalasPorStatus"`
	AtividadeRecente []escala.Escala `json:"atividadeRecente"`
}

// Dashboard trata GET /dashboard
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	escalas, err := h.Escalas.ListarTodas(h.DB)
	if err != nil {
		h.Logger.Error("erro ao buscar escalas", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao montar dashboard")
		return
	}

	utils.RespondJSON(w, http.StatusOK, dashboardResposta{
		KPIs:             CalcularKPIs(escalas),
		EscalasPorStatus: ContagemPorStatus(escalas),
		AtividadeRecente: AtividadeRecente(escalas, 5),
	})
}

type calendarioResposta struct {
	EscalasPorDia map[string][]escala.Escala `json:"escalasPorDia"`
}

// Calendario trata GET /calendario. O parâmetro opcional fuso é o
// deslocamento em minutos a leste de UTC usado pelo cliente (ex.: -180 para
// o horário de Brasília); ausente, assume UTC.
func (h *Handler) Calendario(w http.ResponseWriter, r *http.Request) {
	fuso := time.UTC
	if valor := r.URL.Query().Get("fuso"); valor != "" {
		minutos, err := strconv.Atoi(valor)
		if err != nil {
			utils.RespondErro(w, http.StatusBadRequest, "Fuso inválido")
			return
		}
		fuso = time.FixedZone("cliente", minutos*60)
	}

	escalas, err := h.Escalas.ListarTodas(h.DB)
	if err != nil {
		h.Logger.Error("erro ao buscar escalas", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao montar calendário")
		return
	}

	utils.RespondJSON(w, http.StatusOK, calendarioResposta{
		EscalasPorDia: AgruparPorDia(escalas, fuso, h.Logger),
	})
}
