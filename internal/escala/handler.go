package escala

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AgroEscala/api-escalas/internal/models"
	"github.com/AgroEscala/api-escalas/internal/planta"
	"github.com/AgroEscala/api-escalas/internal/produtor"
	"github.com/AgroEscala/api-escalas/internal/utils"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler encapsula DB e repositories. Os repositórios de produtor e planta
// entram para as checagens de existência das chaves estrangeiras.
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Produtores produtor.Repository
	Plantas    planta.Repository
	Logger     *zap.Logger
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Produtores: produtor.NewRepository(),
		Plantas:    planta.NewRepository(),
		Logger:     logger,
	}
}

func parseID(r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// Listar trata GET /escalas: todas as escalas com produtor e planta,
// ordenadas por dataAbate ascendente.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	escalas, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		h.Logger.Error("erro ao buscar escalas", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao buscar escalas")
		return
	}
	utils.RespondJSON(w, http.StatusOK, escalas)
}

// BuscarPorID trata GET /escalas/{id}
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	e, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Escala não encontrada")
			return
		}
		h.Logger.Error("erro ao buscar escala", zap.Uint("id", id), zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao buscar escala")
		return
	}
	utils.RespondJSON(w, http.StatusOK, e)
}

// Criar trata POST /escalas
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req CriarEscalaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "Dados inválidos")
		return
	}

	data, erros := req.Validar()
	if len(erros) > 0 {
		utils.RespondErroDetalhes(w, http.StatusBadRequest, "Dados inválidos", erros)
		return
	}

	// as duas checagens rodam sempre; a resposta é combinada por compatibilidade
	// com os clientes existentes
	produtorExiste, errProdutor := h.Produtores.Existe(h.DB, uint(*req.ProdutorID))
	plantaExiste, errPlanta := h.Plantas.Existe(h.DB, uint(*req.PlantaID))
	if errProdutor != nil || errPlanta != nil {
		h.Logger.Error("erro ao verificar referências da escala",
			zap.Error(errors.Join(errProdutor, errPlanta)))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao criar escala")
		return
	}
	if !produtorExiste || !plantaExiste {
		utils.RespondErro(w, http.StatusNotFound, "Produtor ou Planta não encontrado")
		return
	}

	status := models.StatusAgendado
	if req.Status != nil && *req.Status != "" {
		status = *req.Status
	}

	e := Escala{
		DataAbate:   data,
		Volume:      *req.Volume,
		Status:      status,
		Observacoes: req.Observacoes,
		ProdutorID:  uint(*req.ProdutorID),
		PlantaID:    uint(*req.PlantaID),
	}

	if err := h.Repository.Criar(h.DB, &e); err != nil {
		h.Logger.Error("erro ao criar escala", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao criar escala")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, e)
}

// Atualizar trata PUT /escalas/{id} com semântica de atualização parcial.
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	var req AtualizarEscalaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErro(w, http.StatusBadRequest, "Dados inválidos")
		return
	}

	data, erros := req.Validar()
	if len(erros) > 0 {
		utils.RespondErroDetalhes(w, http.StatusBadRequest, "Dados inválidos", erros)
		return
	}

	// diferente do Criar, aqui cada referência presente é verificada
	// individualmente e a resposta aponta qual faltou
	if req.ProdutorID != nil {
		existe, err := h.Produtores.Existe(h.DB, uint(*req.ProdutorID))
		if err != nil {
			h.Logger.Error("erro ao verificar produtor", zap.Error(err))
			utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao atualizar escala")
			return
		}
		if !existe {
			utils.RespondErro(w, http.StatusNotFound, "Produtor não encontrado")
			return
		}
	}
	if req.PlantaID != nil {
		existe, err := h.Plantas.Existe(h.DB, uint(*req.PlantaID))
		if err != nil {
			h.Logger.Error("erro ao verificar planta", zap.Error(err))
			utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao atualizar escala")
			return
		}
		if !existe {
			utils.RespondErro(w, http.StatusNotFound, "Planta não encontrada")
			return
		}
	}

	if _, err := h.Repository.BuscarPorID(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Escala não encontrada para atualização")
			return
		}
		h.Logger.Error("erro ao buscar escala", zap.Uint("id", id), zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao atualizar escala")
		return
	}

	campos := map[string]any{}
	if req.DataAbate != nil {
		campos["data_abate"] = data
	}
	if req.Volume != nil {
		campos["volume"] = *req.Volume
	}
	if req.Status != nil {
		campos["status"] = *req.Status
	}
	if req.Observacoes.Definido {
		if req.Observacoes.Valor != nil {
			campos["observacoes"] = *req.Observacoes.Valor
		} else {
			campos["observacoes"] = nil
		}
	}
	if req.ProdutorID != nil {
		campos["produtor_id"] = uint(*req.ProdutorID)
	}
	if req.PlantaID != nil {
		campos["planta_id"] = uint(*req.PlantaID)
	}

	if len(campos) > 0 {
		if err := h.Repository.Atualizar(h.DB, id, campos); err != nil {
			h.Logger.Error("erro ao atualizar escala", zap.Uint("id", id), zap.Error(err))
			utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao atualizar escala")
			return
		}
	}

	atualizada, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		h.Logger.Error("erro ao recarregar escala", zap.Uint("id", id), zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao atualizar escala")
		return
	}
	utils.RespondJSON(w, http.StatusOK, atualizada)
}

// Deletar trata DELETE /escalas/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		utils.RespondErro(w, http.StatusBadRequest, "ID inválido")
		return
	}

	if err := h.Repository.Deletar(h.DB, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondErro(w, http.StatusNotFound, "Escala não encontrada para deleção")
			return
		}
		h.Logger.Error("erro ao deletar escala", zap.Uint("id", id), zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao deletar escala")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "Escala deletada com sucesso"})
}
