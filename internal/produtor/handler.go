package produtor

import (
	"net/http"

	"github.com/AgroEscala/api-escalas/internal/utils"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Logger     *zap.Logger
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Logger:     logger,
	}
}

// Listar trata GET /produtores
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	produtores, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		h.Logger.Error("erro ao buscar produtores", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao buscar produtores")
		return
	}
	utils.RespondJSON(w, http.StatusOK, produtores)
}
