package planta

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

func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Logger:     logger,
	}
}

// Listar trata GET /plantas
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	plantas, err := h.Repository.ListarTodas(h.DB)
	if err != nil {
		h.Logger.Error("erro ao buscar plantas", zap.Error(err))
		utils.RespondErro(w, http.StatusInternalServerError, "Erro interno ao buscar plantas")
		return
	}
	utils.RespondJSON(w, http.StatusOK, plantas)
}
