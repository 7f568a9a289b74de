package db

import (
	"github.com/AgroEscala/api-escalas/internal/config"
	"gorm.io/gorm"
)

// GetDB carrega a configuração do ambiente e devolve a conexão pronta.
// Usado pelos binários auxiliares (cmd/seed).
func GetDB() (*gorm.DB, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, err
	}
	return ConnectDataBase(cfg.DB)
}
