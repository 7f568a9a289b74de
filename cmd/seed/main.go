// Carga inicial do banco: dois produtores, duas plantas e quatro escalas de
// exemplo. Pode rodar mais de uma vez; produtores e plantas usam upsert por
// nome e as escalas só entram quando a tabela está vazia.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/AgroEscala/api-escalas/internal/escala"
	"github.com/AgroEscala/api-escalas/internal/models"
	"github.com/AgroEscala/api-escalas/internal/planta"
	"github.com/AgroEscala/api-escalas/internal/produtor"
	"github.com/AgroEscala/api-escalas/internal/utils"
	"github.com/AgroEscala/api-escalas/internal/utils/db"
	"go.uber.org/zap"
)

func main() {
	logger, err := utils.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao iniciar logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.GetDB()
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	if err := database.AutoMigrate(
		&produtor.Produtor{},
		&planta.Planta{},
		&escala.Escala{},
	); err != nil {
		logger.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	produtores := produtor.NewRepository()
	plantas := planta.NewRepository()

	produtor1 := produtor.Produtor{
		Nome:     "Fazenda Boa Esperança",
		Email:    "contato@boaesperanca.com",
		Telefone: "11987654321",
	}
	produtor2 := produtor.Produtor{
		Nome:     "Agropecuária Santa Fé",
		Email:    "agro@santafe.com.br",
		Telefone: "62912345678",
	}
	for _, p := range []*produtor.Produtor{&produtor1, &produtor2} {
		if err := produtores.UpsertPorNome(database, p); err != nil {
			logger.Fatal("erro ao criar produtor", zap.String("nome", p.Nome), zap.Error(err))
		}
	}
	logger.Info("produtores criados", zap.String("a", produtor1.Nome), zap.String("b", produtor2.Nome))

	planta1 := planta.Planta{Nome: "Frigorífico Central", Cidade: "Goiânia", Estado: "GO"}
	planta2 := planta.Planta{Nome: "Abatedouro Regional Sul", Cidade: "Rio Verde", Estado: "GO"}
	for _, p := range []*planta.Planta{&planta1, &planta2} {
		if err := plantas.UpsertPorNome(database, p); err != nil {
			logger.Fatal("erro ao criar planta", zap.String("nome", p.Nome), zap.Error(err))
		}
	}
	logger.Info("plantas criadas", zap.String("a", planta1.Nome), zap.String("b", planta2.Nome))

	var totalEscalas int64
	if err := database.Model(&escala.Escala{}).Count(&totalEscalas).Error; err != nil {
		logger.Fatal("erro ao contar escalas", zap.Error(err))
	}
	if totalEscalas > 0 {
		logger.Info("escalas já existentes, carga ignorada", zap.Int64("total", totalEscalas))
		return
	}

	hoje := time.Now().Truncate(24 * time.Hour)
	ontem := hoje.AddDate(0, 0, -1)
	amanha := hoje.AddDate(0, 0, 1)
	proximaSemana := hoje.AddDate(0, 0, 7)

	obs1 := "Lote A1 concluído."
	obs3 := "Confirmar transporte."
	escalas := []escala.Escala{
		{DataAbate: ontem, Volume: 50, Status: models.StatusConcluido, ProdutorID: produtor1.ID, PlantaID: planta1.ID, Observacoes: &obs1},
		{DataAbate: hoje, Volume: 75, Status: models.StatusAgendado, ProdutorID: produtor2.ID, PlantaID: planta1.ID},
		{DataAbate: amanha, Volume: 100, Status: models.StatusAgendado, ProdutorID: produtor1.ID, PlantaID: planta2.ID, Observacoes: &obs3},
		{DataAbate: proximaSemana, Volume: 80, Status: models.StatusAgendado, ProdutorID: produtor2.ID, PlantaID: planta2.ID},
	}
	if err := database.Create(&escalas).Error; err != nil {
		logger.Fatal("erro ao criar escalas", zap.Error(err))
	}

	logger.Info("carga concluída", zap.Int("escalas", len(escalas)))
}
