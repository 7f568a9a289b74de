package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AgroEscala/api-escalas/internal/config"
	"github.com/AgroEscala/api-escalas/internal/escala"
	"github.com/AgroEscala/api-escalas/internal/middleware"
	"github.com/AgroEscala/api-escalas/internal/planta"
	"github.com/AgroEscala/api-escalas/internal/produtor"
	"github.com/AgroEscala/api-escalas/internal/relatorio"
	"github.com/AgroEscala/api-escalas/internal/utils"
	"github.com/AgroEscala/api-escalas/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao carregar configuração: %v\n", err)
		os.Exit(1)
	}

	logger, err := utils.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "erro ao iniciar logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	database, err := db.ConnectDataBase(cfg.DB)
	if err != nil {
		logger.Fatal("erro ao conectar no banco", zap.Error(err))
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&produtor.Produtor{},
		&planta.Planta{},
		&escala.Escala{},
	); err != nil {
		logger.Fatal("erro no AutoMigrate", zap.Error(err))
	}

	// Handlers
	produtorHandler := produtor.NewHandler(database, logger)
	plantaHandler := planta.NewHandler(database, logger)
	escalaHandler := escala.NewHandler(database, logger)
	relatorioHandler := relatorio.NewHandler(database, logger)

	// Router
	r := mux.NewRouter()
	r.Use(middleware.Logger(logger))

	// Rotas de escalas
	r.HandleFunc("/escalas", escalaHandler.Criar).Methods("POST")
	r.HandleFunc("/escalas", escalaHandler.Listar).Methods("GET")
	r.HandleFunc("/escalas/{id}", escalaHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/escalas/{id}", escalaHandler.Atualizar).Methods("PUT")
	r.HandleFunc("/escalas/{id}", escalaHandler.Deletar).Methods("DELETE")

	// Dados de referência
	r.HandleFunc("/produtores", produtorHandler.Listar).Methods("GET")
	r.HandleFunc("/plantas", plantaHandler.Listar).Methods("GET")

	// Visões de leitura
	r.HandleFunc("/relatorios/escalas", relatorioHandler.ListarEscalas).Methods("GET")
	r.HandleFunc("/dashboard", relatorioHandler.Dashboard).Methods("GET")
	r.HandleFunc("/calendario", relatorioHandler.Calendario).Methods("GET")

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.Origens,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: corsMiddleware.Handler(r),
	}

	go func() {
		logger.Info("servidor rodando", zap.String("porta", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("erro no servidor HTTP", zap.Error(err))
		}
	}()

	parar := make(chan os.Signal, 1)
	signal.Notify(parar, syscall.SIGINT, syscall.SIGTERM)
	<-parar

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("erro ao encerrar servidor", zap.Error(err))
	}
	logger.Info("servidor encerrado")
}
