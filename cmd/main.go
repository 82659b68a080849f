package main

import (
	"net/http"

	"github.com/KromaEnergia/finance-service/internal/auth"
	"github.com/KromaEnergia/finance-service/internal/cargo"
	"github.com/KromaEnergia/finance-service/internal/ciclopagamento"
	"github.com/KromaEnergia/finance-service/internal/config"
	"github.com/KromaEnergia/finance-service/internal/despesa"
	"github.com/KromaEnergia/finance-service/internal/funcionario"
	"github.com/KromaEnergia/finance-service/internal/logger"
	"github.com/KromaEnergia/finance-service/internal/mensageria"
	"github.com/KromaEnergia/finance-service/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg)

	database, err := db.GetDB()
	if err != nil {
		logger.Log.WithError(err).Fatal("Erro ao conectar no banco")
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&funcionario.StatusPagamento{},
		&ciclopagamento.ConfiguracaoCiclo{},
		&cargo.Cargo{},
		&despesa.GastoManual{},
		&despesa.Despesa{},
	); err != nil {
		logger.Log.WithError(err).Fatal("Erro no AutoMigrate")
	}

	// Repositórios
	funcionarioRepo := funcionario.NewRepository(database)
	cicloRepo := ciclopagamento.NewRepository(database)
	cargoRepo := cargo.NewRepository(database)
	despesaRepo := despesa.NewRepository(database)

	if err := cargoRepo.SeedCargosIniciais(); err != nil {
		logger.Log.WithError(err).Warn("Falha ao semear cargos iniciais")
	}

	// Mensageria: publicador real quando o RabbitMQ está habilitado,
	// nulo no modo local.
	var publicador mensageria.Publicador = mensageria.PublicadorNulo{}
	var amqpPub *mensageria.PublicadorAMQP
	if cfg.RabbitMQOn {
		amqpPub, err = mensageria.NovoPublicadorAMQP(cfg.RabbitMQURL)
		if err != nil {
			logger.Log.WithError(err).Warn("RabbitMQ indisponível, seguindo sem mensageria")
		} else {
			publicador = amqpPub
			defer amqpPub.Fechar()
		}
	} else {
		logger.Log.Info("RabbitMQ desabilitado, rodando em modo local")
	}

	// Sincronizador e roteamento das filas de entrada
	sincronizador := funcionario.NovoSincronizador(funcionarioRepo, publicador)
	consumidor := mensageria.NovoConsumidor()
	rotas := map[string]mensageria.HandlerEvento{
		mensageria.FilaFuncionarioCadastrado: sincronizador.AplicarCadastro,
		mensageria.FilaFuncionarioExcluido:   sincronizador.AplicarExclusao,
		mensageria.FilaCargoAlterado:         sincronizador.AplicarMudancaCargo,
		mensageria.FilaSituacaoAlterada:      sincronizador.AplicarMudancaSituacao,
	}
	for fila, handler := range rotas {
		if err := consumidor.Registrar(fila, handler); err != nil {
			logger.Log.WithError(err).Fatal("Erro ao registrar fila de consumo")
		}
	}
	if amqpPub != nil {
		if err := consumidor.IniciarConsumidores(amqpPub.Canal()); err != nil {
			logger.Log.WithError(err).Warn("Falha ao iniciar consumidores")
		}
	}

	executor := ciclopagamento.NovoExecutor(database, cicloRepo, funcionarioRepo, publicador)

	// Reconciliação de subida: garante a configuração e dispara o reset
	// pendente. Não derruba o processo em caso de falha.
	ciclopagamento.ReconciliarNaInicializacao(cicloRepo, executor)

	// Verificação periódica do ciclo. O avaliador continua puro; o cron é
	// só o chamador externo embutido no processo.
	agenda := cron.New()
	if _, err := agenda.AddFunc(cfg.CronSpecCiclo, func() {
		if _, err := executor.VerificarEExecutar(); err != nil {
			logger.Log.WithError(err).Error("Verificação agendada de reset falhou")
		}
	}); err != nil {
		logger.Log.WithError(err).Fatal("Cron spec inválida")
	}
	agenda.Start()
	defer agenda.Stop()

	// Handlers
	funcionarioHandler := funcionario.NewHandler(funcionarioRepo, cargoRepo, despesaRepo, publicador)
	cicloHandler := ciclopagamento.NewHandler(cicloRepo, executor)
	cargoHandler := cargo.NewHandler(cargoRepo)
	despesaHandler := despesa.NewHandler(despesaRepo, publicador)

	// Router
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	autenticacaoDesligada := cfg.AuthDisabled || cfg.JWTSecret == ""
	if autenticacaoDesligada {
		logger.Log.Warn("Autenticação de serviço desligada")
	}
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao(autenticacaoDesligada))

	// Rotas de pagamentos
	api.HandleFunc("/payments/status", funcionarioHandler.ListarStatus).Methods("GET")
	api.HandleFunc("/payments/cycle/config", cicloHandler.BuscarConfig).Methods("GET")
	api.HandleFunc("/payments/cycle/config", cicloHandler.AtualizarConfig).Methods("PUT")
	api.HandleFunc("/payments/cycle/next-reset", cicloHandler.ProximoReset).Methods("GET")
	api.HandleFunc("/payments/cycle/reset", cicloHandler.ResetManual).Methods("POST")
	api.HandleFunc("/payments/cycle/check-auto-reset", cicloHandler.VerificarResetAutomatico).Methods("POST")
	api.HandleFunc("/payments/{employeeId}", funcionarioHandler.BuscarStatus).Methods("GET")
	api.HandleFunc("/payments/{employeeId}/pay", funcionarioHandler.ConfirmarPagamento).Methods("PATCH")
	api.HandleFunc("/payments/{employeeId}/dismiss", funcionarioHandler.Demitir).Methods("POST")

	// Rotas de cargos
	api.HandleFunc("/positions", cargoHandler.Criar).Methods("POST")
	api.HandleFunc("/positions", cargoHandler.Listar).Methods("GET")
	api.HandleFunc("/positions/{id}", cargoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/positions/{id}", cargoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/positions/{id}", cargoHandler.Deletar).Methods("DELETE")

	// Rotas de despesas
	api.HandleFunc("/expenses", despesaHandler.ListarDespesas).Methods("GET")
	api.HandleFunc("/expenses/manual", despesaHandler.ListarGastosManuais).Methods("GET")
	api.HandleFunc("/expenses/manual", despesaHandler.CriarGastoManual).Methods("POST")
	api.HandleFunc("/expenses/manual/{id}", despesaHandler.RemoverGastoManual).Methods("DELETE")

	handler := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	logger.Log.Infof("Servidor rodando em http://localhost:%s", cfg.PortaHTTP)
	logger.Log.Fatal(http.ListenAndServe(":"+cfg.PortaHTTP, handler))
}
