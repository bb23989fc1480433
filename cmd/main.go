package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/PeegFlow/api-erp/internal/auth"
	"github.com/PeegFlow/api-erp/internal/cliente"
	"github.com/PeegFlow/api-erp/internal/contrato"
	"github.com/PeegFlow/api-erp/internal/dashboard"
	"github.com/PeegFlow/api-erp/internal/demo"
	"github.com/PeegFlow/api-erp/internal/financeiro"
	"github.com/PeegFlow/api-erp/internal/projeto"
	"github.com/PeegFlow/api-erp/internal/tarefa"
	"github.com/PeegFlow/api-erp/internal/usuario"
	"github.com/PeegFlow/api-erp/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	seed := flag.Bool("seed", false, "carrega os dados de demonstração e sai")
	flag.Parse()

	_ = godotenv.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&usuario.Usuario{},
		&cliente.Cliente{},
		&contrato.Contrato{},
		&projeto.Projeto{},
		&tarefa.Tarefa{},
		&financeiro.Lancamento{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	if err := demo.CriarAdminPadrao(database, logger); err != nil {
		log.Fatal("Erro ao criar admin padrão:", err)
	}
	if *seed {
		if err := demo.Executar(database, logger, time.Now()); err != nil {
			log.Fatal("Erro ao carregar demo:", err)
		}
		return
	}

	// Repositórios
	usuarioRepo := usuario.NewRepository(database)
	clienteRepo := cliente.NewRepository(database)
	contratoRepo := contrato.NewRepository(database)
	projetoRepo := projeto.NewRepository(database)
	tarefaRepo := tarefa.NewRepository(database)
	financeiroRepo := financeiro.NewRepository(database)

	// Handlers
	usuarioHandler := usuario.NewHandler(usuarioRepo)
	clienteHandler := cliente.NewHandler(clienteRepo)
	contratoHandler := contrato.NewHandler(contratoRepo, financeiroRepo)
	projetoHandler := projeto.NewHandler(projetoRepo)
	tarefaHandler := tarefa.NewHandler(tarefaRepo)
	financeiroHandler := financeiro.NewHandler(financeiroRepo)
	dashboardHandler := dashboard.NewHandler(financeiroRepo, tarefaRepo, clienteRepo, projetoRepo)
	demoHandler := demo.NewHandler(database, logger)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("GET")

	// Rotas autenticadas acessíveis a qualquer perfil (projetos e tarefas)
	protegido := r.NewRoute().Subrouter()
	protegido.Use(auth.MiddlewareAutenticacao)
	protegido.HandleFunc("/me", usuarioHandler.Me).Methods("GET")
	protegido.HandleFunc("/projetos", projetoHandler.Listar).Methods("GET")
	protegido.HandleFunc("/projetos/{id}", projetoHandler.BuscarPorID).Methods("GET")
	protegido.HandleFunc("/projetos/{id}", projetoHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/projetos/{id}/tarefas", tarefaHandler.CriarParaProjeto).Methods("POST")
	protegido.HandleFunc("/projetos/{id}/tarefas", tarefaHandler.ListarPorProjeto).Methods("GET")
	protegido.HandleFunc("/tarefas/{id}", tarefaHandler.Atualizar).Methods("PUT")
	protegido.HandleFunc("/tarefas/{id}/status", tarefaHandler.AtualizarStatus).Methods("PATCH")

	// Rotas administrativas (CRM, contratos, financeiro, dashboard)
	admin := r.NewRoute().Subrouter()
	admin.Use(auth.MiddlewareAutenticacao, auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")

	admin.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	admin.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	admin.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")

	admin.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	admin.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	admin.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/contratos/{id}/lancamentos", contratoHandler.ListarLancamentos).Methods("GET")

	admin.HandleFunc("/projetos", projetoHandler.Criar).Methods("POST")

	admin.HandleFunc("/financeiro", financeiroHandler.List).Methods("GET")
	admin.HandleFunc("/financeiro", financeiroHandler.Create).Methods("POST")
	admin.HandleFunc("/financeiro/resumo", financeiroHandler.ResumoMensal).Methods("GET")
	admin.HandleFunc("/financeiro/{id}", financeiroHandler.BuscarPorID).Methods("GET")
	admin.HandleFunc("/financeiro/{id}", financeiroHandler.Update).Methods("PUT")
	admin.HandleFunc("/financeiro/{id}/status", financeiroHandler.UpdateStatus).Methods("PATCH")

	admin.HandleFunc("/dashboard/fluxo-caixa", dashboardHandler.FluxoCaixa).Methods("GET")
	admin.HandleFunc("/dashboard/share-despesas", dashboardHandler.ShareDespesas).Methods("GET")
	admin.HandleFunc("/dashboard/eficiencia", dashboardHandler.Eficiencia).Methods("GET")
	admin.HandleFunc("/dashboard/clientes-por-setor", dashboardHandler.CarteiraPorSetor).Methods("GET")
	admin.HandleFunc("/dashboard/kpis", dashboardHandler.KPIs).Methods("GET")

	admin.HandleFunc("/demo", demoHandler.Carregar).Methods("POST")

	handler := cors.AllowAll().Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("servidor_iniciado", "porta", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
