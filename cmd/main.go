package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sowbrand/api-producao/internal/auth"
	"github.com/sowbrand/api-producao/internal/cache"
	"github.com/sowbrand/api-producao/internal/cliente"
	"github.com/sowbrand/api-producao/internal/config"
	"github.com/sowbrand/api-producao/internal/configuracao"
	"github.com/sowbrand/api-producao/internal/fichatecnica"
	"github.com/sowbrand/api-producao/internal/fornecedor"
	"github.com/sowbrand/api-producao/internal/orcamento"
	"github.com/sowbrand/api-producao/internal/producao"
	"github.com/sowbrand/api-producao/internal/sequencia"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	cfg, err := config.Carregar()
	if err != nil {
		log.Fatal("configuração inválida:", err)
	}

	var (
		clienteRepo      cliente.Repository
		fornecedorRepo   fornecedor.Repository
		pedidoRepo       producao.Repository
		configuracaoRepo configuracao.Repository
		orcamentoRepo    orcamento.Repository
		fichaRepo        fichatecnica.Repository
		sequencias       sequencia.Gerador
		snapshot         cache.KV
	)

	switch cfg.ModoArmazenamento {
	case config.ModoLocal:
		// Modo sessão-local: todas as coleções vivem no KV, sob as
		// mesmas chaves que o aplicativo original usava.
		kv, err := cache.ConectarRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal("erro ao conectar no Redis:", err)
		}
		clienteRepo = cliente.NewRepositoryLocal(kv)
		fornecedorRepo = fornecedor.NewRepositoryLocal(kv)
		pedidoRepo = producao.NewRepositoryLocal(kv)
		configuracaoRepo = configuracao.NewRepositoryLocal(kv)
		orcamentoRepo = orcamento.NewRepositoryLocal(kv)
		fichaRepo = fichatecnica.NewRepositoryLocal(kv)
		sequencias = sequencia.NewGeradorLocal(kv)

	default:
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Error),
		})
		if err != nil {
			log.Fatal("Erro ao conectar no banco:", err)
		}

		if err := db.AutoMigrate(
			&cliente.Cliente{},
			&fornecedor.Fornecedor{},
			&producao.Pedido{},
			&configuracao.Configuracao{},
			&orcamento.Orcamento{},
			&fichatecnica.Ficha{},
			&sequencia.Sequencia{},
		); err != nil {
			log.Fatal("Erro no AutoMigrate:", err)
		}

		clienteRepo = cliente.NewRepository(db)
		fornecedorRepo = fornecedor.NewRepository(db)
		pedidoRepo = producao.NewRepository(db)
		configuracaoRepo = configuracao.NewRepository(db)
		orcamentoRepo = orcamento.NewRepository(db)
		fichaRepo = fichatecnica.NewRepository(db)
		sequencias = sequencia.NewGerador(db)

		// Espelho opcional das configurações no cache; sem Redis no
		// modo postgres o sistema segue normalmente.
		if kv, err := cache.ConectarRedis(cfg.RedisURL); err == nil {
			snapshot = kv
		} else {
			log.Println("snapshot de configurações desabilitado:", err)
		}
	}

	// Handlers
	authHandler := auth.NewHandler(cfg.AdminUsuario, cfg.AdminSenha, cfg.AdminSenhaHash, cfg.JWTSegredo)
	clienteHandler := cliente.NewHandler(clienteRepo)
	fornecedorHandler := fornecedor.NewHandler(fornecedorRepo)
	pedidoHandler := producao.NewHandler(pedidoRepo, clienteRepo, sequencias)
	configuracaoHandler := configuracao.NewHandler(configuracaoRepo, snapshot)
	orcamentoHandler := orcamento.NewHandler(orcamentoRepo, sequencias)
	fichaHandler := fichatecnica.NewHandler(fichaRepo, sequencias)

	// Router
	r := mux.NewRouter()

	// Rota de login (livre de autenticação)
	r.HandleFunc("/login", authHandler.Login).Methods("POST")

	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao(cfg.JWTSegredo))

	// Rotas de clientes
	api.HandleFunc("/clientes", clienteHandler.CriarCliente).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.ListarClientes).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.AtualizarCliente).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.DeletarCliente).Methods("DELETE")

	// Rotas de fornecedores
	api.HandleFunc("/fornecedores", fornecedorHandler.CriarFornecedor).Methods("POST")
	api.HandleFunc("/fornecedores", fornecedorHandler.ListarFornecedores).Methods("GET")
	api.HandleFunc("/fornecedores/{id}", fornecedorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/fornecedores/{id}", fornecedorHandler.AtualizarFornecedor).Methods("PUT")
	api.HandleFunc("/fornecedores/{id}", fornecedorHandler.DeletarFornecedor).Methods("DELETE")

	// Rotas de pedidos de produção
	api.HandleFunc("/pedidos", pedidoHandler.CriarPedido).Methods("POST")
	api.HandleFunc("/pedidos", pedidoHandler.ListarPedidos).Methods("GET")
	api.HandleFunc("/pedidos/{id}", pedidoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/pedidos/{id}", pedidoHandler.DeletarPedido).Methods("DELETE")
	api.HandleFunc("/pedidos/{id}/etapas/{etapa}", pedidoHandler.AtualizarEtapa).Methods("PATCH")

	// Rotas de configurações da empresa
	api.HandleFunc("/configuracoes", configuracaoHandler.BuscarConfiguracao).Methods("GET")
	api.HandleFunc("/configuracoes", configuracaoHandler.SalvarConfiguracao).Methods("PUT")

	// Rotas de orçamentos
	api.HandleFunc("/orcamentos", orcamentoHandler.CriarOrcamento).Methods("POST")
	api.HandleFunc("/orcamentos", orcamentoHandler.ListarOrcamentos).Methods("GET")
	api.HandleFunc("/orcamentos/{id}", orcamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/orcamentos/{id}", orcamentoHandler.SalvarOrcamento).Methods("PUT")
	api.HandleFunc("/orcamentos/{id}", orcamentoHandler.DeletarOrcamento).Methods("DELETE")

	// Rotas de fichas técnicas
	api.HandleFunc("/fichas", fichaHandler.CriarFicha).Methods("POST")
	api.HandleFunc("/fichas", fichaHandler.ListarFichas).Methods("GET")
	api.HandleFunc("/fichas/{id}", fichaHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/fichas/{id}", fichaHandler.SalvarFicha).Methods("PUT")
	api.HandleFunc("/fichas/{id}", fichaHandler.DeletarFicha).Methods("DELETE")

	// O cliente é um SPA servido de outra origem
	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + cfg.Porta)
	log.Fatal(http.ListenAndServe(":"+cfg.Porta, handler))
}
