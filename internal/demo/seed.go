package demo

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/PeegFlow/api-erp/internal/cliente"
	"github.com/PeegFlow/api-erp/internal/contrato"
	"github.com/PeegFlow/api-erp/internal/financeiro"
	"github.com/PeegFlow/api-erp/internal/projeto"
	"github.com/PeegFlow/api-erp/internal/tarefa"
	"github.com/PeegFlow/api-erp/internal/usuario"
	"github.com/PeegFlow/api-erp/internal/utils"
	"gorm.io/gorm"
)

var (
	nomes   = []string{"Inova", "Agro", "Tech", "Log", "Construtora", "Hospital", "Escola", "Varejo", "Consultoria", "Indústria"}
	sufixos = []string{"Solutions", "Corp", "Brasil", "S.A.", "Global", "Systems", "Partners", "Ltda"}
	setores = []string{"Tecnologia", "Agronegócio", "Saúde", "Educação", "Varejo", "Indústria"}
	equipe  = []usuario.Usuario{
		{Login: "ana", Nome: "Ana Silva", Cargo: "Consultora Pleno", Perfil: usuario.PerfilPadrao},
		{Login: "bruno", Nome: "Bruno Souza", Cargo: "Consultor Jr", Perfil: usuario.PerfilPadrao},
		{Login: "roberto", Nome: "Roberto TI", Cargo: "Tech Lead", Perfil: usuario.PerfilPadrao},
		{Login: "julia", Nome: "Julia Financeiro", Cargo: "Analista", Perfil: usuario.PerfilPadrao},
	}
	responsaveis = []string{"Ana Silva", "Bruno Souza", "Roberto TI"}
	etapas       = []string{"Kickoff", "Diagnóstico", "Desenvolvimento", "Treinamento", "Entrega Final"}
	despesasFixas = []struct {
		Categoria string
		Valor     float64
	}{
		{"Salários", 40000},
		{"Aluguel", 5000},
		{"Impostos", 8000},
		{"Software", 2000},
	}
)

// CriarAdminPadrao garante o usuário admin inicial quando a tabela está vazia.
func CriarAdminPadrao(db *gorm.DB, log *slog.Logger) error {
	repo := usuario.NewRepository(db)
	n, err := repo.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	hash, err := utils.HashSenha("123")
	if err != nil {
		return err
	}
	admin := usuario.Usuario{
		Login:  "admin",
		Senha:  hash,
		Nome:   "Carlos Gestor",
		Cargo:  "CEO",
		Perfil: usuario.PerfilAdmin,
	}
	if err := repo.Create(&admin); err != nil {
		return err
	}
	log.Info("admin_padrao_criado", "login", admin.Login)
	return nil
}

// Executar popula o banco com a carga de demonstração: equipe, 20 clientes,
// contratos de 6 meses com financeiro gerado, projetos com tarefas e seis
// meses de despesas recorrentes.
//
// Idempotente: vira no-op se já existir qualquer cliente cadastrado.
func Executar(db *gorm.DB, log *slog.Logger, hoje time.Time) error {
	clientes := cliente.NewRepository(db)
	n, err := clientes.Count()
	if err != nil {
		return err
	}
	if n > 0 {
		log.Info("demo_ignorada_banco_populado", "clientes", n)
		return nil
	}

	if err := CriarAdminPadrao(db, log); err != nil {
		return err
	}
	if err := criarEquipe(db); err != nil {
		return err
	}
	if err := criarCarteira(db, hoje); err != nil {
		return err
	}
	if err := criarDespesasRecorrentes(db, hoje); err != nil {
		return err
	}

	log.Info("demo_carregada")
	return nil
}

func criarEquipe(db *gorm.DB) error {
	repo := usuario.NewRepository(db)
	for _, u := range equipe {
		hash, err := utils.HashSenha("123")
		if err != nil {
			return err
		}
		membro := u
		membro.Senha = hash
		if err := repo.Create(&membro); err != nil {
			return err
		}
	}
	return nil
}

func criarCarteira(db *gorm.DB, hoje time.Time) error {
	clientes := cliente.NewRepository(db)
	contratos := contrato.NewRepository(db)
	projetos := projeto.NewRepository(db)
	lancamentos := financeiro.NewRepository(db)

	for i := 0; i < 20; i++ {
		c := &cliente.Cliente{
			Nome:         fmt.Sprintf("%s %s %d", nomes[rand.Intn(len(nomes))], sufixos[rand.Intn(len(sufixos))], i+1),
			CpfCnpj:      fmt.Sprintf("%d.456.789/0001-%d", 10+rand.Intn(90), 10+rand.Intn(90)),
			Setor:        setores[rand.Intn(len(setores))],
			Porte:        []string{"Médio", "Grande"}[rand.Intn(2)],
			Filiais:      1 + rand.Intn(5),
			Endereco:     "Av. Central, 1000",
			Email:        fmt.Sprintf("contato@cli%d.com", i),
			DataCadastro: hoje.AddDate(0, 0, -(100 + rand.Intn(300))),
		}
		if err := clientes.Create(c); err != nil {
			return err
		}

		// 70% dos clientes têm contrato firmado
		if rand.Float64() <= 0.3 {
			continue
		}

		const meses = 6
		inicio := hoje.AddDate(0, 0, -(30 + rand.Intn(150)))
		fim := contrato.CalcularFim(inicio, meses)
		ct := &contrato.Contrato{
			ClienteID:   c.ID,
			Tipo:        []string{"Estratégia", "Financeira", "TI", "RH"}[rand.Intn(4)],
			ValorTotal:  []float64{30000, 60000, 120000}[rand.Intn(3)],
			QtdParcelas: meses,
			Inicio:      inicio,
			Fim:         fim,
			Status:      contrato.StatusVigencia(fim, hoje),
		}
		if err := contratos.CriarComParcelas(ct); err != nil {
			return err
		}

		// Parcelas já vencidas entram como pagas no histórico de demonstração
		parcelas, err := lancamentos.ListByContrato(ct.ID)
		if err != nil {
			return err
		}
		for _, p := range parcelas {
			if p.DataVencimento.Before(hoje) {
				if err := lancamentos.UpdateStatus(p.ID, financeiro.StatusPago, p.DataVencimento); err != nil {
					return err
				}
			}
		}

		resp := responsaveis[rand.Intn(len(responsaveis))]
		statusPj := projeto.StatusEmAndamento
		if ct.Status == contrato.StatusEncerrado {
			statusPj = projeto.StatusConcluido
		}
		pj := &projeto.Projeto{
			ContratoID:  ct.ID,
			Nome:        "Projeto " + c.Nome,
			Inicio:      inicio,
			Fim:         fim,
			Status:      statusPj,
			Responsavel: resp,
		}

		var iniciais []*tarefa.Tarefa
		for _, etapa := range etapas {
			limite := inicio.AddDate(0, 0, 10+rand.Intn(140))
			t := &tarefa.Tarefa{
				Descricao:   etapa,
				Tipo:        "Etapa",
				DataLimite:  limite,
				Responsavel: resp,
				Status:      tarefa.StatusPendente,
			}
			if limite.Before(hoje) && rand.Float64() > 0.2 {
				tarefa.AplicarStatus(t, tarefa.StatusConcluida, limite)
			}
			iniciais = append(iniciais, t)
		}
		if err := projetos.CriarComTarefas(pj, iniciais); err != nil {
			return err
		}
	}
	return nil
}

func criarDespesasRecorrentes(db *gorm.DB, hoje time.Time) error {
	repo := financeiro.NewRepository(db)

	// Últimos 6 meses mais o próximo, vencendo todo dia 10
	for m := -5; m <= 1; m++ {
		ref := financeiro.AdicionarMeses(hoje, m)
		vencimento := time.Date(ref.Year(), ref.Month(), 10, 0, 0, 0, 0, ref.Location())
		status := financeiro.StatusAberto
		if vencimento.Before(hoje) {
			status = financeiro.StatusPago
		}

		var lote []*financeiro.Lancamento
		for _, d := range despesasFixas {
			l := &financeiro.Lancamento{
				Tipo:           financeiro.TipoDespesa,
				Categoria:      d.Categoria,
				Valor:          d.Valor * (0.95 + rand.Float64()*0.1),
				DataVencimento: vencimento,
				Status:         status,
			}
			if status == financeiro.StatusPago {
				v := vencimento
				l.DataPagamento = &v
			}
			lote = append(lote, l)
		}
		if err := repo.CreateInBatch(lote); err != nil {
			return err
		}
	}
	return nil
}
