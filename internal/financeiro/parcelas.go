package financeiro

import (
	"errors"
	"fmt"
	"time"
)

// ErrParcelamentoInvalido indica valor total ou quantidade de parcelas não positivos.
var ErrParcelamentoInvalido = errors.New("valor total e quantidade de parcelas devem ser positivos")

// Parcela é um item do cronograma de amortização de um contrato.
type Parcela struct {
	Valor      float64
	Vencimento time.Time
}

// AdicionarMeses avança a data em n meses de calendário, preservando o
// dia do mês quando ele existe no mês de destino; caso contrário usa o
// último dia do mês (31/jan + 1 mês = 28 ou 29/fev).
func AdicionarMeses(data time.Time, n int) time.Time {
	ano, mes, dia := data.Date()
	primeiro := time.Date(ano, mes+time.Month(n), 1, 0, 0, 0, 0, data.Location())
	ultimo := primeiro.AddDate(0, 1, -1).Day()
	if dia > ultimo {
		dia = ultimo
	}
	return time.Date(primeiro.Year(), primeiro.Month(), dia, 0, 0, 0, 0, data.Location())
}

// GerarParcelas divide o valor total do contrato em parcelas mensais iguais
// a partir da data de início. A divisão é simples (valor/qtd), sem
// redistribuição de resto de arredondamento. A parcela k vence em
// inicio + k meses.
//
// A geração não é deduplicada aqui: cabe ao fluxo de criação de contrato
// invocá-la exatamente uma vez por contrato.
func GerarParcelas(valorTotal float64, qtdParcelas int, inicio time.Time) ([]Parcela, error) {
	if valorTotal <= 0 || qtdParcelas < 1 {
		return nil, ErrParcelamentoInvalido
	}

	valorParcela := valorTotal / float64(qtdParcelas)
	parcelas := make([]Parcela, 0, qtdParcelas)
	for k := 0; k < qtdParcelas; k++ {
		parcelas = append(parcelas, Parcela{
			Valor:      valorParcela,
			Vencimento: AdicionarMeses(inicio, k),
		})
	}
	return parcelas, nil
}

// GerarLancamentos monta os lançamentos de Receita de um contrato recém
// firmado, todos Abertos, com a categoria "Mensalidade k/N".
func GerarLancamentos(contratoID uint, valorTotal float64, qtdParcelas int, inicio time.Time) ([]*Lancamento, error) {
	parcelas, err := GerarParcelas(valorTotal, qtdParcelas, inicio)
	if err != nil {
		return nil, err
	}

	lancamentos := make([]*Lancamento, 0, len(parcelas))
	for k, p := range parcelas {
		id := contratoID
		lancamentos = append(lancamentos, &Lancamento{
			ContratoID:     &id,
			Tipo:           TipoReceita,
			Categoria:      fmt.Sprintf("Mensalidade %d/%d", k+1, qtdParcelas),
			Valor:          p.Valor,
			DataVencimento: p.Vencimento,
			Status:         StatusAberto,
		})
	}
	return lancamentos, nil
}
