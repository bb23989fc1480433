package contrato

import (
	"testing"
	"time"
)

func data(ano int, mes time.Month, dia int) time.Time {
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

func TestCalcularFim(t *testing.T) {
	casos := []struct {
		inicio time.Time
		qtd    int
		fim    time.Time
	}{
		{data(2024, time.January, 15), 6, data(2024, time.July, 15)},
		{data(2024, time.January, 31), 1, data(2024, time.February, 29)},
		{data(2024, time.October, 1), 6, data(2025, time.April, 1)},
	}
	for _, c := range casos {
		if got := CalcularFim(c.inicio, c.qtd); !got.Equal(c.fim) {
			t.Errorf("CalcularFim(%v, %d) = %v; esperado %v", c.inicio, c.qtd, got, c.fim)
		}
	}
}

func TestStatusVigencia(t *testing.T) {
	hoje := data(2024, time.June, 1)

	if got := StatusVigencia(data(2024, time.July, 15), hoje); got != StatusAtivo {
		t.Errorf("contrato com fim futuro: status = %s; esperado Ativo", got)
	}
	if got := StatusVigencia(data(2024, time.May, 15), hoje); got != StatusEncerrado {
		t.Errorf("contrato vencido: status = %s; esperado Encerrado", got)
	}
	// Fim exatamente na data de avaliação já conta como encerrado
	if got := StatusVigencia(hoje, hoje); got != StatusEncerrado {
		t.Errorf("contrato no limite: status = %s; esperado Encerrado", got)
	}
}
