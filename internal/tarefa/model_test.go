package tarefa

import (
	"testing"
	"time"
)

func TestAplicarStatus_ConcluirPreencheData(t *testing.T) {
	hoje := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	tarefa := Tarefa{Descricao: "Kickoff", Status: StatusPendente}

	AplicarStatus(&tarefa, StatusConcluida, hoje)
	if tarefa.Status != StatusConcluida {
		t.Errorf("status = %s; esperado Concluída", tarefa.Status)
	}
	if tarefa.DataConclusao == nil || !tarefa.DataConclusao.Equal(hoje) {
		t.Errorf("data de conclusão = %v; esperado %v", tarefa.DataConclusao, hoje)
	}
}

func TestAplicarStatus_ReabrirLimpaData(t *testing.T) {
	hoje := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	tarefa := Tarefa{Descricao: "Diagnóstico", Status: StatusPendente}

	AplicarStatus(&tarefa, StatusConcluida, hoje)
	AplicarStatus(&tarefa, StatusPendente, hoje.AddDate(0, 0, 1))

	if tarefa.Status != StatusPendente {
		t.Errorf("status = %s; esperado Pendente", tarefa.Status)
	}
	if tarefa.DataConclusao != nil {
		t.Errorf("data de conclusão = %v; esperado nil", tarefa.DataConclusao)
	}
}

func TestAplicarStatus_PendenteDiretoParaConcluida(t *testing.T) {
	hoje := time.Date(2024, time.May, 20, 0, 0, 0, 0, time.UTC)
	tarefa := Tarefa{Descricao: "Entrega Final", Status: StatusPendente}

	AplicarStatus(&tarefa, StatusEmAndamento, hoje)
	if tarefa.DataConclusao != nil {
		t.Errorf("em andamento não deveria ter data de conclusão")
	}

	AplicarStatus(&tarefa, StatusConcluida, hoje)
	if tarefa.DataConclusao == nil {
		t.Error("concluída deveria ter data de conclusão")
	}
}

func TestStatusValido(t *testing.T) {
	for _, s := range []Status{StatusPendente, StatusEmAndamento, StatusConcluida} {
		if !s.Valido() {
			t.Errorf("status %s deveria ser válido", s)
		}
	}
	if Status("Cancelada").Valido() {
		t.Error("status fora do conjunto deveria ser inválido")
	}
}
