package rental

import "testing"

func TestReconcileStatisticsTrustsBackend(t *testing.T) {
	t.Parallel()
	backend := Statistics{TotalLocacoes: 2, LocacoesFinalizadas: 2, ValorTotalGasto: 500}
	history := []Rental{{ValorTotal: 100, Status: StatusFinalizada}}

	got, reconciled := ReconcileStatistics(backend, history)
	if reconciled {
		t.Error("non-zero backend total: got reconciled = true, want false")
	}
	if got != backend {
		t.Errorf("non-zero backend total: got %+v, want %+v", got, backend)
	}
}

func TestReconcileStatisticsEmptyHistory(t *testing.T) {
	t.Parallel()
	backend := Statistics{}
	got, reconciled := ReconcileStatistics(backend, nil)
	if reconciled {
		t.Error("empty history: got reconciled = true, want false")
	}
	if got != backend {
		t.Errorf("empty history: got %+v, want %+v", got, backend)
	}
}

func TestReconcileStatisticsRecomputes(t *testing.T) {
	t.Parallel()
	history := []Rental{
		{ValorTotal: 300, Status: StatusFinalizada},
		{ValorTotal: 150, Status: StatusAtiva},
		{ValorTotal: 0, Status: StatusCancelada},
	}

	got, reconciled := ReconcileStatistics(Statistics{ValorTotalGasto: 0}, history)
	if !reconciled {
		t.Fatal("zero spend with history: got reconciled = false, want true")
	}

	want := Statistics{
		TotalLocacoes:       3,
		LocacoesAtivas:      1,
		LocacoesFinalizadas: 1,
		ValorTotalGasto:     450,
	}
	if got != want {
		t.Errorf("reconciled statistics: got %+v, want %+v", got, want)
	}
}
