package rental

// ReconcileStatistics rebuilds the spending statistics from the rental
// history when the backend reports zero total spend against a non-empty
// history. The backend has been observed returning valorTotalGasto = 0 for
// users with billed rentals; for that case the history is treated as the
// source of truth. The second return value reports whether the backend value
// was replaced.
func ReconcileStatistics(stats Statistics, history []Rental) (Statistics, bool) {
	if stats.ValorTotalGasto != 0 || len(history) == 0 {
		return stats, false
	}

	out := Statistics{TotalLocacoes: len(history)}
	for _, r := range history {
		out.ValorTotalGasto += r.ValorTotal
		switch r.Status {
		case StatusAtiva:
			out.LocacoesAtivas++
		case StatusFinalizada:
			out.LocacoesFinalizadas++
		}
	}
	return out, true
}
