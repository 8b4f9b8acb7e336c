package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/resto-pos/internal/domain/repository"
)

var _ repository.SequenceRepository = (*SequenceRepo)(nil)

// SequenceRepo consecutivos de documento sobre la tabla sequences.
// El upsert con RETURNING hace el incremento atómico: dos transacciones
// concurrentes nunca obtienen el mismo valor (reemplaza el conteo de
// documentos del diseño original, que podía duplicar números).
type SequenceRepo struct {
	q Querier
}

// NewSequenceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSequenceRepository(q Querier) *SequenceRepo {
	return &SequenceRepo{q: q}
}

// Next devuelve el siguiente valor del consecutivo con nombre dado (empezando en 1).
func (r *SequenceRepo) Next(name string) (int64, error) {
	query := `
		INSERT INTO sequences (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = sequences.value + 1
		RETURNING value`
	var value int64
	if err := r.q.QueryRow(context.Background(), query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("next sequence %q: %w", name, err)
	}
	return value, nil
}
