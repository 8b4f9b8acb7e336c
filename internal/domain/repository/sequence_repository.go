package repository

// SequenceRepository entrega consecutivos de documento (facturas, compras).
// Next es atómico: dos llamadas concurrentes nunca devuelven el mismo valor,
// a diferencia del esquema original basado en contar documentos.
type SequenceRepository interface {
	Next(name string) (int64, error)
}
