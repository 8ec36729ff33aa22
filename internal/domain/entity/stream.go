package entity

// Stream identifica una de las colecciones independientes de inventario.
// Cada stream tiene su propio listado de items y su propia serie de reportes diarios.
type Stream string

const (
	StreamSake  Stream = "sake"  // sake, shochu y licores
	StreamWine  Stream = "wine"  // vinos
	StreamOther Stream = "other" // otras bebidas
	StreamShelf Stream = "shelf" // alimentos e insumos de estantería
)

// Streams lista los streams válidos en orden estable.
var Streams = []Stream{StreamSake, StreamWine, StreamOther, StreamShelf}

// Valid indica si el stream es uno de los conocidos.
func (s Stream) Valid() bool {
	switch s {
	case StreamSake, StreamWine, StreamOther, StreamShelf:
		return true
	}
	return false
}

// TracksLevel indica si el stream maneja botellas abiertas con nivel restante (0-100).
// Solo sake y vino: en las demás colecciones los items se consumen por unidad completa.
func (s Stream) TracksLevel() bool {
	return s == StreamSake || s == StreamWine
}
