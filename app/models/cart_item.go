package models

// CartItem is a session-resident cart line. It is never persisted to the
// database: the whole cart lives in the browser session as a gob-encoded
// slice, so every field is a snapshot taken at add-to-cart time.
type CartItem struct {
	ProductoID uint
	// VariantID identifies the cart line. When the product was added without
	// a real variation it falls back to the product id.
	VariantID uint
	Cantidad  int
	Color     string
	// Precio is the unit price snapshot, stored as a plain decimal string so
	// the gob payload stays stable.
	Precio string
	Imagen string
}
