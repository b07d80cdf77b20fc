package entity

import (
	"time"
)

// Product is a catalog entry owned by exactly one seller.
//
// ID is the store-assigned document id; it is attached after reads and never
// stored inside the document itself. SellerID is set once at creation and is
// the sole authorization key for updates.
//
// Price stays a string on purpose: values are echoed back into forms exactly
// as the seller typed them, and no arithmetic is performed on them.
type Product struct {
	ID           string    `firestore:"-"`
	Name         string    `firestore:"nombre"`
	Size         string    `firestore:"talla"`
	Price        string    `firestore:"precio"`
	SellerID     string    `firestore:"usuario_id"`
	RegisteredAt time.Time `firestore:"fecha_registro,serverTimestamp"`
	UpdatedAt    time.Time `firestore:"fecha_actualizacion,omitempty"`
}
