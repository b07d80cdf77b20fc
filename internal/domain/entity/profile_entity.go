package entity

import (
	"time"
)

// RoleSeller is the only role this application assigns. The field exists in
// the document so an admin panel sharing the collection can distinguish
// account kinds.
const RoleSeller = "vendedor"

// Profile is the durable record describing a seller. It is written once at
// registration and read back for the dashboard; nothing updates it here.
type Profile struct {
	UID          string    `firestore:"uid"`
	Email        string    `firestore:"email"`
	Role         string    `firestore:"rol"`
	RegisteredAt time.Time `firestore:"fecha_registro,serverTimestamp"`
}
