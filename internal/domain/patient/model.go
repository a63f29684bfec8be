package patient

import (
	"time"

	"github.com/google/uuid"
)

// Patient is a demographic record. RUT is the national identifier and is
// unique across the registry.
type Patient struct {
	ID        uuid.UUID `json:"id"`
	RUT       string    `json:"rut"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	BirthDate time.Time `json:"birth_date"`
	Gender    string    `json:"gender"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
