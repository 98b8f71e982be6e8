package identity

import (
	"time"

	"github.com/google/uuid"
)

// Provider genera UUID v4 y lee el reloj del sistema. No guarda estado.
type Provider struct{}

func NewProvider() Provider {
	return Provider{}
}

func (Provider) NewID() string {
	return uuid.NewString()
}

func (Provider) Now() time.Time {
	return time.Now().UTC()
}

// Fixed devuelve siempre el mismo id e instante. Pensado para tests y reproducciones.
type Fixed struct {
	ID string
	At time.Time
}

func (f Fixed) NewID() string {
	return f.ID
}

func (f Fixed) Now() time.Time {
	return f.At
}
