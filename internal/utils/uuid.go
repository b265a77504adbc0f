package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered request identifiers (UUID v7), falling
// back to a random v4 UUID if v7 generation fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
