package utils

import "github.com/google/uuid"

// UUIDGenerator issues guest identifiers. Version 7 UUIDs are time-ordered,
// which keeps the quotes primary key index append-mostly.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, or a random v4 if the v7 clock read fails.
func (UUIDGenerator) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
