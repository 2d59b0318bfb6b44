package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const (
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	idLength   = 6
)

// GenerateID gera IDs curtos para filiais e produtos
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, idLength)
}
