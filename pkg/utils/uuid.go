package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera um identificador curto, válido como id de elemento HTML
func GenerateID(prefix string) (string, error) {
	id, err := gonanoid.Generate(characters, 8)
	if err != nil {
		return "", err
	}

	return prefix + "_" + id, nil
}
