package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateIDWithPrefix returns ids such as "run_x81Kd02aQm3p".
func GenerateIDWithPrefix(prefix string, size int) (string, error) {
	id, err := gonanoid.Generate(characters, size)
	if err != nil {
		return "", err
	}
	return prefix + "_" + id, nil
}
