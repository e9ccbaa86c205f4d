package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	teamCodeLength     = 6
	contractCodeLength = 10
)

func GenerateTeamCode() (string, error) {
	return generateCode("T", teamCodeLength)
}

func GenerateContractCode() (string, error) {
	return generateCode("C", contractCodeLength)
}

func generateCode(prefix string, size int) (string, error) {
	id, err := gonanoid.Generate(characters, size)
	if err != nil {
		return "", err
	}
	return prefix + id, nil
}
