package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// Alphabet содержит символы, из которых составляются короткие коды
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeChecker сообщает, занят ли код в хранилище
type CodeChecker func(ctx context.Context, code model.Code) (bool, error)

// CodeGenerator реализует генератор кодов с использованием вероятностного подхода:
// код берётся случайно, коллизия разрешается повторной генерацией
type CodeGenerator struct {
	length      int
	maxAttempts int
}

// NewCodeGenerator создает новый генератор кодов
func NewCodeGenerator(length, maxAttempts int) *CodeGenerator {
	return &CodeGenerator{
		length:      length,
		maxAttempts: maxAttempts,
	}
}

// GenerateCode генерирует случайный код заданной длины.
// Источник случайности crypto/rand, генератор безопасен для конкурентного вызова
func (g *CodeGenerator) GenerateCode() (model.Code, error) {
	result := make([]byte, g.length)
	alphabetSize := big.NewInt(int64(len(Alphabet)))

	for i := range result {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			return "", fmt.Errorf("failed to read random source: %w", err)
		}
		result[i] = Alphabet[n.Int64()]
	}

	return model.Code(result), nil
}

// GenerateUniqueCode генерирует код, свободный по данным checker.
// Занятый код приводит к повторной генерации, после maxAttempts занятых
// кодов подряд возвращается ErrGeneratorExhausted
func (g *CodeGenerator) GenerateUniqueCode(ctx context.Context, exists CodeChecker) (model.Code, error) {
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		code, err := g.GenerateCode()
		if err != nil {
			return "", err
		}

		taken, err := exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}

	return "", fmt.Errorf("after %d attempts: %w", g.maxAttempts, ErrGeneratorExhausted)
}
