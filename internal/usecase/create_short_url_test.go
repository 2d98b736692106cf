package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstepanov-dev/shortener/internal/config"
	"github.com/nstepanov-dev/shortener/internal/model"
	"github.com/nstepanov-dev/shortener/internal/service"
	"github.com/nstepanov-dev/shortener/internal/store"
)

func TestCreateShortURL_Success(t *testing.T) {
	tests := []struct {
		name     string
		inputURL string
	}{
		{
			name:     "Valid HTTPS URL",
			inputURL: "https://example.com",
		},
		{
			name:     "Valid URL with path",
			inputURL: "https://example.com/path/to/resource",
		},
		{
			name:     "URL with query params",
			inputURL: "https://example.com?param=value&other=test",
		},
		{
			name:     "URL with unicode",
			inputURL: "https://example.com/путь",
		},
		{
			name:     "HTTP scheme",
			inputURL: "http://example.com",
		},
		{
			name:     "FTP scheme",
			inputURL: "ftp://files.example.com/archive.tar.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase := newMemoryUsecase(t)

			// Act
			response, err := usecase.CreateShortURL(context.Background(), tt.inputURL)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.inputURL, response.OriginalURL)

			prefix := "http://localhost:8080/"
			require.True(t, strings.HasPrefix(response.ShortURL, prefix),
				"Expected short URL to start with %s, got %s", prefix, response.ShortURL)

			code := strings.TrimPrefix(response.ShortURL, prefix)
			assert.Equal(t, config.DefaultCodeLength, len(code))
			for _, char := range code {
				assert.True(t, strings.ContainsRune(service.Alphabet, char),
					"Code contains invalid character: %c", char)
			}
		})
	}
}

func TestCreateShortURL_URLCleaning(t *testing.T) {
	tests := []struct {
		name        string
		inputURL    string
		expectedURL string
	}{
		{
			name:        "URL with double quotes",
			inputURL:    `"https://example.com"`,
			expectedURL: "https://example.com",
		},
		{
			name:        "URL with single quotes",
			inputURL:    `'https://example.com'`,
			expectedURL: "https://example.com",
		},
		{
			name:        "URL with spaces",
			inputURL:    "  https://example.com  ",
			expectedURL: "https://example.com",
		},
		{
			name:        "URL with quotes and spaces",
			inputURL:    `  "https://example.com"  `,
			expectedURL: "https://example.com",
		},
		{
			name:        "URL with newlines",
			inputURL:    "https://example.com\n",
			expectedURL: "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase := newMemoryUsecase(t)

			// Act
			response, err := usecase.CreateShortURL(context.Background(), tt.inputURL)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedURL, response.OriginalURL)
		})
	}
}

func TestCreateShortURL_Validation(t *testing.T) {
	tests := []struct {
		name        string
		inputURL    string
		expectedErr error
	}{
		{
			name:        "Empty URL",
			inputURL:    "",
			expectedErr: ErrEmptyURL,
		},
		{
			name:        "Whitespace only",
			inputURL:    "   ",
			expectedErr: ErrEmptyURL,
		},
		{
			name:        "Quotes only",
			inputURL:    `""`,
			expectedErr: ErrEmptyURL,
		},
		{
			name:        "Missing scheme",
			inputURL:    "example.com",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "Missing host",
			inputURL:    "https://",
			expectedErr: ErrInvalidURL,
		},
		{
			name:        "Plain text",
			inputURL:    "not a url",
			expectedErr: ErrInvalidURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			usecase := newMemoryUsecase(t)

			// Act
			_, err := usecase.CreateShortURL(context.Background(), tt.inputURL)

			// Assert
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestCreateShortURL_Deduplication(t *testing.T) {
	// Arrange
	usecase := newMemoryUsecase(t)
	inputURL := "https://example.com/some/path"

	// Act - сокращаем один URL дважды
	first, err := usecase.CreateShortURL(context.Background(), inputURL)
	require.NoError(t, err)

	second, err := usecase.CreateShortURL(context.Background(), inputURL)
	require.NoError(t, err)

	// Assert - возвращается тот же короткий URL
	assert.Equal(t, first.ShortURL, second.ShortURL)
}

func TestCreateShortURL_DifferentURLs(t *testing.T) {
	// Arrange
	usecase := newMemoryUsecase(t)

	// Act
	first, err := usecase.CreateShortURL(context.Background(), "https://example.com/1")
	require.NoError(t, err)

	second, err := usecase.CreateShortURL(context.Background(), "https://example.com/2")
	require.NoError(t, err)

	// Assert
	assert.NotEqual(t, first.ShortURL, second.ShortURL)
}

func TestCreateShortURL_RetryOnCodeConflict(t *testing.T) {
	// Arrange - первая вставка натыкается на занятый код, вторая проходит
	createCalls := 0
	repo := &mockRepository{
		createURLFunc: func(ctx context.Context, code model.Code, url model.URL) (model.URLMapping, error) {
			createCalls++
			if createCalls == 1 {
				return model.URLMapping{}, store.ErrCodeExists
			}
			return model.URLMapping{ShortCode: code, OriginalURL: url}, nil
		},
	}
	usecase := newMockUsecase(repo, nil)

	// Act
	response, err := usecase.CreateShortURL(context.Background(), "https://example.com")

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, response.ShortURL)
	assert.Equal(t, 2, createCalls, "Expected a retry after the code conflict")
}

func TestCreateShortURL_StorageError(t *testing.T) {
	// Arrange
	storageErr := errors.New("connection refused")
	repo := &mockRepository{
		getCodeByURLFunc: func(ctx context.Context, url model.URL) (model.Code, bool, error) {
			return "", false, storageErr
		},
	}
	usecase := newMockUsecase(repo, nil)

	// Act
	_, err := usecase.CreateShortURL(context.Background(), "https://example.com")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, storageErr)
}

func TestCreateShortURL_GeneratorExhausted(t *testing.T) {
	// Arrange - все коды заняты
	repo := &mockRepository{
		existsFunc: func(ctx context.Context, code model.Code) (bool, error) {
			return true, nil
		},
	}
	usecase := newMockUsecase(repo, nil)

	// Act
	_, err := usecase.CreateShortURL(context.Background(), "https://example.com")

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.ErrorIs(t, err, service.ErrGeneratorExhausted)
}
