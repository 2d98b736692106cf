package cache

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nstepanov-dev/shortener/internal/model"
)

// setupTestCache подключается к Redis для интеграционных тестов.
// Тесты пропускаются, если TEST_REDIS_ADDR не задан
func setupTestCache(t *testing.T) *URLCache {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TEST_REDIS_ADDR is not set, skipping redis integration test")
	}

	urlCache, err := New(context.Background(), addr)
	require.NoError(t, err)

	t.Cleanup(func() {
		if err := urlCache.Close(); err != nil {
			t.Errorf("failed to close cache: %v", err)
		}
	})

	return urlCache
}

// testCode возвращает уникальный код, чтобы тесты не пересекались
// по ключам между запусками
func testCode() model.Code {
	return model.Code(uuid.NewString())
}

// TestURLCache_SetGet проверяет сохранение и чтение маппинга из кэша
func TestURLCache_SetGet(t *testing.T) {
	urlCache := setupTestCache(t)
	ctx := context.Background()
	code := testCode()

	// Act
	err := urlCache.Set(ctx, code, "https://example.com/cached")

	// Assert
	require.NoError(t, err)

	url, found, err := urlCache.Get(ctx, code)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.URL("https://example.com/cached"), url)
}

// TestURLCache_GetMiss проверяет, что промах кэша не является ошибкой
func TestURLCache_GetMiss(t *testing.T) {
	urlCache := setupTestCache(t)

	// Act
	url, found, err := urlCache.Get(context.Background(), testCode())

	// Assert
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, url)
}

// TestURLCache_Overwrite проверяет перезапись значения по тому же ключу
func TestURLCache_Overwrite(t *testing.T) {
	urlCache := setupTestCache(t)
	ctx := context.Background()
	code := testCode()

	require.NoError(t, urlCache.Set(ctx, code, "https://example.com/first"))
	require.NoError(t, urlCache.Set(ctx, code, "https://example.com/second"))

	url, found, err := urlCache.Get(ctx, code)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, model.URL("https://example.com/second"), url)
}

// TestNew_UnreachableAddress проверяет, что подключение к недоступному
// Redis завершается ошибкой
func TestNew_UnreachableAddress(t *testing.T) {
	_, err := New(context.Background(), "localhost:1")

	assert.Error(t, err)
}
