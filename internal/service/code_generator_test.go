package service

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/avc-dev/base62-shortener/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncode проверяет перевод чисел в base62
func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		value    uint64
		expected model.Code
	}{
		{name: "Zero", value: 0, expected: "a"},
		{name: "One", value: 1, expected: "b"},
		{name: "Last lowercase", value: 25, expected: "z"},
		{name: "First uppercase", value: 26, expected: "A"},
		{name: "Last uppercase", value: 51, expected: "Z"},
		{name: "First digit", value: 52, expected: "0"},
		{name: "Last single char", value: 61, expected: "9"},
		{name: "First two chars", value: 62, expected: "ba"},
		{name: "Two chars", value: 63, expected: "bb"},
		{name: "Last two chars", value: 62*62 - 1, expected: "99"},
		{name: "First three chars", value: 62 * 62, expected: "baa"},
		{name: "Max uint64", value: math.MaxUint64, expected: "v8QrKbgkrIp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Encode(tt.value))
		})
	}
}

// TestEncode_Alphabet проверяет порядок символов алфавита
func TestEncode_Alphabet(t *testing.T) {
	assert.Len(t, AllowedChars, 62)
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", AllowedChars)

	for i := range AllowedChars {
		assert.Equal(t, model.Code(AllowedChars[i:i+1]), Encode(uint64(i)))
	}
}

// TestCodeGenerator_Sequence проверяет порядок выдачи кодов
func TestCodeGenerator_Sequence(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator()

	// Act
	codes := make([]model.Code, 0, 63)
	for i := 0; i < 63; i++ {
		code, err := generator.Next()
		require.NoError(t, err)
		codes = append(codes, code)
	}

	// Assert
	assert.Equal(t, model.Code("a"), codes[0])
	assert.Equal(t, model.Code("b"), codes[1])
	assert.Equal(t, model.Code("9"), codes[61])
	assert.Equal(t, model.Code("ba"), codes[62])
	assert.Equal(t, uint64(63), generator.Issued())
}

// TestCodeGenerator_ConcurrentNext проверяет уникальность кодов при параллельной генерации
func TestCodeGenerator_ConcurrentNext(t *testing.T) {
	// Arrange
	generator := NewCodeGenerator()
	numGoroutines := 50
	perGoroutine := 100
	results := make(chan model.Code, numGoroutines*perGoroutine)
	wg := sync.WaitGroup{}
	wg.Add(numGoroutines)

	// Act
	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				code, err := generator.Next()
				if err != nil {
					t.Errorf("unexpected error: %v", err)
					return
				}
				results <- code
			}
		}()
	}

	wg.Wait()
	close(results)

	// Assert
	seen := make(map[model.Code]bool)
	for code := range results {
		assert.False(t, seen[code], "Duplicate code: %s", code)
		seen[code] = true
	}
	assert.Len(t, seen, numGoroutines*perGoroutine)
	assert.Equal(t, uint64(numGoroutines*perGoroutine), generator.Issued())
}

// TestCodeGenerator_Exhausted проверяет поведение на границе счетчика
func TestCodeGenerator_Exhausted(t *testing.T) {
	// Arrange
	generator := NewCodeGeneratorFrom(math.MaxUint64 - 1)

	// Act - последний допустимый код
	code, err := generator.Next()

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Encode(math.MaxUint64-1), code)

	// Act - счетчик исчерпан
	for i := 0; i < 3; i++ {
		code, err = generator.Next()

		assert.ErrorIs(t, err, ErrCounterExhausted)
		assert.Empty(t, code)
	}

	// Счетчик не переполнился
	assert.Equal(t, uint64(math.MaxUint64), generator.Issued())
}

// TestCodeGenerator_CodeFormat проверяет что коды состоят только из символов алфавита
func TestCodeGenerator_CodeFormat(t *testing.T) {
	generator := NewCodeGeneratorFrom(1_000_000)

	for i := 0; i < 100; i++ {
		code, err := generator.Next()
		require.NoError(t, err)

		for _, char := range code {
			assert.True(t, strings.ContainsRune(AllowedChars, char),
				"Code %s contains invalid character: %c", code, char)
		}
	}
}
