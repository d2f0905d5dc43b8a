package iocli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Проверяем что NewStdio возвращает валидный объект
func TestNewStdio(t *testing.T) {
	stdio := NewStdio()
	assert.NotNil(t, stdio)
}

func TestPrintlnAndPrintf(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader(""), &out)

	stdio.Println("hello", "world")
	stdio.Printf("test %d %s\n", 1, "abc")
	_, err := stdio.Write([]byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\ntest 1 abc\nraw", out.String())
}

// Несколько последовательных чтений из одного буфера
func TestReadInput_Sequential(t *testing.T) {
	var out bytes.Buffer
	stdio := NewStdioWith(strings.NewReader("dev@example.com\n  secret123  \nlast"), &out)

	first, err := stdio.ReadInput("Email: ")
	require.NoError(t, err)
	assert.Equal(t, "dev@example.com", first)

	second, err := stdio.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "secret123", second)

	// Последняя строка без перевода строки
	third, err := stdio.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", third)

	_, err = stdio.ReadInput("> ")
	assert.Error(t, err)

	assert.Equal(t, "Email: Password: > > ", out.String())
}

// ReadInput через подмененный os.Stdin
func TestReadInput_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)

	go func() {
		_, _ = w.Write([]byte("user input\n"))
		_ = w.Close()
	}()

	oldStdin := os.Stdin
	defer func() { os.Stdin = oldStdin }()
	os.Stdin = r

	stdio := NewStdio()
	result, err := stdio.ReadInput("Prompt: ")
	assert.NoError(t, err)
	assert.Equal(t, "user input", result)
}
