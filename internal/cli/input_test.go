package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  hello world  \n"))

	got, err := GetSimpleText(r, "Say something", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Contains(t, out.String(), "Say something")
}

func TestGetSimpleText_EOFWithPartialLine(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no newline"))

	got, err := GetSimpleText(r, "p", &out)
	require.NoError(t, err)
	assert.Equal(t, "no newline", got)
}

func TestGetIntInRange(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("0\nten\n7\n"))

	got, err := GetIntInRange(r, "Importance", 1, 10, 5, &out)
	require.NoError(t, err)
	assert.Equal(t, 7, got)
	assert.Contains(t, out.String(), "between 1 and 10")
}

func TestGetIntInRange_EmptyReturnsFallback(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))

	got, err := GetIntInRange(r, "Importance", 1, 10, 5, &out)
	require.NoError(t, err)
	assert.Equal(t, 5, got)
}

func TestGetChoice(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("3\n"))

	idx, err := GetChoice(r, "Priority", []string{"Low", "Normal", "High", "Critical"}, 1, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.Contains(t, out.String(), "1. Low")
}

func TestGetChoice_DefaultOnEmpty(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("\n"))

	idx, err := GetChoice(r, "Priority", []string{"Low", "Normal", "High"}, 1, &out)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
}

func TestGetMultiline(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("line one\nline two\n\nignored\n"))

	got, err := GetMultiline(r, "Message", &out)
	require.NoError(t, err)
	assert.Equal(t, "line one\nline two", got)
}

func TestGetPIN_UsesSeam(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("1234"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pin, err := GetPIN(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("1234"), pin)
	assert.Contains(t, out.String(), "Enter PIN")
}
