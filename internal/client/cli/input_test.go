package cli

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("alice@example.com\n"))

	got, err := GetSimpleText(r, "Enter email", &out)

	require.NoError(t, err)
	require.Equal(t, "alice@example.com", got)
	require.Equal(t, "Enter email\n> ", out.String())
}

func TestGetSimpleText_TrimsWhitespace(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("  value  \n"))

	got, err := GetSimpleText(r, "Prompt", &out)

	require.NoError(t, err)
	require.Equal(t, "value", got)
}

func TestGetSimpleText_PartialLineBeforeEOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader("no-newline"))

	got, err := GetSimpleText(r, "Prompt", &out)

	require.NoError(t, err)
	require.Equal(t, "no-newline", got)
}

func TestGetSimpleText_EOF(t *testing.T) {
	var out bytes.Buffer
	r := bufio.NewReader(strings.NewReader(""))

	_, err := GetSimpleText(r, "Prompt", &out)

	require.ErrorIs(t, err, io.EOF)
}

func TestGetPassword(t *testing.T) {
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte("s3cret"), nil }
	t.Cleanup(func() { readPassword = orig })

	var out bytes.Buffer
	pw, err := GetPassword(&out)

	require.NoError(t, err)
	require.Equal(t, []byte("s3cret"), pw)
	require.Contains(t, out.String(), "Enter password: ")
}

func TestGetAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "valid", input: "100.50\n", want: 100.50},
		{name: "integer", input: "25\n", want: 25},
		{name: "zero", input: "0\n", wantErr: true},
		{name: "negative", input: "-5\n", wantErr: true},
		{name: "not a number", input: "abc\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			r := bufio.NewReader(strings.NewReader(tt.input))

			got, err := GetAmount(r, "Amount", &out)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
