package input_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adventcode/advent2022/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day_1.txt")
	require.NoError(t, os.WriteFile(path, []byte("100\n200\n"), 0o644))

	text, err := input.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "100\n200\n", text)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := input.ReadFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, input.Lines("a\nb\n"))
	assert.Equal(t, []string{"a", "b"}, input.Lines("a\nb"))
	assert.Equal(t, []string{"a", "", "b"}, input.Lines("a\n\nb\n"))
	assert.Nil(t, input.Lines(""))
	assert.Nil(t, input.Lines("\n"))
}

func TestBlocks(t *testing.T) {
	blocks := input.Blocks("a\nb\n\nc\n\nd\ne\n")
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}, {"d", "e"}}, blocks)

	assert.Nil(t, input.Blocks(""))
	assert.Equal(t, [][]string{{"solo"}}, input.Blocks("solo"))
}

func TestInts(t *testing.T) {
	nums, err := input.Ints("1\n-2\n 3 \n")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 3}, nums)
}

func TestInts_Empty(t *testing.T) {
	_, err := input.Ints("")
	assert.ErrorIs(t, err, input.ErrEmptyInput)
}

func TestInts_Malformed(t *testing.T) {
	_, err := input.Ints("1\ntwo\n")
	assert.Error(t, err)
}
