package dictionary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = "cat\nDog\n  car \n\nit's\nhouse\ncat\n42\ncan\n"

func TestParseFiltersAndKeepsOrder(t *testing.T) {
	d := Parse(sample, 0)

	assert.Equal(t, []string{"cat", "car", "house", "cat", "can"}, d.Words())
	assert.Equal(t, 5, d.Len())
	assert.Equal(t, "house", d.At(2))
	assert.Equal(t, []int{0, 1, 3, 4}, d.OfLength(3))
	assert.Equal(t, []int{3, 5}, d.Lengths())
	assert.Nil(t, d.OfLength(4))

	assert.True(t, d.Contains("car"))
	assert.False(t, d.Contains("dog"))
	assert.False(t, d.Contains("ca"))
}

func TestParseMaxWords(t *testing.T) {
	d := Parse(sample, 2)
	assert.Equal(t, []string{"cat", "car"}, d.Words())
}

func TestWordsIsACopy(t *testing.T) {
	d := Parse(sample, 0)
	words := d.Words()
	words[0] = "zzz"
	assert.Equal(t, "cat", d.At(0))
}

func TestWithPrefix(t *testing.T) {
	d := Parse(sample, 0)

	testCases := []struct {
		prefix string
		want   []int
	}{
		{"ca", []int{0, 1, 3, 4}},
		{"cat", []int{0, 3}},
		{"h", []int{2}},
		{"x", nil},
	}
	for _, tc := range testCases {
		t.Run(tc.prefix, func(t *testing.T) {
			assert.Equal(t, tc.want, d.WithPrefix(tc.prefix))
		})
	}
}

func TestStats(t *testing.T) {
	stats := Parse(sample, 0).Stats()
	assert.Equal(t, 5, stats["totalWords"])
	assert.Equal(t, 2, stats["lengths"])
	assert.Equal(t, 5, stats["longestWord"])
	assert.Equal(t, 4, stats["distinctWords"])
}

func TestLoad(t *testing.T) {
	d, err := Load(strings.NewReader(sample), 0)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())

	_, err = Load(strings.NewReader("Hello\n123\n\n"), 0)
	assert.ErrorIs(t, err, ErrEmptyDictionary)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(good, []byte(sample), 0o644))
	d, err := LoadFile(good, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, d.Len())

	empty := filepath.Join(dir, "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("Only\nCapitals\n"), 0o644))
	_, err = LoadFile(empty, 0)
	assert.ErrorIs(t, err, ErrEmptyDictionary)

	wrongExt := filepath.Join(dir, "words.csv")
	require.NoError(t, os.WriteFile(wrongExt, []byte(sample), 0o644))
	_, err = LoadFile(wrongExt, 0)
	assert.Error(t, err)

	_, err = LoadFile(dir, 0)
	assert.Error(t, err)

	_, err = LoadFile(filepath.Join(dir, "missing.txt"), 0)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormats(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "words.lst")
	require.NoError(t, os.WriteFile(path, []byte("cat\n"), 0o644))

	format, err := DetectFileFormat(path)
	require.NoError(t, err)
	assert.Equal(t, FormatText, format)

	info, ok := GetFormatInfo(FormatText)
	require.True(t, ok)
	assert.Contains(t, info.Extensions, ".txt")

	_, ok = GetFormatInfo(FormatUnknown)
	assert.False(t, ok)
}

func TestEmbedded(t *testing.T) {
	d, err := Embedded(0)
	require.NoError(t, err)
	assert.Greater(t, d.Len(), 2000)
	assert.True(t, d.Contains("cat"))
	assert.False(t, d.Contains("English"))
	for _, n := range d.Lengths() {
		assert.Greater(t, n, 0)
	}

	again, err := Embedded(0)
	require.NoError(t, err)
	assert.Same(t, d, again)

	small, err := Embedded(10)
	require.NoError(t, err)
	assert.Equal(t, 10, small.Len())
	assert.Equal(t, d.Words()[:10], small.Words())
}
