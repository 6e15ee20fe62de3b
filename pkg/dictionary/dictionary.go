/*
Package dictionary loads the word list hangsolve reasons over.

A word list is newline-delimited text. Lines are trimmed and kept only when
they are made of ASCII lowercase letters; anything else (capitalised proper
nouns, apostrophes, digits) is dropped since patterns are single-byte a-z.
Order is preserved and duplicates are kept.

The loaded Dictionary is immutable. Besides the ordered word slice it holds
two read-only indexes built once at load time:

  - positions grouped by word length
  - a patricia trie keyed by word, storing the positions of that word

Both indexes return positions in ascending dictionary order so callers can
rebuild results in insertion order.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/bastiangx/hangsolve/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// ErrEmptyDictionary is returned when no usable word survives loading.
var ErrEmptyDictionary = errors.New("dictionary: no usable words")

// Dictionary is an ordered, read-only word list.
type Dictionary struct {
	words   []string
	byLen   map[int][]int
	index   *patricia.Trie
	longest int
}

// Parse builds a Dictionary from raw word list text.
// maxWords > 0 stops after that many accepted words.
func Parse(text string, maxWords int) *Dictionary {
	b := newBuilder(maxWords)
	for _, line := range strings.Split(text, "\n") {
		if b.full() {
			break
		}
		b.add(line)
	}
	return b.dictionary()
}

// Load reads a word list from r. It fails with ErrEmptyDictionary when
// nothing usable was read.
func Load(r io.Reader, maxWords int) (*Dictionary, error) {
	b := newBuilder(maxWords)
	sc := bufio.NewScanner(r)
	for sc.Scan() && !b.full() {
		b.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read word list: %w", err)
	}
	if b.skipped > 0 {
		log.Debugf("Skipped %d non-lowercase lines", b.skipped)
	}
	d := b.dictionary()
	if d.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	return d, nil
}

// LoadFile validates and loads an external plain text word list.
func LoadFile(path string, maxWords int) (*Dictionary, error) {
	if err := ValidateFileFormat(path, FormatText); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()

	d, err := Load(f, maxWords)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded %d words from %s", d.Len(), path)
	return d, nil
}

// Len returns the number of words.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// At returns the word at position i.
func (d *Dictionary) At(i int) string {
	return d.words[i]
}

// Words returns a copy of the ordered word list.
func (d *Dictionary) Words() []string {
	out := make([]string, len(d.words))
	copy(out, d.words)
	return out
}

// OfLength returns the positions of all words with n letters.
// The returned slice is shared and must not be modified.
func (d *Dictionary) OfLength(n int) []int {
	return d.byLen[n]
}

// WithPrefix returns the positions of every word starting with prefix, ascending.
func (d *Dictionary) WithPrefix(prefix string) []int {
	var positions []int
	err := d.index.VisitSubtree(patricia.Prefix(prefix), func(_ patricia.Prefix, item patricia.Item) error {
		positions = append(positions, item.([]int)...)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting dictionary trie: %v", err)
		return nil
	}
	sort.Ints(positions)
	return positions
}

// Contains reports whether w is in the dictionary.
func (d *Dictionary) Contains(w string) bool {
	return d.index.Get(patricia.Prefix(w)) != nil
}

// Lengths returns every distinct word length, ascending.
func (d *Dictionary) Lengths() []int {
	lengths := make([]int, 0, len(d.byLen))
	for n := range d.byLen {
		lengths = append(lengths, n)
	}
	sort.Ints(lengths)
	return lengths
}

// Stats returns statistics about the loaded dictionary
func (d *Dictionary) Stats() map[string]int {
	return map[string]int{
		"totalWords":    len(d.words),
		"lengths":       len(d.byLen),
		"longestWord":   d.longest,
		"distinctWords": d.distinct(),
	}
}

func (d *Dictionary) distinct() int {
	n := 0
	d.index.Visit(func(_ patricia.Prefix, _ patricia.Item) error {
		n++
		return nil
	})
	return n
}

// builder accumulates accepted lines and their indexes.
type builder struct {
	d        *Dictionary
	maxWords int
	skipped  int
}

func newBuilder(maxWords int) *builder {
	return &builder{
		d: &Dictionary{
			byLen: make(map[int][]int),
			index: patricia.NewTrie(),
		},
		maxWords: maxWords,
	}
}

func (b *builder) full() bool {
	return b.maxWords > 0 && len(b.d.words) >= b.maxWords
}

func (b *builder) add(line string) {
	w := strings.TrimSpace(line)
	if w == "" {
		return
	}
	if !utils.IsLowerASCII(w) {
		b.skipped++
		return
	}

	pos := len(b.d.words)
	b.d.words = append(b.d.words, w)
	b.d.byLen[len(w)] = append(b.d.byLen[len(w)], pos)
	if len(w) > b.d.longest {
		b.d.longest = len(w)
	}

	key := patricia.Prefix(w)
	if item := b.d.index.Get(key); item != nil {
		b.d.index.Set(key, append(item.([]int), pos))
		return
	}
	b.d.index.Insert(key, []int{pos})
}

func (b *builder) dictionary() *Dictionary {
	return b.d
}
