package dictionary

import (
	_ "embed"
	"sync"
)

//go:embed data/word_list.txt
var bundledWords string

var (
	embeddedOnce sync.Once
	embeddedDict *Dictionary
)

// Embedded returns the bundled word list. With maxWords == 0 the parsed
// dictionary is built once and shared, since it is read-only.
func Embedded(maxWords int) (*Dictionary, error) {
	if maxWords > 0 {
		d := Parse(bundledWords, maxWords)
		if d.Len() == 0 {
			return nil, ErrEmptyDictionary
		}
		return d, nil
	}

	embeddedOnce.Do(func() {
		embeddedDict = Parse(bundledWords, 0)
	})
	if embeddedDict.Len() == 0 {
		return nil, ErrEmptyDictionary
	}
	return embeddedDict, nil
}
