// Package pricklybird converts arbitrary binary data to and from
// human-friendly words, where each word represents a single byte.
// A CRC-8 checksum word is appended to detect errors during decoding.
// 0xDEADBEEF becomes turf-port-rust-warn-void, for example.
//
// The package implements version v1 of the pricklybird encoding.
package pricklybird

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"pricklybird.dev/crc8"
)

// Version of the pricklybird encoding implemented by this package.
const Version = "v1"

// Separator is placed between consecutive words of an encoding.
const Separator = '-'

const wordLen = 4

// ErrChecksum is returned by Decode when the input is well-formed but
// its checksum word does not match the data.
var ErrChecksum = errors.New("pricklybird: invalid checksum")

// A FormatError describes malformed input: words of the wrong length,
// words missing from the wordlist, or too few words.
type FormatError struct {
	// Word is the index of the offending word, or -1 if the
	// error concerns the input as a whole.
	Word int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Word < 0 {
		return "pricklybird: invalid input: " + e.Msg
	}
	return fmt.Sprintf("pricklybird: word %d: %s", e.Word, e.Msg)
}

// Checksum returns the CRC-8 pricklybird appends to data.
func Checksum(data []byte) byte {
	return crc8.Checksum(data, crc8.PricklybirdTable)
}

// EncodedLen returns the length of the encoding of n bytes.
func EncodedLen(n int) int {
	if n == 0 {
		return 0
	}
	return (n+1)*wordLen + n
}

// Word returns the word representing b.
func Word(b byte) string {
	return wordlist[b]
}

// Lookup returns the byte represented by word. Unlike WordToByte, word
// must be in its canonical lowercase form.
func Lookup(word string) (byte, bool) {
	if len(word) != wordLen {
		return 0, false
	}
	b := hashTable[wordHash(word[0], word[3])]
	// The hash is lossy; confirm the candidate.
	if wordlist[b] != word {
		return 0, false
	}
	return b, true
}

// BytesToWords maps every byte of data to its word. No checksum is
// added.
func BytesToWords(data []byte) []string {
	words := make([]string, len(data))
	for i, b := range data {
		words[i] = wordlist[b]
	}
	return words
}

// WordToByte returns the byte represented by word, ignoring case.
func WordToByte(word string) (byte, error) {
	b, msg := decodeWord(cases.Lower(language.Und), word)
	if msg != "" {
		return 0, &FormatError{Word: -1, Msg: msg}
	}
	return b, nil
}

// WordsToBytes maps every word to its byte, ignoring case. No checksum
// is verified. The first invalid word aborts the conversion.
func WordsToBytes(words []string) ([]byte, error) {
	lower := cases.Lower(language.Und)
	data := make([]byte, 0, len(words))
	for i, w := range words {
		b, msg := decodeWord(lower, w)
		if msg != "" {
			return nil, &FormatError{Word: i, Msg: msg}
		}
		data = append(data, b)
	}
	return data, nil
}

// decodeWord returns the byte for word, or a description of why word
// is invalid.
func decodeWord(lower cases.Caser, word string) (byte, string) {
	w := lower.String(word)
	if len(w) != wordLen {
		return 0, "words must be four characters long"
	}
	b, ok := Lookup(w)
	if !ok {
		return 0, fmt.Sprintf("%q is not in the wordlist", word)
	}
	return b, ""
}

// Encode converts data to pricklybird words with a checksum word
// attached. Empty data encodes to the empty string.
func Encode(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	buf := make([]byte, 0, EncodedLen(len(data)))
	for _, b := range data {
		buf = append(buf, wordlist[b]...)
		buf = append(buf, Separator)
	}
	buf = append(buf, wordlist[Checksum(data)]...)
	return string(buf)
}

// Decode converts pricklybird words to the data they represent and
// verifies the checksum. Leading and trailing whitespace is ignored.
//
// Malformed input results in a [*FormatError]; a checksum mismatch in
// [ErrChecksum].
func Decode(words string) ([]byte, error) {
	split := strings.Split(strings.TrimSpace(words), string(Separator))
	if len(split) < 2 {
		return nil, &FormatError{Word: -1, Msg: "input must be at least two words long"}
	}
	data, err := WordsToBytes(split)
	if err != nil {
		return nil, err
	}
	if Checksum(data) != 0 {
		return nil, ErrChecksum
	}
	return data[:len(data)-1], nil
}
