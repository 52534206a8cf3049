// Package golden stores and compares encoding test vectors in
// golden files.
//
// A vector file holds one vector per line: the hex encoded data,
// whitespace, and the expected encoding. Empty lines and lines
// starting with '#' are ignored.
package golden

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Vector is data together with its expected encoding.
type Vector struct {
	Data    []byte
	Encoded string
}

// Compare checks got against the vectors stored at path. If update is
// set, the file is replaced by got instead.
func Compare(path string, update bool, got []Vector) error {
	if update {
		return os.WriteFile(path, encodeVectors(filepath.Base(path), got), 0o640)
	}
	golden, err := Read(path)
	if err != nil {
		return err
	}
	mismatches := 0
	for i := range min(len(got), len(golden)) {
		g, w := got[i], golden[i]
		if !bytes.Equal(g.Data, w.Data) || g.Encoded != w.Encoded {
			mismatches++
		}
	}
	if mismatches > 0 || len(got) != len(golden) {
		return fmt.Errorf("%s: vector lengths %d, %d, with %d/%d mismatches", path, len(got), len(golden), mismatches, len(golden))
	}
	return nil
}

// Read parses the vectors stored at path.
func Read(path string) ([]Vector, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var vectors []Vector
	s := bufio.NewScanner(f)
	lineno := 0
	for s.Scan() {
		lineno++
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%s:%d: expected 2 fields, got %d", path, lineno, len(fields))
		}
		data, err := hex.DecodeString(fields[0])
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineno, err)
		}
		vectors = append(vectors, Vector{Data: data, Encoded: fields[1]})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return vectors, nil
}

func encodeVectors(name string, vectors []Vector) []byte {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "# %s: hex data, encoding. Generated with -update.\n", name)
	for _, v := range vectors {
		fmt.Fprintf(buf, "%x %s\n", v.Data, v.Encoded)
	}
	return buf.Bytes()
}
