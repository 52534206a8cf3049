package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/kortschak/qr"
)

// quietZone is the border width in modules.
const quietZone = 2

// writeQR renders words as a QR code made of half block characters,
// two module rows per line. Light modules are drawn, which suits
// terminals with light text on a dark background.
func writeQR(w io.Writer, words string) error {
	// Upper case words fit the denser alphanumeric mode, and decode
	// to the same data.
	code, err := qr.Encode(strings.ToUpper(words), qr.M)
	if err != nil {
		return fmt.Errorf("qr: %w", err)
	}
	out := bufio.NewWriter(w)
	light := func(x, y int) bool {
		return !code.Black(x, y)
	}
	for y := -quietZone; y < code.Size+quietZone; y += 2 {
		for x := -quietZone; x < code.Size+quietZone; x++ {
			top, bottom := light(x, y), light(x, y+1)
			switch {
			case top && bottom:
				out.WriteString("█")
			case top:
				out.WriteString("▀")
			case bottom:
				out.WriteString("▄")
			default:
				out.WriteByte(' ')
			}
		}
		out.WriteByte('\n')
	}
	return out.Flush()
}
