// Package crc8 implements the 8-bit cyclic redundancy check with
// MSB-first (unreflected) polynomials, zero initial value and no
// final XOR.
//
// The API mirrors hash/crc32.
package crc8

import "hash"

// Size of a CRC-8 checksum in bytes.
const Size = 1

// Pricklybird is the generator polynomial used by the pricklybird
// word encoding, x⁸+x⁴+x³+x²+1.
const Pricklybird = 0x1d

// Table is a 256-entry lookup table for a polynomial.
type Table [256]uint8

// PricklybirdTable is the table for the [Pricklybird] polynomial.
var PricklybirdTable = MakeTable(Pricklybird)

// MakeTable returns a table constructed from poly.
func MakeTable(poly uint8) *Table {
	t := new(Table)
	for i := range t {
		crc := uint8(i)
		for range 8 {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ poly
			} else {
				crc <<= 1
			}
		}
		t[i] = crc
	}
	return t
}

// Update returns the result of adding the bytes in p to crc.
func Update(crc uint8, tab *Table, p []byte) uint8 {
	for _, b := range p {
		crc = tab[crc^b]
	}
	return crc
}

// Checksum returns the CRC-8 of data using tab.
func Checksum(data []byte, tab *Table) uint8 {
	return Update(0, tab, data)
}

// Hash8 is the common interface implemented by all 8-bit hash functions.
type Hash8 interface {
	hash.Hash
	Sum8() uint8
}

type digest struct {
	crc uint8
	tab *Table
}

// New creates a new Hash8 computing the CRC-8 checksum using tab.
func New(tab *Table) Hash8 {
	return &digest{tab: tab}
}

func (d *digest) Size() int { return Size }

func (d *digest) BlockSize() int { return 1 }

func (d *digest) Reset() { d.crc = 0 }

func (d *digest) Write(p []byte) (n int, err error) {
	d.crc = Update(d.crc, d.tab, p)
	return len(p), nil
}

func (d *digest) Sum8() uint8 { return d.crc }

func (d *digest) Sum(in []byte) []byte {
	return append(in, d.crc)
}
