package crc8

import (
	"bytes"
	"testing"
)

func TestVectors(t *testing.T) {
	tests := []struct {
		data string
		want uint8
	}{
		{"", 0x00},
		{"123456789", 0x37},
		{"\x00\x00\x00\x00\x00", 0x00},
		{"\x42\x43", 0x46},
		{"\xde\xad\xbe\xef", 0xea},
		{"\x12\x34\x56\x78\x90", 0xfc},
		{"\xff\xff\xff\xff\xff", 0xc2},
	}
	for _, test := range tests {
		if got := Checksum([]byte(test.data), PricklybirdTable); got != test.want {
			t.Errorf("Checksum(%q) = %#02x, want %#02x", test.data, got, test.want)
		}
	}
}

func TestTableLookup(t *testing.T) {
	for i := range 256 {
		b := byte(i)
		if got, want := Checksum([]byte{b}, PricklybirdTable), PricklybirdTable[b]; got != want {
			t.Errorf("Checksum(%#02x) = %#02x, want table value %#02x", b, got, want)
		}
	}
}

func TestZeroRemainder(t *testing.T) {
	data := []byte("Test data")
	for i := range 64 {
		data = append(data, byte(i*37))
		withCRC := append(bytes.Clone(data), Checksum(data, PricklybirdTable))
		if got := Checksum(withCRC, PricklybirdTable); got != 0 {
			t.Fatalf("data with appended checksum has remainder %#02x", got)
		}
	}
}

func TestUpdate(t *testing.T) {
	data := []byte("123456789")
	for split := range len(data) + 1 {
		crc := Update(0, PricklybirdTable, data[:split])
		crc = Update(crc, PricklybirdTable, data[split:])
		if crc != 0x37 {
			t.Errorf("split at %d: got %#02x, want 0x37", split, crc)
		}
	}
}

func TestHash(t *testing.T) {
	h := New(PricklybirdTable)
	if h.Size() != Size || h.BlockSize() != 1 {
		t.Errorf("size %d, block size %d", h.Size(), h.BlockSize())
	}
	h.Write([]byte("1234"))
	h.Write([]byte("56789"))
	if got := h.Sum8(); got != 0x37 {
		t.Errorf("Sum8 = %#02x, want 0x37", got)
	}
	if got := h.Sum([]byte{0xaa}); !bytes.Equal(got, []byte{0xaa, 0x37}) {
		t.Errorf("Sum = %x, want aa37", got)
	}
	h.Reset()
	if got := h.Sum8(); got != 0 {
		t.Errorf("Sum8 after Reset = %#02x, want 0", got)
	}
}
