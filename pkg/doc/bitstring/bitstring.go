/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package bitstring

import (
	"bytes"
	"encoding/base64"
	"fmt"

	"github.com/klauspost/compress/gzip"
)

const (
	bitsPerByte = 8
	one         = 0x1
	bitOffset   = 7
)

// BitString holds a sequence of fixed-width status entries packed into a bit
// array. Entries are laid out left-to-right: the first entry occupies the
// most significant bits of the first byte, and within an entry the value is
// stored most-significant-bit first.
type BitString struct {
	bits         []byte
	bitsPerEntry int
}

type Opt func(*options)

type options struct {
	bitsPerEntry int
}

// WithBitsPerEntry sets the width of each entry in bits. Default is 1.
func WithBitsPerEntry(value int) Opt {
	return func(options *options) {
		options.bitsPerEntry = value
	}
}

// NewBitString returns a zeroed bitstring holding length entries.
func NewBitString(length int, opts ...Opt) *BitString {
	options := &options{bitsPerEntry: 1}

	for _, opt := range opts {
		opt(options)
	}

	size := 1 + ((length*options.bitsPerEntry - 1) / bitsPerByte)

	return &BitString{
		bits:         make([]byte, size),
		bitsPerEntry: options.bitsPerEntry,
	}
}

// DecodeBits decodes a gzip-compressed, unpadded base64url bitstring.
func DecodeBits(encodedBits string, opts ...Opt) (*BitString, error) {
	options := &options{bitsPerEntry: 1}

	for _, opt := range opts {
		opt(options)
	}

	decodedBits, err := base64.RawURLEncoding.DecodeString(encodedBits)
	if err != nil {
		return nil, err
	}

	b := bytes.NewReader(decodedBits)

	r, err := gzip.NewReader(b)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}

	return &BitString{
		bits:         buf.Bytes(),
		bitsPerEntry: options.bitsPerEntry,
	}, nil
}

// Set writes the value of the entry at the given position.
func (b *BitString) Set(position int, value uint64) error {
	if position < 0 || b.lastByte(position) > len(b.bits)-1 {
		return fmt.Errorf("position is invalid")
	}

	if value >= one<<uint(b.bitsPerEntry) {
		return fmt.Errorf("value %d does not fit in %d bits", value, b.bitsPerEntry)
	}

	for i := 0; i < b.bitsPerEntry; i++ {
		bit := position*b.bitsPerEntry + i
		nByte := bit / bitsPerByte
		nBit := bitOffset - (bit % bitsPerByte)

		// bit i of the entry is the (width-i)-th most significant bit of value
		if value&(one<<uint(b.bitsPerEntry-1-i)) != 0 {
			b.bits[nByte] |= one << nBit
		} else {
			b.bits[nByte] &= ^byte(one << nBit)
		}
	}

	return nil
}

// Get reads the value of the entry at the given position.
func (b *BitString) Get(position int) (uint64, error) {
	if position < 0 || b.lastByte(position) > len(b.bits)-1 {
		return 0, fmt.Errorf("position is invalid")
	}

	var value uint64

	for i := 0; i < b.bitsPerEntry; i++ {
		bit := position*b.bitsPerEntry + i
		nByte := bit / bitsPerByte
		nBit := bitOffset - (bit % bitsPerByte)

		value <<= 1

		if b.bits[nByte]&(one<<nBit) != 0 {
			value |= one
		}
	}

	return value, nil
}

// EncodeBits compresses the bit array with gzip and encodes it as unpadded
// base64url text. The output is deterministic for unchanged contents.
func (b *BitString) EncodeBits() (string, error) {
	var buf bytes.Buffer

	w := gzip.NewWriter(&buf)
	if _, err := w.Write(b.bits); err != nil {
		return "", err
	}

	if err := w.Close(); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

func (b *BitString) lastByte(position int) int {
	return (position*b.bitsPerEntry + b.bitsPerEntry - 1) / bitsPerByte
}
