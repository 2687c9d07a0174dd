package slug

import (
	"crypto/rand"
	"fmt"
)

const (
	// Alphabet is the URL-safe character set used for generated slugs
	Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	// Length is the fixed length of generated slugs
	Length = 8
)

// Generator produces random URL-safe slugs
type Generator struct {
	length int
}

// NewGenerator creates a Generator with the default slug length
func NewGenerator() *Generator {
	return &Generator{length: Length}
}

// Generate returns a random slug drawn uniformly from the alphabet
func (g *Generator) Generate() (string, error) {
	buf := make([]byte, g.length)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf), nil
}

// IsValid checks if a string is a well-formed slug
func (g *Generator) IsValid(s string) bool {
	if len(s) != g.length {
		return false
	}
	for _, c := range s {
		if !isAlphabetChar(byte(c)) {
			return false
		}
	}
	return true
}

func isAlphabetChar(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return true
	case c >= 'a' && c <= 'z':
		return true
	case c >= '0' && c <= '9':
		return true
	}
	return false
}

// Capacity returns the size of the slug space for the configured length
func (g *Generator) Capacity() uint64 {
	capacity := uint64(1)
	for i := 0; i < g.length; i++ {
		capacity *= uint64(len(Alphabet))
	}
	return capacity
}
