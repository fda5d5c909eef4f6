// Package reference mints the opaque correlation tokens that tie a
// payment initiation to the gateway callback it produces later.
package reference

import "math/rand/v2"

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const DefaultLength = 16

type Generator struct {
	length int
}

func NewGenerator(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{length: length}
}

// Generate returns a fresh alphanumeric reference. Uniqueness is
// probabilistic only; nothing de-duplicates tokens across attempts.
func (g *Generator) Generate() string {
	buf := make([]byte, g.length)
	for i := range buf {
		buf[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(buf)
}
