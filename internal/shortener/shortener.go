package shortener

import (
	"encoding/base64"
	"math/rand/v2"
	"strconv"
)

// Generator produces short URL-safe link identifiers. An identifier is one
// uniformly random 32-bit integer, rendered as decimal text and encoded with
// unpadded URL-safe base64. The 32-bit space makes collisions possible across
// a large link population; the links table primary key is the actual guard,
// so a colliding insert surfaces as a store conflict instead of overwriting.
// Identifiers are not unguessable and are not meant to be.
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

func (g *Generator) Generate() string {
	n := rand.Uint32()
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.FormatUint(uint64(n), 10)))
}
