package utils

import (
	"strings"

	"github.com/google/uuid"
)

// IdGenerator returns a fresh unique suffix for entity ids.
type IdGenerator func() string

// NewIdSuffix is the default IdGenerator: a uuid without dashes.
func NewIdSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// PrefixedId builds ids like "thread-3f2a..." from a prefix and a generator.
func PrefixedId(prefix string, gen IdGenerator) string {
	if gen == nil {
		gen = NewIdSuffix
	}
	return prefix + "-" + gen()
}
