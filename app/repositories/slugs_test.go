package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniqueSlug(t *testing.T) {
	taken := map[string]bool{}
	exists := func(s string) bool { return taken[s] }

	assert.Equal(t, "labial-mate", UniqueSlug("Labial Mate", exists))

	taken["labial-mate"] = true
	assert.Equal(t, "labial-mate-1", UniqueSlug("Labial Mate", exists))

	taken["labial-mate-1"] = true
	assert.Equal(t, "labial-mate-2", UniqueSlug("Labial Mate", exists))
}

func TestUniqueSlugNormalizesAccents(t *testing.T) {
	exists := func(string) bool { return false }

	assert.Equal(t, "categoria-de-maquillaje", UniqueSlug("Categoría de Maquillaje", exists))
}
