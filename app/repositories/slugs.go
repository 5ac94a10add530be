package repositories

import (
	"fmt"

	"github.com/gosimple/slug"
)

// UniqueSlug slugifies the name and disambiguates collisions by appending
// "-1", "-2", ... until exists reports the candidate as free.
func UniqueSlug(nombre string, exists func(candidate string) bool) string {
	base := slug.Make(nombre)
	candidate := base
	for contador := 1; exists(candidate); contador++ {
		candidate = fmt.Sprintf("%s-%d", base, contador)
	}
	return candidate
}
