package imageurl

import (
	"strings"

	"github.com/lumiereglamour/store/app/models"
)

const Placeholder = "/static/img/sin_imagen.jpg"

// ForceHTTPS rewrites scheme-relative and plain-HTTP URLs to HTTPS.
func ForceHTTPS(url string) string {
	if url == "" {
		return url
	}
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	if strings.HasPrefix(url, "http://") {
		return "https://" + strings.TrimPrefix(url, "http://")
	}
	return url
}

// Resolve picks the primary image for a product: the product's own image
// field, else the first gallery entry, else the static placeholder.
// The result is always HTTPS.
func Resolve(p *models.Producto) string {
	url := p.Imagen

	if url == "" && len(p.Images) > 0 {
		url = p.Images[0].Image
	}

	if url == "" {
		url = Placeholder
	}

	return ForceHTTPS(url)
}

// ResolveAbsolute returns the primary image as a fully qualified HTTPS URL.
// Root-relative results are joined against the canonical host; anything
// already absolute is returned as Resolve gives it.
func ResolveAbsolute(p *models.Producto, canonicalHost string) string {
	url := Resolve(p)

	host := strings.TrimSpace(canonicalHost)
	if host != "" && strings.HasPrefix(url, "/") {
		return "https://" + host + url
	}

	return url
}
