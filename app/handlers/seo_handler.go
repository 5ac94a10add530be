package handlers

import (
	"encoding/xml"
	"fmt"
	"log"
	"net/http"

	"github.com/lumiereglamour/store/app/repositories"
)

type SeoHandler struct {
	productRepo   repositories.ProductRepositoryImpl
	categoryRepo  repositories.CategoryRepositoryImpl
	canonicalHost string
}

func NewSeoHandler(
	productRepo repositories.ProductRepositoryImpl,
	categoryRepo repositories.CategoryRepositoryImpl,
	canonicalHost string,
) *SeoHandler {
	return &SeoHandler{
		productRepo:   productRepo,
		categoryRepo:  categoryRepo,
		canonicalHost: canonicalHost,
	}
}

type sitemapURL struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq"`
	Priority   float64 `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

func (h *SeoHandler) base() string {
	if h.canonicalHost != "" {
		return "https://" + h.canonicalHost
	}
	return ""
}

func (h *SeoHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	urlset := sitemapURLSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	base := h.base()

	categorias, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("SeoHandler.Sitemap: failed to load categorias: %v", err)
		http.Error(w, "Error generating sitemap", http.StatusInternalServerError)
		return
	}
	for _, c := range categorias {
		urlset.URLs = append(urlset.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s/categoria/%s/", base, c.Slug),
			LastMod:    c.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   0.7,
		})
	}

	productos, err := h.productRepo.GetAllActive(r.Context())
	if err != nil {
		log.Printf("SeoHandler.Sitemap: failed to load productos: %v", err)
		http.Error(w, "Error generating sitemap", http.StatusInternalServerError)
		return
	}
	for _, p := range productos {
		urlset.URLs = append(urlset.URLs, sitemapURL{
			Loc:        fmt.Sprintf("%s%s", base, productoURL(p.ID)),
			LastMod:    p.UpdatedAt.Format("2006-01-02"),
			ChangeFreq: "weekly",
			Priority:   0.6,
		})
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	_, _ = w.Write([]byte(xml.Header))
	if err := xml.NewEncoder(w).Encode(urlset); err != nil {
		log.Printf("SeoHandler.Sitemap: failed to encode sitemap: %v", err)
	}
}

func (h *SeoHandler) Robots(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	body := "User-agent: *\nAllow: /\n"
	if base := h.base(); base != "" {
		body += "Sitemap: " + base + "/sitemap.xml\n"
	}
	_, _ = w.Write([]byte(body))
}
