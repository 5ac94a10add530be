package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/lumiereglamour/store/app/models"
	"github.com/lumiereglamour/store/app/repositories"
)

type mockProductRepo struct {
	products    []models.Producto
	variaciones []models.Variacion
}

func (m *mockProductRepo) FilterPaginated(_ context.Context, f repositories.ProductFilters, limit, offset int) ([]models.Producto, int64, error) {
	var filtered []models.Producto
	for _, p := range m.products {
		if !p.IsActive {
			continue
		}
		if f.Query != "" {
			q := strings.ToLower(f.Query)
			if !strings.Contains(strings.ToLower(p.Nombre), q) &&
				!strings.Contains(strings.ToLower(p.Descripcion), q) &&
				!strings.Contains(strings.ToLower(p.Categoria.Nombre), q) {
				continue
			}
		}
		filtered = append(filtered, p)
	}

	total := int64(len(filtered))
	if offset > len(filtered) {
		offset = len(filtered)
	}
	end := offset + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[offset:end], total, nil
}

func (m *mockProductRepo) SearchActive(ctx context.Context, query string, limit int) ([]models.Producto, error) {
	res, _, err := m.FilterPaginated(ctx, repositories.ProductFilters{Query: query}, limit, 0)
	return res, err
}

func (m *mockProductRepo) GetByID(_ context.Context, id uint) (*models.Producto, error) {
	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) GetActiveByID(ctx context.Context, id uint) (*models.Producto, error) {
	p, err := m.GetByID(ctx, id)
	if err != nil || p == nil || !p.IsActive {
		return nil, err
	}
	return p, nil
}

func (m *mockProductRepo) GetVariacion(_ context.Context, productoID, variacionID uint) (*models.Variacion, error) {
	for i := range m.variaciones {
		v := m.variaciones[i]
		if v.ID == variacionID && v.ProductoID == productoID {
			return &v, nil
		}
	}
	return nil, nil
}

func (m *mockProductRepo) RelatedByCategoria(_ context.Context, categoriaID, excludeID uint, limit int) ([]models.Producto, error) {
	var out []models.Producto
	for _, p := range m.products {
		if p.CategoriaID == categoriaID && p.ID != excludeID && p.IsActive && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) GetAllActive(context.Context) ([]models.Producto, error) {
	var out []models.Producto
	for _, p := range m.products {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockProductRepo) Create(_ context.Context, p *models.Producto) error {
	m.products = append(m.products, *p)
	return nil
}

func (m *mockProductRepo) Update(context.Context, *models.Producto) error { return nil }
func (m *mockProductRepo) Delete(context.Context, uint) error             { return nil }

type mockFavoritoRepo struct {
	favoritos map[string]map[uint]bool
	products  *mockProductRepo
}

func newMockFavoritoRepo(products *mockProductRepo) *mockFavoritoRepo {
	return &mockFavoritoRepo{favoritos: map[string]map[uint]bool{}, products: products}
}

func (m *mockFavoritoRepo) Toggle(_ context.Context, sessionKey string, productoID uint) (bool, error) {
	if m.favoritos[sessionKey] == nil {
		m.favoritos[sessionKey] = map[uint]bool{}
	}
	if m.favoritos[sessionKey][productoID] {
		delete(m.favoritos[sessionKey], productoID)
		return false, nil
	}
	m.favoritos[sessionKey][productoID] = true
	return true, nil
}

func (m *mockFavoritoRepo) FavoritoIDs(_ context.Context, sessionKey string) (map[uint]bool, error) {
	set := map[uint]bool{}
	for id := range m.favoritos[sessionKey] {
		set[id] = true
	}
	return set, nil
}

func (m *mockFavoritoRepo) ProductsForSession(ctx context.Context, sessionKey string) ([]models.Producto, error) {
	var out []models.Producto
	for id := range m.favoritos[sessionKey] {
		p, _ := m.products.GetActiveByID(ctx, id)
		if p != nil {
			out = append(out, *p)
		}
	}
	return out, nil
}

type mockCategoryRepo struct {
	categorias []models.Categoria
}

func (m *mockCategoryRepo) GetByID(_ context.Context, id uint) (*models.Categoria, error) {
	for i := range m.categorias {
		if m.categorias[i].ID == id {
			c := m.categorias[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockCategoryRepo) GetBySlug(_ context.Context, slug string) (*models.Categoria, error) {
	for i := range m.categorias {
		if m.categorias[i].Slug == slug {
			c := m.categorias[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (m *mockCategoryRepo) GetAll(context.Context) ([]models.Categoria, error) {
	return m.categorias, nil
}

func (m *mockCategoryRepo) GetPrincipales(context.Context) ([]models.Categoria, error) {
	var out []models.Categoria
	for _, c := range m.categorias {
		if c.ParentID == nil {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCategoryRepo) GetChildren(_ context.Context, parentID uint) ([]models.Categoria, error) {
	var out []models.Categoria
	for _, c := range m.categorias {
		if c.ParentID != nil && *c.ParentID == parentID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *mockCategoryRepo) DescendantIDs(_ context.Context, rootID uint) ([]uint, error) {
	return []uint{rootID}, nil
}

func (m *mockCategoryRepo) Create(context.Context, *models.Categoria) error { return nil }
func (m *mockCategoryRepo) Update(context.Context, *models.Categoria) error { return nil }
func (m *mockCategoryRepo) Delete(context.Context, uint) error              { return nil }

type mockSiteRepo struct {
	settings map[string]string
	menu     []models.MenuItem
	anuncios []models.Anuncio
}

func (m *mockSiteRepo) GetMenuItems(context.Context) ([]models.MenuItem, error) { return m.menu, nil }

func (m *mockSiteRepo) GetSetting(_ context.Context, key, fallback string) string {
	if v, ok := m.settings[key]; ok {
		return v
	}
	return fallback
}

func (m *mockSiteRepo) SetSetting(_ context.Context, key, value string) error {
	if m.settings == nil {
		m.settings = map[string]string{}
	}
	m.settings[key] = value
	return nil
}

func (m *mockSiteRepo) GetActiveAnuncios(context.Context) ([]models.Anuncio, error) {
	return m.anuncios, nil
}

func (m *mockSiteRepo) CreateMenuItem(_ context.Context, item *models.MenuItem) error {
	m.menu = append(m.menu, *item)
	return nil
}

func (m *mockSiteRepo) DeleteMenuItem(context.Context, uint) error { return nil }

func (m *mockSiteRepo) CreateAnuncio(_ context.Context, anuncio *models.Anuncio) error {
	m.anuncios = append(m.anuncios, *anuncio)
	return nil
}

func (m *mockSiteRepo) UpdateAnuncio(context.Context, *models.Anuncio) error { return nil }
func (m *mockSiteRepo) DeleteAnuncio(context.Context, uint) error            { return nil }

func (m *mockSiteRepo) GetAnuncioByID(_ context.Context, id uint) (*models.Anuncio, error) {
	for i := range m.anuncios {
		if m.anuncios[i].ID == id {
			a := m.anuncios[i]
			return &a, nil
		}
	}
	return nil, nil
}

// mockSessionStore keeps the session state in struct fields, one store per
// test case.
type mockSessionStore struct {
	key   string
	items []models.CartItem
}

func (m *mockSessionStore) SessionKey(*http.Request) string { return m.key }

func (m *mockSessionStore) EnsureSessionKey(http.ResponseWriter, *http.Request) (string, error) {
	if m.key == "" {
		m.key = "test-session-key"
	}
	return m.key, nil
}

func (m *mockSessionStore) Cart(*http.Request) []models.CartItem { return m.items }

func (m *mockSessionStore) SaveCart(_ http.ResponseWriter, _ *http.Request, items []models.CartItem) error {
	m.items = items
	return nil
}

func (m *mockSessionStore) ClearCart(http.ResponseWriter, *http.Request) error {
	m.items = nil
	return nil
}
