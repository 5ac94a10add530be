package services

import (
	"context"
	"sort"
	"strings"

	"github.com/lumiereglamour/store/app/models"
	"github.com/lumiereglamour/store/app/repositories"
)

// mockProductRepo filters an in-memory product set the way the real
// repository composes its query.
type mockProductRepo struct {
	products    []models.Producto
	variaciones []models.Variacion

	lastLimit  int
	lastOffset int
}

func (m *mockProductRepo) matches(p models.Producto, f repositories.ProductFilters) bool {
	if !p.IsActive {
		return false
	}
	if f.SoloOfertas && !p.Descuento.IsPositive() {
		return false
	}
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(p.Nombre), q) &&
			!strings.Contains(strings.ToLower(p.Descripcion), q) &&
			!strings.Contains(strings.ToLower(p.Categoria.Nombre), q) {
			return false
		}
	}
	if f.CategoriaID != 0 && p.CategoriaID != f.CategoriaID {
		return false
	}
	if f.SubcategoriaID != 0 {
		parentMatch := p.Categoria.ParentID != nil && *p.Categoria.ParentID == f.SubcategoriaID
		if p.CategoriaID != f.SubcategoriaID && !parentMatch {
			return false
		}
	}
	if len(f.CategoriaIDs) > 0 {
		found := false
		for _, id := range f.CategoriaIDs {
			if p.CategoriaID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Badge != "" && p.Badge != f.Badge {
		return false
	}
	return true
}

func (m *mockProductRepo) FilterPaginated(_ context.Context, f repositories.ProductFilters, limit, offset int) ([]models.Producto, int64, error) {
	m.lastLimit = limit
	m.lastOffset = offset

	var filtered []models.Producto
	for _, p := range m.products {
		if m.matches(p, f) {
			filtered = append(filtered, p)
		}
	}

	total := int64(len(filtered))
	start := offset
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
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

func (m *mockCategoryRepo) DescendantIDs(ctx context.Context, rootID uint) ([]uint, error) {
	visited := map[uint]bool{rootID: true}
	ids := []uint{rootID}
	queue := []uint{rootID}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		children, _ := m.GetChildren(ctx, current)
		for _, child := range children {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func (m *mockCategoryRepo) Create(_ context.Context, c *models.Categoria) error {
	m.categorias = append(m.categorias, *c)
	return nil
}

func (m *mockCategoryRepo) Update(context.Context, *models.Categoria) error { return nil }
func (m *mockCategoryRepo) Delete(context.Context, uint) error              { return nil }

type mockFavoritoRepo struct {
	favoritos map[string]map[uint]bool
}

func newMockFavoritoRepo() *mockFavoritoRepo {
	return &mockFavoritoRepo{favoritos: map[string]map[uint]bool{}}
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

func (m *mockFavoritoRepo) ProductsForSession(context.Context, string) ([]models.Producto, error) {
	return nil, nil
}
