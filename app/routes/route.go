package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/csrf"
	"github.com/gorilla/mux"
	"github.com/lumiereglamour/store/app/configs"
	"github.com/lumiereglamour/store/app/handlers"
	"github.com/lumiereglamour/store/app/handlers/admin"
	"github.com/lumiereglamour/store/app/helpers"
	"github.com/lumiereglamour/store/app/middlewares"
	"github.com/lumiereglamour/store/app/repositories"
	"github.com/lumiereglamour/store/app/services"
	"github.com/lumiereglamour/store/app/utils/renderer"
	"github.com/lumiereglamour/store/app/utils/sessions"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB, env configs.ENV, sessionKeys *configs.SessionKeys) *mux.Router {
	render := renderer.New()

	sessionStore := sessions.NewCookieSessionStore(env.APP_ENV == "production", sessionKeys.AuthKey, sessionKeys.EncKey)

	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	favoritoRepo := repositories.NewFavoritoRepository(db)
	siteRepo := repositories.NewSiteRepository(db)

	catalogSvc := services.NewCatalogService(productRepo, categoryRepo, favoritoRepo)
	cartSvc := services.NewCartService(productRepo)

	baseData := helpers.NewBaseDataProvider(siteRepo, env.ContactNumber)
	categoriaCache := middlewares.NewCategoriaCache(15 * time.Minute)

	homeHandler := handlers.NewHomeHandler(catalogSvc, categoryRepo, siteRepo, sessionStore, baseData, render)
	productHandler := handlers.NewProductHandler(productRepo, catalogSvc, sessionStore, baseData, render)
	cartHandler := handlers.NewCartHandler(cartSvc, sessionStore, baseData, render)
	favoritoHandler := handlers.NewFavoritoHandler(favoritoRepo, productRepo, catalogSvc, sessionStore, baseData, render)
	searchHandler := handlers.NewSearchHandler(productRepo, render)
	seoHandler := handlers.NewSeoHandler(productRepo, categoryRepo, env.CanonicalHost)

	catalogAdmin := admin.NewCatalogAdminHandler(productRepo, categoryRepo, categoriaCache, render)
	siteAdmin := admin.NewSiteAdminHandler(siteRepo, render)

	router := mux.NewRouter()
	router.Use(middlewares.CanonicalHostRedirect(env.CanonicalHost))
	router.Use(middlewares.CartCountMiddleware(sessionStore))

	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// Rendered pages, CSRF-protected.
	csrfOptions := []csrf.Option{csrf.Secure(env.APP_ENV == "production")}
	if env.CSRFTrustedOrigin != "" {
		csrfOptions = append(csrfOptions, csrf.TrustedOrigins([]string{env.CSRFTrustedOrigin}))
	}
	csrfMiddleware := csrf.Protect(sessionKeys.AuthKey, csrfOptions...)

	pages := router.NewRoute().Subrouter()
	pages.Use(csrfMiddleware)
	pages.Handle("/categoria/{slug}/", categoriaCache.Middleware(http.HandlerFunc(productHandler.PorCategoria))).Methods("GET")
	pages.HandleFunc("/", homeHandler.Home).Methods("GET")
	pages.HandleFunc("/producto/{id}/", productHandler.Detail).Methods("GET")
	pages.HandleFunc("/etiqueta/{badge}/", productHandler.PorEtiqueta).Methods("GET")
	pages.HandleFunc("/carrito/", cartHandler.VerCarrito).Methods("GET")
	pages.HandleFunc("/favoritos/", favoritoHandler.VerFavoritos).Methods("GET")

	// AJAX endpoints stay outside the CSRF subrouter; the handlers answer
	// their own 405s for wrong verbs.
	router.HandleFunc("/agregar-al-carrito/", cartHandler.AgregarAlCarrito).Methods("POST", "GET", "PUT", "DELETE")
	router.HandleFunc("/eliminar-del-carrito/", cartHandler.EliminarDelCarrito).Methods("POST")
	router.HandleFunc("/toggle-favorito/", favoritoHandler.Toggle).Methods("POST", "GET", "PUT", "DELETE")
	router.HandleFunc("/api/buscar-productos/", searchHandler.APIBuscarProductos).Methods("GET")
	router.HandleFunc("/api/favoritos/", favoritoHandler.APIFavoritos).Methods("GET")

	router.HandleFunc("/sitemap.xml", seoHandler.Sitemap).Methods("GET")
	router.HandleFunc("/robots.txt", seoHandler.Robots).Methods("GET")

	adminRouter := router.PathPrefix("/admin/api").Subrouter()
	adminRouter.Use(middlewares.AdminBasicAuth(env.AdminUser, env.AdminPasswordHash))
	adminRouter.HandleFunc("/productos/", catalogAdmin.CreateProducto).Methods("POST")
	adminRouter.HandleFunc("/productos/{id}/", catalogAdmin.UpdateProducto).Methods("PUT")
	adminRouter.HandleFunc("/productos/{id}/", catalogAdmin.DeleteProducto).Methods("DELETE")
	adminRouter.HandleFunc("/categorias/", catalogAdmin.CreateCategoria).Methods("POST")
	adminRouter.HandleFunc("/categorias/{id}/", catalogAdmin.UpdateCategoria).Methods("PUT")
	adminRouter.HandleFunc("/categorias/{id}/", catalogAdmin.DeleteCategoria).Methods("DELETE")
	adminRouter.HandleFunc("/anuncios/", siteAdmin.CreateAnuncio).Methods("POST")
	adminRouter.HandleFunc("/anuncios/{id}/", siteAdmin.UpdateAnuncio).Methods("PUT")
	adminRouter.HandleFunc("/anuncios/{id}/", siteAdmin.DeleteAnuncio).Methods("DELETE")
	adminRouter.HandleFunc("/menu-items/", siteAdmin.CreateMenuItem).Methods("POST")
	adminRouter.HandleFunc("/menu-items/{id}/", siteAdmin.DeleteMenuItem).Methods("DELETE")
	adminRouter.HandleFunc("/settings/", siteAdmin.SetSetting).Methods("PUT", "POST")

	return router
}
