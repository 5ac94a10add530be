package helpers

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/lumiereglamour/store/app/repositories"
)

const settingContactNumber = "whatsapp_number"

// BaseDataProvider assembles the data every rendered page needs: menu
// entries, the contact number setting and the session cart count.
type BaseDataProvider struct {
	siteRepo        repositories.SiteRepositoryImpl
	contactFallback string
}

func NewBaseDataProvider(siteRepo repositories.SiteRepositoryImpl, contactFallback string) *BaseDataProvider {
	return &BaseDataProvider{siteRepo: siteRepo, contactFallback: contactFallback}
}

func (b *BaseDataProvider) GetBaseData(r *http.Request, pageSpecificData map[string]interface{}) map[string]interface{} {
	if pageSpecificData == nil {
		pageSpecificData = make(map[string]interface{})
	}

	if _, exists := pageSpecificData["Title"]; !exists {
		pageSpecificData["Title"] = "Lumière Glamour"
	}

	menuItems, err := b.siteRepo.GetMenuItems(r.Context())
	if err != nil {
		log.Printf("GetBaseData: failed to load menu items: %v", err)
	}
	pageSpecificData["MenuItems"] = menuItems

	pageSpecificData["ContactNumber"] = b.siteRepo.GetSetting(r.Context(), settingContactNumber, b.contactFallback)

	pageSpecificData["CartCount"] = CartCountFromContext(r.Context())

	if _, exists := pageSpecificData["CSRFToken"]; !exists {
		pageSpecificData["CSRFToken"] = csrf.Token(r)
	}

	return pageSpecificData
}

func CartCountFromContext(ctx context.Context) int {
	if val := ctx.Value(CartCountKey); val != nil {
		if count, ok := val.(int); ok {
			return count
		}
	}
	return 0
}
