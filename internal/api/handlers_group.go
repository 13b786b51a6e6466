package api

import "talkify/internal/api/handler"

// HandlersGroup bundles the initialized handler instances.
type HandlersGroup struct {
	AuthHandler       *handler.AuthHandler
	PostHandler       *handler.PostHandler
	PostActionHandler *handler.PostActionHandler
	CatalogHandler    *handler.CatalogHandler
}
