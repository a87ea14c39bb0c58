package usecase

import "go.uber.org/fx"

// Module provides storefront use cases to the fx container.
var Module = fx.Provide(
	NewSessionManager,
	NewSessionGuard,
	NewCartController,
	NewOrderViewer,
	NewCatalog,
	NewProductManager,
)
