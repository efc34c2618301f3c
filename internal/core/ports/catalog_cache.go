package ports

import "context"

// CatalogCache invalidates cached catalog listings after catalog or stock
// writes. Implementations are best-effort and must never fail the calling
// operation.
type CatalogCache interface {
	InvalidateProductLists(ctx context.Context)
}
