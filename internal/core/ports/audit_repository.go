package ports

import (
	"context"

	"github.com/itm-space/backend-resources/internal/core/domain"
)

// AuditRepository persists user-creation audit records. Writes are
// best-effort: callers log failures but never fail the request over them.
type AuditRepository interface {
	RecordUserCreated(ctx context.Context, entry domain.AuditEntry) error
}
