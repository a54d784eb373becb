package ports

import "github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"

// ChangeLog is the append-only audit trail of record mutations.
type ChangeLog interface {
	Append(entry domain.ChangeEntry) error
	// Recent returns the last limit entries in original append order.
	Recent(limit int) ([]domain.ChangeEntry, error)
}
