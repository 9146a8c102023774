package ports

import (
	"context"

	"github.com/kevin07696/cybersource-gateway/internal/domain"
)

// ProfileProvider resolves a named merchant profile from an externally owned
// configuration store.
//
// Absence is a valid, expected state: an unconfigured profile returns
// (nil, nil), never an error, so callers can translate it into a merchant
// configuration failure before building a request. Implementations must not
// cache — every call re-reads the backing store so credentials can be
// hot-swapped between calls.
type ProfileProvider interface {
	Profile(ctx context.Context, name string) (*domain.MerchantProfile, error)
}
