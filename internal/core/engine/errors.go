package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAdvertisedProducts marks a campaign without products to show.
	ErrNoAdvertisedProducts = errors.New("campaign has no advertised products")
	// ErrNoBid marks a product target whose bid cannot be resolved.
	ErrNoBid = errors.New("no bid, ad group default or floor bid")
)

// ConfigurationError describes an entity that was skipped because its
// configuration cannot be simulated. Zero IDs mean "not applicable".
type ConfigurationError struct {
	CampaignID int64
	AdGroupID  int64
	EntityID   int64
	Err        error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("campaign %d ad group %d entity %d: %v", e.CampaignID, e.AdGroupID, e.EntityID, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
