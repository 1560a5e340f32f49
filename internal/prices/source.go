// Package prices provides crop price sources: a built-in demo dataset and a
// client for the data.gov.in Agmarknet daily price resource.
package prices

import (
	"context"

	"krishiseva/internal/models"
)

// Source names reported alongside price data.
const (
	SourceDemo  = "demo"
	SourceAPI   = "api"
	SourceCache = "cache"
)

// Source fetches the full set of current price records.
type Source interface {
	Name() string
	Fetch(ctx context.Context) ([]models.CropPrice, error)
}
