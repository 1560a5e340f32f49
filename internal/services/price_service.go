package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"krishiseva/internal/apperror"
	"krishiseva/internal/cache"
	"krishiseva/internal/models"
	"krishiseva/internal/prices"

	"go.uber.org/zap"
)

// PriceCacheKey is the single cache entry holding the full price list.
const PriceCacheKey = "cropprices:all"

// PriceFilter narrows a price listing. Empty fields match everything; set
// fields are case-insensitive substring matches.
type PriceFilter struct {
	State     string
	District  string
	Commodity string
}

// PriceResult is a filtered listing plus where the data came from.
type PriceResult struct {
	Data      []models.CropPrice
	Source    string
	Timestamp time.Time
	Message   string
}

// CacheMetrics receives cache hit/miss counts.
type CacheMetrics interface {
	CacheLookup(driver string, hit bool)
}

type cachedPrices struct {
	Records   []models.CropPrice `json:"records"`
	Source    string             `json:"source"`
	FetchedAt time.Time          `json:"fetchedAt"`
}

// PriceService serves crop prices through a read-through cache.
type PriceService struct {
	cache    cache.Cache
	primary  prices.Source
	fallback prices.Source
	ttl      time.Duration
	metrics  CacheMetrics
	log      *zap.Logger
	now      func() time.Time
}

// NewPriceService creates a PriceService. fallback serves requests when
// primary fails; metrics may be nil.
func NewPriceService(c cache.Cache, primary, fallback prices.Source, ttl time.Duration, metrics CacheMetrics, log *zap.Logger) *PriceService {
	if log == nil {
		log = zap.NewNop()
	}
	return &PriceService{
		cache:    c,
		primary:  primary,
		fallback: fallback,
		ttl:      ttl,
		metrics:  metrics,
		log:      log,
		now:      time.Now,
	}
}

// WithClock replaces the time source, for tests.
func (s *PriceService) WithClock(now func() time.Time) *PriceService {
	s.now = now
	return s
}

// List returns prices matching filter.
func (s *PriceService) List(ctx context.Context, filter PriceFilter) (*PriceResult, error) {
	result, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	result.Data = filterPrices(result.Data, filter)
	return result, nil
}

// States returns the sorted distinct states.
func (s *PriceService) States(ctx context.Context) ([]string, error) {
	result, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(result.Data, func(p models.CropPrice) (string, bool) {
		return p.State, true
	}), nil
}

// Districts returns the sorted distinct districts of state, matched exactly.
func (s *PriceService) Districts(ctx context.Context, state string) ([]string, error) {
	if state == "" {
		return nil, apperror.New(apperror.Validation, "State parameter is required")
	}
	result, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(result.Data, func(p models.CropPrice) (string, bool) {
		return p.District, p.State == state
	}), nil
}

// Commodities returns the sorted distinct commodities traded in state and,
// when district is set, in that district.
func (s *PriceService) Commodities(ctx context.Context, state, district string) ([]string, error) {
	if state == "" {
		return nil, apperror.New(apperror.Validation, "State parameter is required")
	}
	result, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return distinct(result.Data, func(p models.CropPrice) (string, bool) {
		return p.Commodity, p.State == state && (district == "" || p.District == district)
	}), nil
}

// load returns the full price list from the cache, or from the primary
// source on a miss. Fallback results are served but not cached.
func (s *PriceService) load(ctx context.Context) (*PriceResult, error) {
	var cached cachedPrices
	hit, err := s.cache.Get(ctx, PriceCacheKey, &cached)
	if err != nil {
		s.log.Warn("price cache read failed", zap.String("driver", s.cache.Driver()), zap.Error(err))
		hit = false
	}
	if s.metrics != nil {
		s.metrics.CacheLookup(s.cache.Driver(), hit)
	}
	if hit {
		return &PriceResult{
			Data:      cached.Records,
			Source:    prices.SourceCache,
			Timestamp: cached.FetchedAt,
			Message:   "Data from cache",
		}, nil
	}

	now := s.now()
	records, err := s.primary.Fetch(ctx)
	if err != nil {
		s.log.Error("price source failed, serving fallback data",
			zap.String("source", s.primary.Name()),
			zap.Error(err))
		fallback, ferr := s.fallback.Fetch(ctx)
		if ferr != nil {
			return nil, apperror.Wrap(apperror.Internal, "failed to load crop prices", ferr)
		}
		return &PriceResult{
			Data:      fallback,
			Source:    s.fallback.Name(),
			Timestamp: now,
			Message:   "Using demo data due to price source error",
		}, nil
	}

	entry := cachedPrices{Records: records, Source: s.primary.Name(), FetchedAt: now}
	if err := s.cache.Set(ctx, PriceCacheKey, entry, s.ttl); err != nil {
		s.log.Warn("price cache write failed", zap.String("driver", s.cache.Driver()), zap.Error(err))
	}

	return &PriceResult{
		Data:      records,
		Source:    s.primary.Name(),
		Timestamp: now,
		Message:   sourceMessage(s.primary.Name()),
	}, nil
}

func sourceMessage(source string) string {
	if source == prices.SourceAPI {
		return "Live data from Agmarknet"
	}
	return "Using demo data. Configure DATA_GOV_API_KEY in .env for real-time data."
}

func filterPrices(records []models.CropPrice, f PriceFilter) []models.CropPrice {
	state := strings.ToLower(f.State)
	district := strings.ToLower(f.District)
	commodity := strings.ToLower(f.Commodity)

	out := make([]models.CropPrice, 0, len(records))
	for _, r := range records {
		if state != "" && !strings.Contains(strings.ToLower(r.State), state) {
			continue
		}
		if district != "" && !strings.Contains(strings.ToLower(r.District), district) {
			continue
		}
		if commodity != "" && !strings.Contains(strings.ToLower(r.Commodity), commodity) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func distinct(records []models.CropPrice, pick func(models.CropPrice) (string, bool)) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		v, ok := pick(r)
		if !ok {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
