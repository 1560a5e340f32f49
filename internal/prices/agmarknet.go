package prices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"krishiseva/internal/models"

	"github.com/gofiber/fiber/v2"
)

const (
	// DefaultAgmarknetURL is the data.gov.in resource for daily mandi prices.
	DefaultAgmarknetURL = "https://api.data.gov.in/resource/9ef84268-d588-465a-a308-a864a43d0070"

	defaultAgmarknetLimit   = 100
	defaultAgmarknetTimeout = 10 * time.Second
)

// AgmarknetOptions configures the Agmarknet client.
type AgmarknetOptions struct {
	APIKey  string
	BaseURL string
	Limit   int
	Timeout time.Duration
}

// Agmarknet fetches live prices from data.gov.in.
type Agmarknet struct {
	apiKey  string
	baseURL string
	limit   int
	timeout time.Duration
	now     func() time.Time
}

// NewAgmarknet creates an Agmarknet client. Zero options take defaults.
func NewAgmarknet(opts AgmarknetOptions) *Agmarknet {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultAgmarknetURL
	}
	if opts.Limit <= 0 {
		opts.Limit = defaultAgmarknetLimit
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultAgmarknetTimeout
	}
	return &Agmarknet{
		apiKey:  opts.APIKey,
		baseURL: opts.BaseURL,
		limit:   opts.Limit,
		timeout: opts.Timeout,
		now:     time.Now,
	}
}

func (a *Agmarknet) Name() string { return SourceAPI }

type agmarknetResponse struct {
	Records []agmarknetRecord `json:"records"`
}

type agmarknetRecord struct {
	State       string     `json:"state"`
	District    string     `json:"district"`
	Market      string     `json:"market"`
	Commodity   string     `json:"commodity"`
	Variety     string     `json:"variety"`
	ArrivalDate string     `json:"arrival_date"`
	MinPrice    priceValue `json:"min_price"`
	MaxPrice    priceValue `json:"max_price"`
	ModalPrice  priceValue `json:"modal_price"`
}

// priceValue accepts both quoted and bare numbers; anything unparsable is 0.
type priceValue float64

func (p *priceValue) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		*p = 0
		return nil
	}
	*p = priceValue(v)
	return nil
}

// Fetch requests one page of records and maps them to CropPrice.
func (a *Agmarknet) Fetch(ctx context.Context) ([]models.CropPrice, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	timeout := a.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}

	query := url.Values{}
	query.Set("api-key", a.apiKey)
	query.Set("format", "json")
	query.Set("limit", strconv.Itoa(a.limit))

	agent := fiber.Get(a.baseURL + "?" + query.Encode())
	agent.Timeout(timeout)

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("agmarknet request failed: %w", errors.Join(errs...))
	}
	if code != fiber.StatusOK {
		return nil, fmt.Errorf("agmarknet request failed: status %d", code)
	}

	var resp agmarknetResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode agmarknet response: %w", err)
	}

	today := a.now().UTC().Format("2006-01-02")
	records := make([]models.CropPrice, 0, len(resp.Records))
	for _, r := range resp.Records {
		records = append(records, models.CropPrice{
			State:       orNA(r.State),
			District:    orNA(r.District),
			Market:      orNA(r.Market),
			Commodity:   orNA(r.Commodity),
			Variety:     orNA(r.Variety),
			ArrivalDate: orDefault(r.ArrivalDate, today),
			MinPrice:    float64(r.MinPrice),
			MaxPrice:    float64(r.MaxPrice),
			ModalPrice:  float64(r.ModalPrice),
		})
	}
	return records, nil
}

func orNA(s string) string {
	return orDefault(s, "N/A")
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
