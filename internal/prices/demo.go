package prices

import (
	"context"
	"time"

	"krishiseva/internal/models"
)

// Demo serves the built-in dataset stamped with today's date.
type Demo struct {
	now func() time.Time
}

// NewDemo creates a demo source.
func NewDemo() *Demo {
	return &Demo{now: time.Now}
}

// WithClock replaces the time source, for tests.
func (d *Demo) WithClock(now func() time.Time) *Demo {
	d.now = now
	return d
}

func (d *Demo) Name() string { return SourceDemo }

// Fetch returns a copy of the dataset. It never fails.
func (d *Demo) Fetch(_ context.Context) ([]models.CropPrice, error) {
	today := d.now().UTC().Format("2006-01-02")
	records := make([]models.CropPrice, len(demoPrices))
	copy(records, demoPrices)
	for i := range records {
		records[i].ArrivalDate = today
	}
	return records, nil
}
