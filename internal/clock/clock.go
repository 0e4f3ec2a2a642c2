// Package clock abstracts time for services so tests can pin it.
package clock

import (
	"time"

	"github.com/acmeboard/acmeboard/internal/config"
)

type Clock interface {
	Now() time.Time
}

// SystemClock reports wall time in a fixed location. Invoice dates are
// stamped server-side in this zone on both create and update.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(cfg config.Config) (*SystemClock, error) {
	loc, err := time.LoadLocation(cfg.InvoiceTimezone)
	if err != nil {
		return nil, err
	}
	return &SystemClock{loc: loc}, nil
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}
