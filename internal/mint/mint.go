// Package mint generates the short human-readable identifiers
// (REG######, STALL######, TICK#####) by rejection sampling against the
// store: draw, probe for a collision, retry on a hit.
package mint

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/cockroachdb/errors"
	"github.com/vishwasri/techfest-backend/internal/domain"
	"github.com/vishwasri/techfest-backend/internal/observability"
)

type Scheme struct {
	Prefix string
	Min    int
	Max    int
}

var (
	Registration = Scheme{Prefix: "REG", Min: 100000, Max: 999999}
	Stall        = Scheme{Prefix: "STALL", Min: 100000, Max: 999999}
	Ticket       = Scheme{Prefix: "TICK", Min: 10000, Max: 99999}
)

// maxAttempts bounds the retry loop; collisions are expected O(1) while the
// id space stays sparse, so hitting the bound means the space is nearly full.
const maxAttempts = 8

// ExistsFunc probes the backing collection for a previously issued id.
type ExistsFunc func(ctx context.Context, id string) (bool, error)

func (s Scheme) draw() string {
	return fmt.Sprintf("%s%d", s.Prefix, s.Min+rand.Intn(s.Max-s.Min+1))
}

// Mint draws ids until one is free, up to maxAttempts.
func Mint(ctx context.Context, s Scheme, exists ExistsFunc) (string, error) {
	for i := 0; i < maxAttempts; i++ {
		id := s.draw()
		taken, err := exists(ctx, id)
		if err != nil {
			return "", errors.Wrap(err, "mint probe")
		}
		if !taken {
			return id, nil
		}
		observability.MintRetriesTotal.Inc()
	}
	return "", errors.Wrapf(domain.ErrIDExhausted, "scheme %s", s.Prefix)
}
