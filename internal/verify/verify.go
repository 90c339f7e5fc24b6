// Package verify checks that numerals read back to the values they were
// written from.
package verify

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rcliao/vinculum/internal/numeral"
)

// DefaultMaxFailures caps the failures kept in a Report.
const DefaultMaxFailures = 20

// checkEvery is how many values a worker converts between context checks.
const checkEvery = 1024

// Params configures a round-trip run over [From, To).
type Params struct {
	From        int
	To          int
	Workers     int
	MaxFailures int
	Logger      *zap.Logger
}

// Failure is a value whose numeral did not read back.
type Failure struct {
	Value     int    `json:"value"`
	Separated bool   `json:"separated"`
	Numeral   string `json:"numeral"`
	Got       int    `json:"got"`
}

// Report summarises a round-trip run.
type Report struct {
	From     int           `json:"from"`
	To       int           `json:"to"`
	Checked  int           `json:"checked"`
	Failed   int           `json:"failed"`
	Failures []Failure     `json:"failures,omitempty"`
	Duration time.Duration `json:"duration_ns"`
}

// OK reports whether every value round-tripped.
func (r *Report) OK() bool { return r.Failed == 0 }

// RoundTrip converts every value in the range to a numeral, joined and
// separated, and reads each back with numeral.ToArabic. The range is split
// evenly across workers.
func RoundTrip(ctx context.Context, p Params) (*Report, error) {
	if p.From < 0 || p.To > numeral.Max+1 || p.From > p.To {
		return nil, fmt.Errorf("verify [%d, %d): %w", p.From, p.To, numeral.ErrOutOfRange)
	}
	workers := max(p.Workers, 1)
	maxFailures := p.MaxFailures
	if maxFailures <= 0 {
		maxFailures = DefaultMaxFailures
	}
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	start := time.Now()
	report := &Report{From: p.From, To: p.To}
	span := p.To - p.From
	per := (span + workers - 1) / workers

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo := p.From + w*per
		hi := min(lo+per, p.To)
		if lo >= hi {
			break
		}

		g.Go(func() error {
			checked, failed, failures, err := checkRange(gctx, lo, hi, maxFailures)
			if err != nil {
				return err
			}
			logger.Debug("range verified",
				zap.Int("from", lo), zap.Int("to", hi), zap.Int("failed", failed))

			mu.Lock()
			defer mu.Unlock()
			report.Checked += checked
			report.Failed += failed
			report.Failures = append(report.Failures, failures...)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(report.Failures, func(i, j int) bool {
		a, b := report.Failures[i], report.Failures[j]
		if a.Value != b.Value {
			return a.Value < b.Value
		}
		return !a.Separated && b.Separated
	})
	if len(report.Failures) > maxFailures {
		report.Failures = report.Failures[:maxFailures]
	}
	report.Duration = time.Since(start)

	logger.Info("round trip finished",
		zap.Int("checked", report.Checked),
		zap.Int("failed", report.Failed),
		zap.Duration("took", report.Duration))
	return report, nil
}

func checkRange(ctx context.Context, lo, hi, maxFailures int) (checked, failed int, failures []Failure, err error) {
	for v := lo; v < hi; v++ {
		if (v-lo)%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return 0, 0, nil, err
			}
		}
		for _, sep := range []bool{false, true} {
			s, err := numeral.ToRoman(v, sep)
			if err != nil {
				return 0, 0, nil, err
			}
			got, err := numeral.ToArabic(s)
			if err != nil {
				return 0, 0, nil, fmt.Errorf("read back %d: %w", v, err)
			}
			if got != v {
				failed++
				if len(failures) < maxFailures {
					failures = append(failures, Failure{Value: v, Separated: sep, Numeral: s, Got: got})
				}
			}
		}
		checked++
	}
	return checked, failed, failures, nil
}
