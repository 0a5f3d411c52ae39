// Package motivation serves the motivational quotes and tips shown next to
// the daily dashboard.
package motivation

import (
	"context"
	"math/rand/v2"
	"slices"
	"sync"
)

var defaultQuotes = []string{
	"The secret of getting ahead is getting started.",
	"Well done is better than well said.",
	"The journey of a thousand miles begins with a single step.",
	"It does not matter how slowly you go as long as you do not stop.",
	"Believe you can and you're halfway there.",
}

var defaultTips = []string{
	"Start small: one glass of water counts.",
	"Attach a new habit to something you already do every day.",
	"Log right after you finish, not at the end of the day.",
	"Missing one day is an accident, missing two is a new habit.",
	"Check your weekly chart on Sundays and adjust your targets.",
}

type Provider struct {
	mu     sync.Mutex
	rnd    *rand.Rand
	quotes []string
	tips   []string
}

func NewProvider() *Provider {
	return NewProviderWithSource(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewProviderWithSource makes quote selection reproducible.
func NewProviderWithSource(src rand.Source) *Provider {
	return &Provider{
		rnd:    rand.New(src),
		quotes: defaultQuotes,
		tips:   defaultTips,
	}
}

// Quote picks a random quote.
func (p *Provider) Quote(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.quotes[p.rnd.IntN(len(p.quotes))], nil
}

func (p *Provider) Tips() []string {
	return slices.Clone(p.tips)
}
