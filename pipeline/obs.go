package pipeline

import (
	"math/rand"
	"time"

	"github.com/katalvlaran/citymst/sampler"
)

// nextRand hands out the next independent RNG stream.
func (p *Pipeline) nextRand() *rand.Rand {
	p.mu.Lock()
	p.stream++
	s := p.stream
	p.mu.Unlock()

	return sampler.DeriveRand(p.seed, s)
}

// timeOp starts a timer for op and returns the function that logs its outcome.
func (p *Pipeline) timeOp(op string, k int) func(res *Result, errp *error) {
	start := time.Now()

	return func(res *Result, errp *error) {
		dur := time.Since(start)
		if errp != nil && *errp != nil {
			p.logger.Printf("op=%s k=%d dur=%dµs err=%v", op, k, dur.Microseconds(), *errp)
			return
		}
		p.logger.Printf("op=%s k=%d edges=%d total=%.4f dur=%dµs",
			op, k, len(res.MST.Edges), res.MST.Total, dur.Microseconds())
	}
}
