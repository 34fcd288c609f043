package render

import (
	"context"
	"strings"
	"sync"

	pool "github.com/jolestar/go-commons-pool"
	"github.com/npillmayer/ebnfdoc/grammar"
)

// Option configures a rendering call.
type Option func(*config)

type config struct {
	containers bool
	parallel   bool
}

// RuleContainers makes the Markdown backend fence every rule block in a
// named container carrying the rule's anchor id. EBNF ignores it.
func RuleContainers(on bool) Option {
	return func(cfg *config) { cfg.containers = on }
}

// Parallel renders rules concurrently, one goroutine per rule. Output is
// reassembled in rule order and is byte-identical to sequential
// rendering.
func Parallel(on bool) Option {
	return func(cfg *config) { cfg.parallel = on }
}

func configure(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// renderAll maps a per-rule render function over the rule list,
// sequentially or concurrently. Rules are independent of each other, so
// the concurrent path needs no coordination beyond the wait group.
func renderAll(rules []grammar.Rule, f func(grammar.Rule) string, parallel bool) []string {
	out := make([]string, len(rules))
	if !parallel || len(rules) < 2 {
		for i, r := range rules {
			out[i] = f(r)
		}
		return out
	}
	var wg sync.WaitGroup
	for i, r := range rules {
		wg.Add(1)
		go func(i int, r grammar.Rule) {
			defer wg.Done()
			out[i] = f(r)
		}(i, r)
	}
	wg.Wait()
	return out
}

// Per-rule output buffers are short-lived objects. To avoid multiple
// allocation of small objects we will pool them.
type builderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBuilderPool *builderPool

func init() {
	globalBuilderPool = &builderPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &strings.Builder{}, nil
		})
	globalBuilderPool.ctx = context.Background()
	pcfg := pool.NewDefaultPoolConfig()
	pcfg.MaxTotal = -1 // infinity
	pcfg.BlockWhenExhausted = false
	globalBuilderPool.opool = pool.NewObjectPool(globalBuilderPool.ctx, factory, pcfg)
}

func borrowBuilder() *strings.Builder {
	o, _ := globalBuilderPool.opool.BorrowObject(globalBuilderPool.ctx)
	return o.(*strings.Builder)
}

// Clears the builder and puts it back into the pool.
func releaseBuilder(b *strings.Builder) {
	b.Reset()
	_ = globalBuilderPool.opool.ReturnObject(globalBuilderPool.ctx, b)
}
