package graph

import (
	"sync"

	"github.com/gogpu/uistyle/color"
)

// Pool is a thread-safe pool for reusing owning graphs.
//
// Pool groups graphs by dimensions and color type. Returning a graph to the
// pool bumps its generation, so quotes taken from it before Put turn stale
// instead of aliasing the next user's pixels.
//
// Thread safety: All methods are safe for concurrent use. Graphs handed out
// by Get are owned by the caller until Put.
type Pool struct {
	mu      sync.Mutex
	buckets map[poolKey][]*Graph
	maxSize int // max graphs per bucket
}

// poolKey identifies a bucket of identical graph specifications.
type poolKey struct {
	width  int
	height int
	t      color.Type
}

// NewPool creates a pool retaining at most maxPerBucket graphs of each
// size and type. Zero means unlimited.
func NewPool(maxPerBucket int) *Pool {
	return &Pool{
		buckets: make(map[poolKey][]*Graph),
		maxSize: maxPerBucket,
	}
}

// Get returns a zeroed owning graph, reusing a pooled one when available.
// A reused graph keeps the row alignment of its first allocation.
func (p *Pool) Get(width, height int, t color.Type, opts ...Option) (*Graph, error) {
	key := poolKey{width: width, height: height, t: t}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		g := bucket[n-1]
		bucket[n-1] = nil
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()

		o := buildOptions(opts)
		g.opacity = o.opacity
		g.palette = nil
		if t.IsIndexed() {
			g.palette = o.palette
		}
		return g, nil
	}
	p.mu.Unlock()

	return New(width, height, t, opts...)
}

// Put hands g back to the pool and reports whether it was retained.
// Quotes, released graphs and graphs of a full bucket are not retained.
// Either way the caller must not use g afterwards.
func (p *Pool) Put(g *Graph) bool {
	if g == nil || g.quote.valid || g.data == nil {
		return false
	}
	clear(g.data)
	g.generation++

	key := poolKey{width: g.width, height: g.height, t: g.colorType}

	p.mu.Lock()
	defer p.mu.Unlock()

	bucket := p.buckets[key]
	if p.maxSize > 0 && len(bucket) >= p.maxSize {
		return false
	}
	p.buckets[key] = append(bucket, g)
	return true
}

// Len returns the number of pooled graphs.
func (p *Pool) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, b := range p.buckets {
		n += len(b)
	}
	return n
}

// defaultPool is the package-level pool for convenient usage.
var defaultPool = NewPool(8)

// GetFromDefault retrieves a graph from the default pool.
func GetFromDefault(width, height int, t color.Type, opts ...Option) (*Graph, error) {
	return defaultPool.Get(width, height, t, opts...)
}

// PutToDefault returns a graph to the default pool.
func PutToDefault(g *Graph) bool {
	return defaultPool.Put(g)
}
