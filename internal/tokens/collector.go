package tokens

import "sync"

type tokenKey struct {
	category Category
	name     string
}

// Collector records which tokens were resolved while collecting.
//
// The state machine is idle → collecting on Start and collecting → idle on
// Stop. Calling Start while already collecting discards the log gathered so
// far; overlapping collections must use separate collectors.
type Collector struct {
	mu         sync.Mutex
	collecting bool
	used       map[tokenKey]Token
}

// NewCollector returns an idle collector.
func NewCollector() *Collector {
	return &Collector{used: make(map[tokenKey]Token)}
}

// Start clears the log and begins collecting.
func (c *Collector) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collecting = true
	c.used = make(map[tokenKey]Token)
}

// Stop ends collection. The log is kept until the next Start.
func (c *Collector) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.collecting = false
}

// Collecting reports whether the collector is recording.
func (c *Collector) Collecting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.collecting
}

// Record logs tok if the collector is collecting.
func (c *Collector) Record(tok Token) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.collecting {
		return
	}
	c.used[tokenKey{tok.Category, tok.Name}] = tok
}

// Used returns the logged tokens in output order.
func (c *Collector) Used() []Token {
	c.mu.Lock()
	out := make([]Token, 0, len(c.used))
	for _, tok := range c.used {
		out = append(out, tok)
	}
	c.mu.Unlock()

	SortTokens(out)
	return out
}

// CSS renders custom property declarations for the logged tokens only.
func (c *Collector) CSS() string {
	return RenderCSS(c.Used())
}
