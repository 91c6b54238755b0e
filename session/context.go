// Package session holds the state that outlives a single play session: the
// level set and the current level index. One Context lives for the whole
// process and is handed to every session built from it.
package session

import (
	"fmt"

	"github.com/automoto/fruitrun/leveldata"
)

type Context struct {
	level  int
	levels []*leveldata.LevelDescriptor
}

func NewContext(levels []*leveldata.LevelDescriptor) (*Context, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("session context: %w", leveldata.ErrNoLevels)
	}
	return &Context{levels: levels}, nil
}

// LevelIndex is the process-wide level counter, starting at 0.
func (c *Context) LevelIndex() int {
	return c.level
}

func (c *Context) TotalLevels() int {
	return len(c.levels)
}

// LevelToLoad is the 1-based number of the level the next session plays.
func (c *Context) LevelToLoad() int {
	return c.level%len(c.levels) + 1
}

// Current returns the descriptor of LevelToLoad.
func (c *Context) Current() *leveldata.LevelDescriptor {
	return c.levels[c.LevelToLoad()-1]
}

// Advance moves to the next level, wrapping after the last one.
func (c *Context) Advance() {
	c.level = (c.level + 1) % len(c.levels)
}

// SetLevels swaps in a reloaded level set. The index is kept and wraps if
// the new set is shorter. Empty sets are rejected.
func (c *Context) SetLevels(levels []*leveldata.LevelDescriptor) error {
	if len(levels) == 0 {
		return fmt.Errorf("session context: %w", leveldata.ErrNoLevels)
	}
	c.levels = levels
	c.level %= len(levels)
	return nil
}
