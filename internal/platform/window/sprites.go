package window

import (
	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/falldown/internal/falldown"
)

// sprite is the drawable state of one entity.
type sprite struct {
	kind falldown.EntityKind
	x, y float64
}

// spriteTable keeps one sprite per live entity. It is the session's visual
// sink, so its contents always mirror the core after each frame.
type spriteTable struct {
	m *intmap.Map[falldown.EntityID, sprite]
}

func newSpriteTable() *spriteTable {
	return &spriteTable{m: intmap.New[falldown.EntityID, sprite](16)}
}

func (t *spriteTable) Added(e falldown.Entity) {
	t.m.Put(e.ID, sprite{kind: e.Kind, x: e.X, y: e.Y})
}

func (t *spriteTable) Removed(id falldown.EntityID) {
	t.m.Del(id)
}

func (t *spriteTable) Moved(e falldown.Entity) {
	if _, ok := t.m.Get(e.ID); !ok {
		return
	}
	t.m.Put(e.ID, sprite{kind: e.Kind, x: e.X, y: e.Y})
}

func (t *spriteTable) get(id falldown.EntityID) (sprite, bool) {
	return t.m.Get(id)
}

func (t *spriteTable) len() int {
	return t.m.Len()
}

// each visits every sprite until f returns false.
func (t *spriteTable) each(f func(falldown.EntityID, sprite) bool) {
	t.m.ForEach(f)
}
