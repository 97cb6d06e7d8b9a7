package registry

import (
	"time"

	"github.com/vovakirdan/snake-duel/internal/config"
)

type preset struct {
	id    string
	title string
	apply func(cfg *config.Config)
}

func (p preset) ID() string               { return p.id }
func (p preset) Title() string            { return p.title }
func (p preset) Apply(cfg *config.Config) { p.apply(cfg) }

func register(id, title string, apply func(cfg *config.Config)) {
	Register(id, func() Preset {
		return preset{id: id, title: title, apply: apply}
	})
}

func init() {
	register("classic", "Walls are deadly, 5 rocks, no portals", func(cfg *config.Config) {
		cfg.Rocks = 5
		cfg.Grid.Wrap = false
		cfg.Portals = false
	})
	register("rocky", "A field of 15 rocks", func(cfg *config.Config) {
		cfg.Rocks = 15
	})
	register("wrap", "Edges wrap around to the opposite side", func(cfg *config.Config) {
		cfg.Grid.Wrap = true
	})
	register("portals", "A linked portal pair teleports snakes", func(cfg *config.Config) {
		cfg.Portals = true
	})
	register("chaos", "Wide wrapping board, portals, 12 rocks, self collision, faster ticks", func(cfg *config.Config) {
		cfg.Grid.Width = 30
		cfg.Grid.Wrap = true
		cfg.Portals = true
		cfg.Rocks = 12
		cfg.Rules.SelfCollision = true
		cfg.TickInterval = 110 * time.Millisecond
	})
}
