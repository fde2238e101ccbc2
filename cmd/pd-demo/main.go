// Command pd-demo bounces a handful of entities around the terminal. It is
// the canonical two-component demo: Position and Speed records, a movement
// system that adds one into the other every tick, and a render pass that
// draws whatever the registry holds.
package main

import (
	"flag"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/amyinorbit/pd-ecs/ecs"
)

type Position struct {
	X, Y float32
}

type Speed struct {
	X, Y float32
}

type Glyph struct {
	Char rune
}

// bounds is the playfield context handed to the movement system.
type bounds struct {
	w, h float32
}

func moveAndBounce(r *ecs.Registry, e ecs.Entity, ctx any) {
	b := ctx.(*bounds)
	pos := ecs.Get[Position](r, e)
	spd := ecs.Get[Speed](r, e)

	pos.X += spd.X
	pos.Y += spd.Y

	if pos.X < 0 {
		pos.X, spd.X = 0, -spd.X
	} else if pos.X >= b.w {
		pos.X, spd.X = b.w-1, -spd.X
	}
	if pos.Y < 0 {
		pos.Y, spd.Y = 0, -spd.Y
	} else if pos.Y >= b.h {
		pos.Y, spd.Y = b.h-1, -spd.Y
	}
}

func spawn(world *ecs.Registry, rng *rand.Rand, b *bounds) {
	e := world.Create()
	pos := ecs.Add[Position](world, e)
	pos.X = rng.Float32() * b.w
	pos.Y = rng.Float32() * b.h
	spd := ecs.Add[Speed](world, e)
	spd.X = rng.Float32() - 0.5
	spd.Y = rng.Float32() - 0.5
	glyph := ecs.Add[Glyph](world, e)
	glyph.Char = rune('a' + rng.Intn(26))
}

func main() {
	count := flag.Int("entities", 32, "Number of entities to spawn.")
	frameRate := flag.Int("fps", 30, "Simulation ticks per second.")
	flag.Parse()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}
	defer screen.Fini()

	w, h := screen.Size()
	field := &bounds{w: float32(w), h: float32(h)}

	world := ecs.New(ecs.Config{MaxEntities: *count})
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := 0; i < *count; i++ {
		spawn(world, rng, field)
	}

	moveMask := ecs.MaskFor[Position](world) | ecs.MaskFor[Speed](world)
	world.RegisterSystem(moveMask, moveAndBounce, field)

	drawMask := ecs.MaskFor[Position](world) | ecs.MaskFor[Glyph](world)
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	world.RegisterSystem(drawMask, func(r *ecs.Registry, e ecs.Entity, _ any) {
		pos := ecs.Get[Position](r, e)
		glyph := ecs.Get[Glyph](r, e)
		screen.SetContent(int(pos.X), int(pos.Y), glyph.Char, nil, style)
	}, nil)

	events := make(chan tcell.Event, 8)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(*frameRate))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					screen.Fini()
					os.Exit(0)
				}
			case *tcell.EventResize:
				w, h = screen.Size()
				field.w, field.h = float32(w), float32(h)
				screen.Sync()
			}
		case <-ticker.C:
			screen.Clear()
			world.Tick()
			screen.Show()
		}
	}
}
