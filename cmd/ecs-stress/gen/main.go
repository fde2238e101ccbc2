// Command gen emits the component and system tables used by the stress test.
// The output is deterministic for a given seed so that stress runs are
// comparable across revisions.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"golang.org/x/tools/imports"
)

var recordSizes = []int{4, 8, 12, 16, 24, 32}

func main() {
	componentCount := flag.Int("components", 24, "Number of component types to generate (max 32).")
	systemCount := flag.Int("systems", 32, "Number of systems to generate.")
	seed := flag.Int64("seed", 1, "Seed for the generated component sizes and system masks.")
	out := flag.String("out", "components_gen.go", "Output file.")
	flag.Parse()

	if *componentCount < 2 || *componentCount > 32 {
		log.Fatalf("-components %d out of range (want 2..32)", *componentCount)
	}

	rng := rand.New(rand.NewSource(*seed))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by go run ./gen -components %d -systems %d -seed %d. DO NOT EDIT.\n\n",
		*componentCount, *systemCount, *seed)
	buf.WriteString("package main\n\n")
	buf.WriteString("import (\n\t\"math/rand\"\n\n\t\"github.com/amyinorbit/pd-ecs/ecs\"\n)\n\n")

	fmt.Fprintf(&buf, "const (\n\tstressComponentCount = %d\n\tstressSystemCount    = %d\n)\n\n",
		*componentCount, *systemCount)

	buf.WriteString("// DeclareStressComponents registers every generated component type and\n")
	buf.WriteString("// returns their IDs in declaration order.\n")
	buf.WriteString("func DeclareStressComponents(world *ecs.Registry) []ecs.ComponentID {\n")
	buf.WriteString("\treturn []ecs.ComponentID{\n")
	for i := 0; i < *componentCount; i++ {
		size := recordSizes[rng.Intn(len(recordSizes))]
		fmt.Fprintf(&buf, "\t\tworld.Declare(\"Stress%02d\", %d),\n", i, size)
	}
	buf.WriteString("\t}\n}\n\n")

	buf.WriteString("// RegisterStressSystems registers one system per generated mask pair. Each\n")
	buf.WriteString("// system folds the source record's bytes into the destination record.\n")
	buf.WriteString("func RegisterStressSystems(world *ecs.Registry, ids []ecs.ComponentID) {\n")
	for i := 0; i < *systemCount; i++ {
		src := rng.Intn(*componentCount)
		dst := rng.Intn(*componentCount - 1)
		if dst >= src {
			dst++
		}
		fmt.Fprintf(&buf, "\tregisterStressSystem(world, ids[%d], ids[%d])\n", src, dst)
	}
	buf.WriteString("}\n\n")

	buf.WriteString(`func registerStressSystem(world *ecs.Registry, src, dst ecs.ComponentID) {
	world.RegisterSystem(ecs.Mask(src, dst), func(r *ecs.Registry, e ecs.Entity, _ any) {
		from, _ := r.Get(e, src)
		to, _ := r.Get(e, dst)
		for i := range to {
			to[i] += from[i%len(from)]
		}
	}, nil)
}

// SpawnStressEntity creates an entity with 1 to 5 random components, each
// initialized with random bytes.
func SpawnStressEntity(world *ecs.Registry, ids []ecs.ComponentID, rng *rand.Rand) ecs.Entity {
	e := world.Create()
	count := rng.Intn(5) + 1
	for i := 0; i < count; i++ {
		record := world.Add(e, ids[rng.Intn(len(ids))])
		for j := range record {
			record[j] = byte(rng.Intn(256))
		}
	}
	return e
}
`)

	formatted, err := imports.Process(*out, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("formatting generated code: %v", err)
	}
	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		log.Fatalf("writing %s: %v", *out, err)
	}
}
