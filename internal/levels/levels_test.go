package levels

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-grove/internal/config"
	"github.com/vovakirdan/tui-grove/internal/core"
	"github.com/vovakirdan/tui-grove/internal/progress"
	"github.com/vovakirdan/tui-grove/internal/world"
)

func TestBuiltinLayoutsBuild(t *testing.T) {
	layouts, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	if len(layouts) < 2 {
		t.Fatalf("expected at least two built-in layouts, got %d", len(layouts))
	}

	cfg := config.DefaultGroveConfig()
	for _, l := range layouts {
		t.Run(l.ID, func(t *testing.T) {
			scene, err := l.Build(cfg, 42)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if len(scene.Collectibles) != len(l.Collectibles) {
				t.Errorf("built %d collectibles, layout has %d", len(scene.Collectibles), len(l.Collectibles))
			}
			if len(scene.World.Ponds()) != len(l.Ponds) {
				t.Errorf("built %d ponds, layout has %d", len(scene.World.Ponds()), len(l.Ponds))
			}
			if scene.World.Blocked(core.Planar(scene.Spawn), scene.Spawn[1]) {
				t.Error("spawn point is blocked")
			}
		})
	}
}

func TestMeadowHasEveryObjective(t *testing.T) {
	l, err := NewLoader("").LoadByID(DefaultLayout)
	if err != nil {
		t.Fatalf("LoadByID(%q) error = %v", DefaultLayout, err)
	}
	gems, treasure, ponds := l.Counts()
	if gems == 0 || treasure != 1 || ponds != 3 {
		t.Errorf("meadow counts = %d gems, %d treasure, %d ponds", gems, treasure, ponds)
	}
}

func TestScatterIsDeterministic(t *testing.T) {
	l, err := NewLoader("").LoadByID("meadow")
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.DefaultGroveConfig()

	a, _ := l.Build(cfg, 7)
	b, _ := l.Build(cfg, 7)
	c, _ := l.Build(cfg, 8)

	oa, ob, oc := a.World.Registry().All(), b.World.Registry().All(), c.World.Registry().All()
	if len(oa) != len(ob) {
		t.Fatalf("same seed built %d and %d obstacles", len(oa), len(ob))
	}
	for i := range oa {
		if oa[i] != ob[i] {
			t.Fatalf("obstacle %d differs for the same seed: %+v vs %+v", i, oa[i], ob[i])
		}
	}

	same := len(oa) == len(oc)
	for i := len(l.Obstacles); same && i < len(oa); i++ {
		same = oa[i] == oc[i]
	}
	if same {
		t.Error("a different seed should scatter differently")
	}
}

func TestScatterKeepsClear(t *testing.T) {
	l, err := NewLoader("").LoadByID("meadow")
	if err != nil {
		t.Fatal(err)
	}
	scene, err := l.Build(config.DefaultGroveConfig(), 99)
	if err != nil {
		t.Fatal(err)
	}

	scattered := scene.World.Registry().All()[len(l.Obstacles):]
	if len(scattered) == 0 {
		t.Fatal("nothing was scattered")
	}
	for _, o := range scattered {
		for _, p := range scene.World.Ponds() {
			if core.PlanarDistance(o.Center, p.Center) < p.Radius+o.Radius {
				t.Errorf("%s at %v overlaps a pond", o.Kind, o.Center)
			}
		}
		for _, c := range scene.Collectibles {
			if core.PlanarDistance(o.Center, core.Planar(c.Position)) < o.Radius+l.Scatter.Clearance {
				t.Errorf("%s at %v crowds collectible %d", o.Kind, o.Center, c.ID)
			}
		}
	}
}

func TestBuildRejectsInvalidObstacle(t *testing.T) {
	data := []byte(`
id: broken
spawn: {x: 0, z: 0}
obstacles:
  - {kind: tree, x: 3, z: 3, radius: 0}
`)
	l, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if _, err := l.Build(config.DefaultGroveConfig(), 1); !errors.Is(err, world.ErrInvalidObstacle) {
		t.Errorf("Build() error = %v, expected ErrInvalidObstacle", err)
	}
}

func TestObstacleSpecShapes(t *testing.T) {
	data := []byte(`
id: shapes
spawn: {x: 0, z: 0}
obstacles:
  - {kind: tree, x: 10, z: 0, radius: 1}
  - {kind: gazebo, x: -10, z: 0, radius: 4, top: 3}
collectibles:
  - {kind: gem, x: -10, z: 0, height: 4}
`)
	l, err := ParseYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	scene, err := l.Build(config.DefaultGroveConfig(), 1)
	if err != nil {
		t.Fatal(err)
	}

	obstacles := scene.World.Registry().All()
	if obstacles[0].Shape != world.ShapeFootprint || obstacles[1].Shape != world.ShapePlatform {
		t.Errorf("shapes = %v, %v", obstacles[0].Shape, obstacles[1].Shape)
	}
	if obstacles[1].TopHeight != 3 {
		t.Errorf("gazebo top = %v, expected 3", obstacles[1].TopHeight)
	}

	gem := scene.Collectibles[0]
	if gem.Kind != progress.KindGem || gem.Value != progress.KindGem.DefaultValue() || gem.BaseHeight != 4 {
		t.Errorf("gem = %+v", gem)
	}
	if scene.Spawn != (mgl64.Vec3{0, config.DefaultGroveConfig().Player.HalfHeight, 0}) {
		t.Errorf("spawn = %v", scene.Spawn)
	}
}

func TestParseYAMLValidation(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing id", "name: nameless\n"},
		{"bad terrain", "id: x\nterrain: {kind: spiky}\n"},
		{"bad pond", "id: x\nponds:\n  - {x: 0, z: 0, radius: -1, depth: 1}\n"},
		{"bad collectible", "id: x\ncollectibles:\n  - {kind: banana, x: 0, z: 0}\n"},
		{"bad scatter", "id: x\nscatter: {trees: 3, min_radius: 0, max_radius: 1, extent: 10}\n"},
		{"not yaml", "id: [unclosed\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoaderDirectoryOverrides(t *testing.T) {
	dir := t.TempDir()
	custom := "id: pocket\nname: Pocket Grove\nspawn: {x: 0, z: 0}\n"
	override := "id: glade\nname: Overridden Glade\nspawn: {x: 0, z: 0}\n"
	if err := os.WriteFile(filepath.Join(dir, "pocket.yaml"), []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "glade.yml"), []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte("name: no id\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewLoader(dir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs() error = %v", err)
	}
	want := []string{"glade", "meadow", "pocket"}
	if len(ids) != len(want) {
		t.Fatalf("ListIDs() = %v, expected %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, expected %q", i, ids[i], want[i])
		}
	}

	glade, err := loader.LoadByID("glade")
	if err != nil {
		t.Fatal(err)
	}
	if glade.Title() != "Overridden Glade" || glade.FilePath == "" {
		t.Errorf("directory layout should replace the built-in, got %+v", glade)
	}
}

func TestLoadByIDNotFound(t *testing.T) {
	_, err := NewLoader("").LoadByID("atlantis")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadByID() error = %v, expected ErrNotFound", err)
	}
}
