package leveldata

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

const platforms = `
0,0,0,0,
0,0,0,2,
1,1,0,1
`

// tmx renders a 4x3 map of 16px tiles. Tile gid 1 collides, gid 2 does not.
func tmx(zones, extra string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="6" nextobjectid="20">
 <tileset firstgid="1" name="terrain" tilewidth="16" tileheight="16" tilecount="2" columns="2">
  <tile id="0">
   <properties>
    <property name="collide" type="bool" value="true"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="Platforms" width="4" height="3">
  <data encoding="csv">` + platforms + `</data>
 </layer>
 <objectgroup id="2" name="Zones">
` + zones + `
 </objectgroup>
` + extra + `
</map>`
}

const fullZones = `
  <object id="1" name="start" x="8" y="24"/>
  <object id="2" name="spawn" type="mushroom" x="40" y="10"/>
  <object id="3" name="collider" x="0" y="16" width="16" height="16"/>
  <object id="4" name="spawn" x="20" y="10">
   <properties>
    <property name="type" value="slime"/>
   </properties>
  </object>
  <object id="5" name="collider" x="48" y="16" width="16" height="16"/>
  <object id="6" name="end" x="56" y="24" width="8" height="8"/>
  <object id="7" name="banner" x="30" y="2"/>
`

const fruitAndEnv = `
 <objectgroup id="3" name="Fruit">
  <object id="10" x="12" y="4"/>
  <object id="11" type="melon" x="28" y="4"/>
 </objectgroup>
 <objectgroup id="4" name="Env">
  <object id="12" type="tree" x="2" y="0" width="16" height="32"/>
 </objectgroup>
`

func load(t *testing.T, doc string, endless ...string) (*LevelDescriptor, error) {
	t.Helper()
	fsys := fstest.MapFS{
		"levels/level_1.tmx": &fstest.MapFile{Data: []byte(doc)},
	}
	return NewLoader(fsys, "levels", endless...).LoadLevel("levels/level_1.tmx")
}

func TestLoadLevelInterpretsZones(t *testing.T) {
	desc, err := load(t, tmx(fullZones, fruitAndEnv))
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}

	if desc.Name != "level_1" || desc.Number != 1 {
		t.Errorf("name/number = %q/%d, want level_1/1", desc.Name, desc.Number)
	}
	if desc.Width != 64 || desc.Height != 48 {
		t.Errorf("size = %vx%v, want 64x48", desc.Width, desc.Height)
	}
	if desc.Start.Position != (Point{X: 8, Y: 24}) {
		t.Errorf("start = %+v, want (8,24)", desc.Start.Position)
	}
	if desc.End == nil || desc.End.Position != (Point{X: 56, Y: 24}) {
		t.Fatalf("end = %+v, want (56,24)", desc.End)
	}

	if len(desc.Spawns) != 2 {
		t.Fatalf("len(Spawns) = %d, want 2", len(desc.Spawns))
	}
	wantSpawns := []struct {
		id  uint32
		tag string
	}{{2, "mushroom"}, {4, "slime"}}
	for i, want := range wantSpawns {
		if desc.Spawns[i].ID != want.id || desc.Spawns[i].Type != want.tag {
			t.Errorf("Spawns[%d] = id %d type %q, want id %d type %q",
				i, desc.Spawns[i].ID, desc.Spawns[i].Type, want.id, want.tag)
		}
	}

	if len(desc.Colliders) != 2 || desc.Colliders[0].ID != 3 || desc.Colliders[1].ID != 5 {
		t.Errorf("Colliders = %+v, want ids 3 then 5", desc.Colliders)
	}

	if len(desc.Fruits) != 2 || desc.Fruits[1].Sprite != "melon" {
		t.Errorf("Fruits = %+v, want two with the second tagged melon", desc.Fruits)
	}
	if len(desc.Env) != 1 || desc.Env[0].Type != "tree" || desc.Env[0].Height != 32 {
		t.Errorf("Env = %+v, want one 32px tree", desc.Env)
	}
}

func TestSolidTilesMergeIntoRows(t *testing.T) {
	desc, err := load(t, tmx(fullZones, ""))
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}

	want := []SolidRect{
		{X: 0, Y: 32, W: 32, H: 16},
		{X: 48, Y: 32, W: 16, H: 16},
	}
	if len(desc.Solids) != len(want) {
		t.Fatalf("Solids = %+v, want %+v", desc.Solids, want)
	}
	for i := range want {
		if desc.Solids[i] != want[i] {
			t.Errorf("Solids[%d] = %+v, want %+v", i, desc.Solids[i], want[i])
		}
	}
}

func TestRequiredZones(t *testing.T) {
	const start = `<object id="1" name="start" x="8" y="24"/>`
	const end = `<object id="2" name="end" x="56" y="24"/>`

	tests := []struct {
		name     string
		zones    string
		endless  bool
		wantErr  error
		wantZone string
	}{
		{"missing start", end, false, ErrMissingRequiredZone, "start"},
		{"missing start in endless level", "", true, ErrMissingRequiredZone, "start"},
		{"missing end", start, false, ErrMissingRequiredZone, "end"},
		{"endless level without end", start, true, nil, ""},
		{"two starts", start + `<object id="3" name="start" x="0" y="0"/>` + end, false, ErrDuplicateZone, "start"},
		{"two ends", start + end + `<object id="3" name="end" x="0" y="0"/>`, false, ErrDuplicateZone, "end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var endless []string
			if tt.endless {
				endless = []string{"level_1"}
			}
			desc, err := load(t, tmx(tt.zones, ""), endless...)

			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("LoadLevel() error = %v", err)
				}
				if desc.End != nil || !desc.Endless {
					t.Errorf("End = %v Endless = %v, want nil/true", desc.End, desc.Endless)
				}
				return
			}

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			var zerr *ZoneError
			if !errors.As(err, &zerr) {
				t.Fatalf("error %v is not a *ZoneError", err)
			}
			if zerr.Zone != tt.wantZone || zerr.Level != "level_1" {
				t.Errorf("ZoneError = %+v, want zone %q in level_1", zerr, tt.wantZone)
			}
		})
	}
}

func TestInterpretIsRepeatable(t *testing.T) {
	doc := tmx(fullZones, fruitAndEnv)
	a, err := load(t, doc)
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}
	b, err := load(t, doc)
	if err != nil {
		t.Fatalf("LoadLevel() error = %v", err)
	}

	for i := range a.Spawns {
		if a.Spawns[i] != b.Spawns[i] {
			t.Errorf("Spawns[%d] differs between loads: %+v vs %+v", i, a.Spawns[i], b.Spawns[i])
		}
	}
}

func TestLoadAll(t *testing.T) {
	level := &fstest.MapFile{Data: []byte(tmx(fullZones, ""))}

	t.Run("numeric order", func(t *testing.T) {
		fsys := fstest.MapFS{
			"levels/level_2.tmx": level,
			"levels/level_1.tmx": level,
			"levels/bonus.tmx":   level,
		}
		levels, err := NewLoader(fsys, "levels").LoadAll()
		if err != nil {
			t.Fatalf("LoadAll() error = %v", err)
		}
		if len(levels) != 2 {
			t.Fatalf("len(levels) = %d, want 2", len(levels))
		}
		for i, desc := range levels {
			if desc.Number != i+1 {
				t.Errorf("levels[%d].Number = %d, want %d", i, desc.Number, i+1)
			}
		}
	})

	t.Run("gap in numbering", func(t *testing.T) {
		fsys := fstest.MapFS{
			"levels/level_1.tmx": level,
			"levels/level_3.tmx": level,
		}
		_, err := NewLoader(fsys, "levels").LoadAll()
		if err == nil || !strings.Contains(err.Error(), "level_2.tmx") {
			t.Errorf("LoadAll() error = %v, want it to name the missing level_2.tmx", err)
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		fsys := fstest.MapFS{"levels/readme.txt": &fstest.MapFile{Data: []byte("x")}}
		_, err := NewLoader(fsys, "levels").LoadAll()
		if !errors.Is(err, ErrNoLevels) {
			t.Errorf("LoadAll() error = %v, want ErrNoLevels", err)
		}
	})

	t.Run("invalid level fails the set", func(t *testing.T) {
		fsys := fstest.MapFS{
			"levels/level_1.tmx": level,
			"levels/level_2.tmx": &fstest.MapFile{Data: []byte(tmx(`<object id="2" name="end" x="0" y="0"/>`, ""))},
		}
		_, err := NewLoader(fsys, "levels").LoadAll()
		if !errors.Is(err, ErrMissingRequiredZone) {
			t.Errorf("LoadAll() error = %v, want ErrMissingRequiredZone", err)
		}
	})
}

func TestParseZoneKind(t *testing.T) {
	tests := map[string]ZoneKind{
		"start":    ZoneStart,
		"End":      ZoneEnd,
		" spawn ":  ZoneSpawn,
		"collider": ZoneCollider,
		"banner":   ZoneUnknown,
		"":         ZoneUnknown,
	}
	for name, want := range tests {
		if got := ParseZoneKind(name); got != want {
			t.Errorf("ParseZoneKind(%q) = %v, want %v", name, got, want)
		}
	}
}
