package motif

import (
	"bytes"
	"cmp"
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
)

// patterns holds the built-in motifs, one '#'-pattern file per preset.
//
//go:embed patterns/*.txt
var patterns embed.FS

// presets maps a preset name ("sea_monster", "cross", ...) to its motif.
var presets = map[string]*Motif{}

func init() {
	// Validate every preset at startup so a broken pattern surfaces immediately.
	entries, err := patterns.ReadDir("patterns")
	if err != nil {
		panic("motif presets: " + err.Error())
	}
	for _, e := range entries {
		data, err := patterns.ReadFile(path.Join("patterns", e.Name()))
		if err != nil {
			panic("motif presets: " + err.Error())
		}
		m, err := Parse(bytes.NewReader(data))
		if err != nil {
			panic("motif presets: " + e.Name() + " failed validation: " + err.Error())
		}
		presets[strings.TrimSuffix(e.Name(), ".txt")] = m
	}
}

// SeaMonster returns the built-in sea monster: 15 pixels in a 20x3 box.
//
//	                  #
//	#    ##    ##    ###
//	 #  #  #  #  #  #
func SeaMonster() *Motif {
	return presets["sea_monster"]
}

// Preset returns the built-in motif with the given name.
func Preset(name string) (*Motif, error) {
	m, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("unknown motif preset %q (available: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return m, nil
}

// PresetNames returns the names of the built-in motifs in sorted order.
func PresetNames() []string {
	return sortedKeys(presets)
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
