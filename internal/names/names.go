// Package names maps Chocks Away object indices onto the handful of
// mnemonic names the game's own assets use for recognizable targets,
// falling back to a generated "chocks_N" label for everything else.
package names

import "fmt"

type entry struct {
	index int
	name  string
}

// baseNames covers the objects recognizable in the original 'Chocks Away'.
var baseNames = []entry{
	{0, "gun"},          // GROUND GUN BASE
	{1, "store"},        // STORE BUILDING
	{2, "tank"},         // TANK
	{3, "headquarters"}, // HEAD QUARTERS
	{4, "tower"},        // CONTROL TOWER
	{5, "boat"},         // PATROL BOAT
	{18, "tiger"},       // TIGER MOTH
	{19, "twin"},        // FOKKER V7 TWIN
	{22, "gotha"},       // GOTHA G IV BOMBER
	{23, "s_tiger"},
	{24, "s_twin"},
	{25, "s_gotha"}, // ...shadows...
	{26, "s_eindecker"},
	{27, "s_scout"},
	{28, "s_triplane"},
	{29, "eindecker"}, // FOKKER EINDECKER IV
	{30, "triplane"},  // FOKKER VIII TRIPLANE
	{31, "scout"},     // ALBATROS DIII SCOUT
}

// extraNames adds the objects recognizable in the 'Extra Missions'
// expansion, on top of baseNames.
var extraNames = []entry{
	{46, "bridge"},   // BRIDGE
	{52, "carrier"},  // AIRCRAFT CARRIER
	{54, "yacht"},    // YACHT
	{68, "factory"},  // FACTORY
	{72, "airship"},  // AIRSHIP
	{73, "balloon"},  // BARRAGE BALLOON
	{78, "terminal"}, // CONTROL TERMINAL
	{79, "tanker"},   // OIL TANKER
	{81, "gunboat"},  // GUN BOAT
	{85, "train"},    // TRAIN
	{77, "biplane"},  // FOKKER DE5 BIPLANE
	{75, "triengine"}, // FOKKER V3 TRIENGINE
	{74, "cargo"},     // CARGO AIRCRAFT
	{87, "station"},   // RAILWAY STATION
	{102, "s_biplane"},
	{103, "s_triengine"}, // ...shadows...
	{104, "s_cargo"},
	{107, "ground_jet"}, // JET FIGHTER
	{108, "jet"},        // JET FIGHTER
}

func lookup(table []entry, index int) (string, bool) {
	for _, e := range table {
		if e.index == index {
			return e.name, true
		}
	}
	return "", false
}

// ObjName returns the name of object index under the base 'Chocks Away'
// scheme, or "chocks_<index>" if it has no mnemonic name.
func ObjName(index int) string {
	if n, ok := lookup(baseNames, index); ok {
		return n
	}
	return fmt.Sprintf("chocks_%d", index)
}

// ObjNameExtra returns the name of object index under the 'Extra
// Missions' scheme, falling back to ObjName for indices not added by the
// expansion.
func ObjNameExtra(index int) string {
	if n, ok := lookup(extraNames, index); ok {
		return n
	}
	return ObjName(index)
}
