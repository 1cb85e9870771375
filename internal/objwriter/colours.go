package objwriter

import "fmt"

// NTints is the number of tint variations per base hue in the game's
// 256-colour palette (colour = hue*NTints + tint).
const NTints = 4

// NColours is the size of the palette a primitive's colour byte indexes
// into.
const NColours = 256

// huenames names the 64 base hues (colour/NTints) of the palette this
// converter assumes, one name per hue. The original game's colours.c
// table was not available to ground this against, so it is an invented
// but plausible stand-in.
var huenames = [64]string{
	"black", "grey1", "grey2", "grey3", "grey4", "grey5", "grey6", "white",
	"dark_blue", "blue", "light_blue", "sky",
	"dark_green", "green", "light_green", "lime",
	"dark_red", "red", "light_red", "pink",
	"dark_yellow", "yellow", "light_yellow", "cream",
	"dark_orange", "orange", "light_orange", "peach",
	"dark_purple", "purple", "light_purple", "lilac",
	"dark_cyan", "cyan", "light_cyan", "aqua",
	"dark_brown", "brown", "light_brown", "tan",
	"dark_peridot", "peridot", "light_peridot", "olive",
	"dark_peru", "peru", "light_peru", "sand",
	"navy", "teal", "maroon", "gold",
	"indigo", "violet", "rose", "coral",
	"slate", "steel", "charcoal", "ivory",
	"amber", "jade", "ruby", "sapphire",
}

// ColourName returns the base hue name for a palette index in 0..63
// (colour/NTints), matching get_colour_name's signature in the original.
func ColourName(hue int) string {
	if hue < 0 || hue >= len(huenames) {
		return fmt.Sprintf("hue%d", hue)
	}
	return huenames[hue]
}
