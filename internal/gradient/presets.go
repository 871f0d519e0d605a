package gradient

// Preset identifies a built-in named gradient.
type Preset uint8

// Built-in gradients. Custom means the caller supplies stops.
const (
	Custom Preset = iota
	Greyscale
	Fire
	Ice
	Earth
	Rainbow
	Sepia
	Grass
)

// Presets holds the stops of every named gradient.
var Presets = map[Preset][]Stop{
	Greyscale: {{0, 0x000000}, {4096, 0xFFFFFF}},
	Fire:      {{0, 0x000000}, {1365, 0xC00000}, {2730, 0xFF8000}, {4096, 0xFFFF80}},
	Ice:       {{0, 0x000020}, {2048, 0x4080FF}, {4096, 0xFFFFFF}},
	Earth:     {{0, 0x302010}, {1638, 0x705030}, {3276, 0xA08050}, {4096, 0xD0C090}},
	Rainbow: {
		{0, 0xFF0000}, {819, 0xFFFF00}, {1638, 0x00FF00},
		{2457, 0x00FFFF}, {3276, 0x0000FF}, {4096, 0xFF00FF},
	},
	Sepia: {{0, 0x1A0F05}, {4096, 0xF0DCB4}},
	Grass: {{0, 0x0A2005}, {2048, 0x2A6010}, {4096, 0x90C040}},
}

// String returns the preset name.
func (p Preset) String() string {
	switch p {
	case Custom:
		return "custom"
	case Greyscale:
		return "greyscale"
	case Fire:
		return "fire"
	case Ice:
		return "ice"
	case Earth:
		return "earth"
	case Rainbow:
		return "rainbow"
	case Sepia:
		return "sepia"
	case Grass:
		return "grass"
	}
	return "unknown"
}
