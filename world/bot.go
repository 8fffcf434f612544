package world

// GenomeSize is the fixed genome length in bytes. The instruction pointer
// wraps modulo this on every fetch and jump.
const GenomeSize = 64

// Direction offsets for the 8 compass directions, index 0 = north, clockwise.
var (
	dirX = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	dirY = [8]int{-1, -1, 0, 1, 1, 1, 0, -1}
)

// Color is an RGBA pixel value as projected into the frame buffer.
type Color struct {
	R, G, B, A uint8
}

var (
	// colorSpawn is the color bots are born with.
	colorSpawn = Color{R: 0, G: 255, B: 0, A: 255}
	// colorPlant is taken on photosynthesis.
	colorPlant = Color{R: 0, G: 255, B: 0, A: 255}
	// colorGrazer is taken on eating organic matter.
	colorGrazer = Color{R: 150, G: 0, B: 0, A: 255}
)

// Bot is an agent occupying a single cell. A bot whose Energy has dropped to
// zero or below is dead on entry to its next tick and decays into organic
// matter.
type Bot struct {
	Alive  bool
	Genome [GenomeSize]byte
	IP     uint8 // instruction pointer into Genome
	Dir    uint8 // compass direction, 0-7
	Energy int32
	Color  Color
}

// Cell is one lattice site: at most one bot plus a non-negative amount of
// organic matter.
type Cell struct {
	Bot     Bot
	Organic int32
}
