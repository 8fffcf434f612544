package world

import "math"

// Opcode values. The byte space is deliberately sparse: everything outside
// the table is a NOP that still costs the bot its action for the tick.
const (
	opJumpMax    = 7  // 0-7: unconditional ip offset
	opTurnMin    = 10 // 10-15: rotate direction
	opTurnMax    = 15
	opPhotosynth = 20
	opEat        = 30
	opMove       = 40
)

// processBot advances the bot at idx by one turn, reading the current buffer
// and writing the next. Returns false if the bot was dead on entry and
// decayed into organic matter.
//
// A turn is at most MaxSteps opcode fetches; jumps and turns are control flow
// only, the first action opcode (or any unknown opcode) ends the turn.
func (w *World) processBot(idx int, cur, next []Cell) bool {
	bot := &cur[idx].Bot

	if bot.Energy <= 0 {
		next[idx].Organic += w.params.CorpseOrganic
		next[idx].Bot.Alive = false
		return false
	}

	// By default the bot stays put; a successful move repoints nb at the
	// destination so the remaining costs land there.
	next[idx].Bot = *bot
	nb := &next[idx].Bot

	steps := 0
	done := false
	for steps < w.params.MaxSteps && !done {
		cmd := bot.Genome[nb.IP]
		nb.IP = (nb.IP + 1) % GenomeSize

		switch {
		case cmd <= opJumpMax:
			nb.IP = (nb.IP + cmd) % GenomeSize

		case cmd >= opTurnMin && cmd <= opTurnMax:
			nb.Dir = (nb.Dir + (cmd - opTurnMin)) % 8

		case cmd == opPhotosynth:
			nb.Energy += w.params.PhotoGain
			nb.Color = colorPlant
			done = true

		case cmd == opEat:
			if organic := cur[idx].Organic; organic > 0 {
				eaten := organic
				if eaten > w.params.EatMax {
					eaten = w.params.EatMax
				}
				nb.Energy += eaten
				next[idx].Organic -= eaten
				nb.Color = colorGrazer
			}
			done = true

		case cmd == opMove:
			nIdx := w.neighborIndex(idx, nb.Dir)
			if cur[nIdx].Bot.Alive {
				// Attack: siphon half the victim's energy as read this
				// tick. The victim itself is untouched in next and may
				// still act from its own cell.
				nb.Energy = satAdd(nb.Energy, cur[nIdx].Bot.Energy/2)
			} else if w.claims[nIdx].CompareAndSwap(false, true) {
				// Move: the claim makes this cell ours exclusively, so the
				// struct write below is unraced. Losers stay at their
				// origin and skip the move cost.
				next[nIdx].Bot = *nb
				next[idx].Bot.Alive = false
				nb = &next[nIdx].Bot
				nb.Energy -= w.params.MoveCost
			}
			done = true

		default:
			done = true
		}

		steps++
	}

	nb.Energy -= w.params.ExistenceCost
	return true
}

// neighborIndex resolves the cell one step from idx in direction dir, with
// toroidal wrap on both axes.
func (w *World) neighborIndex(idx int, dir uint8) int {
	x := (idx%w.params.W + dirX[dir] + w.params.W) % w.params.W
	y := (idx/w.params.W + dirY[dir] + w.params.H) % w.params.H
	return y*w.params.W + x
}

// satAdd adds with int32 saturation. Predatory transfers compound, so the
// one place energy could realistically overflow is guarded.
func satAdd(a, b int32) int32 {
	s := int64(a) + int64(b)
	if s > math.MaxInt32 {
		return math.MaxInt32
	}
	if s < math.MinInt32 {
		return math.MinInt32
	}
	return int32(s)
}
