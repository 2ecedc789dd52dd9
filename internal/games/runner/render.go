package runner

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Visual characters for rendering
const (
	PlayerHead = '◉'
	PlayerBody = '█'
	RailChar   = '┆'
	GroundChar = '═'
	HeartChar  = '♥'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.state == nil {
		return
	}

	g.drawTrack(dst)
	g.drawEntities(dst)
	g.drawPlayer(dst)
	g.drawHUD(dst)

	switch {
	case g.state.Status == StatusShop:
		g.drawShop(dst)
	case g.state.Status == StatusVictory:
		g.drawCenteredMessage(dst, "VICTORY",
			fmt.Sprintf("Score: %d  |  Press Enter for endless mode", g.state.Score))
	case g.state.Status == StatusGameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", g.state.Score))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// trackRows returns the top and bottom screen rows of the track view.
func (g *Game) trackRows(dst *core.Screen) (top, bottom int) {
	return 2, dst.Height() - 3
}

// rowForZ maps a world Z to a screen row: far spawns at the top, the
// player near the bottom.
func (g *Game) rowForZ(dst *core.Screen, z float64) int {
	top, bottom := g.trackRows(dst)
	span := g.cfg.Track.SpawnHorizon + g.cfg.Track.RemovalThreshold
	t := (z + g.cfg.Track.SpawnHorizon) / span
	return top + int(t*float64(bottom-top)+0.5)
}

// colForX maps a world X to a screen column around the center.
func (g *Game) colForX(dst *core.Screen, x float64) int {
	return dst.Width()/2 + int(x*1.5+0.5)
}

func (g *Game) drawTrack(dst *core.Screen) {
	top, bottom := g.trackRows(dst)
	half := g.cfg.Track.LaneWidth / 2

	for _, lane := range core.LaneOffsets(g.state.LaneCount, g.cfg.Track.LaneWidth) {
		left := g.colForX(dst, lane-half)
		right := g.colForX(dst, lane+half)
		for y := top; y <= bottom; y++ {
			dst.SetColor(left, y, RailChar, core.ColorGray)
			dst.SetColor(right, y, RailChar, core.ColorGray)
		}
	}
	dst.DrawHLine(0, bottom+1, dst.Width(), GroundChar)
}

func (g *Game) drawEntities(dst *core.Screen) {
	word := WordForLevel(g.state.Level)
	for _, e := range g.reg.All() {
		if !e.Active {
			continue
		}
		x := g.colForX(dst, e.Pos.X)
		y := g.rowForZ(dst, e.Pos.Z)

		glyph := e.Kind.Policy().Glyph
		switch e.Kind {
		case KindLetter:
			if e.LetterIndex >= 0 && e.LetterIndex < len(word) {
				glyph = rune(word[e.LetterIndex])
			}
		case KindShopPortal:
			// Portals span the whole track
			left := g.colForX(dst, -float64(g.state.LaneCount/2)*g.cfg.Track.LaneWidth)
			right := g.colForX(dst, float64(g.state.LaneCount/2)*g.cfg.Track.LaneWidth)
			for xx := left; xx <= right; xx++ {
				dst.SetColor(xx, y, glyph, e.Color)
			}
			continue
		}
		dst.SetColor(x, y, glyph, e.Color)
	}
}

func (g *Game) drawPlayer(dst *core.Screen) {
	_, bottom := g.trackRows(dst)
	x := g.colForX(dst, g.player.X)
	y := bottom - int(g.player.Y+0.5)

	color := core.ColorBrightWhite
	if g.state.Invulnerable(g.now) {
		color = core.ColorBrightYellow
	}
	dst.SetColor(x, y-1, PlayerHead, color)
	dst.SetColor(x, y, PlayerBody, color)
}

func (g *Game) drawHUD(dst *core.Screen) {
	hearts := strings.Repeat(string(HeartChar), g.state.Lives) +
		strings.Repeat("·", g.state.MaxLives-g.state.Lives)
	left := fmt.Sprintf(" Score: %d  Gems: %d  %s ", g.state.Score, g.state.Gems, hearts)
	dst.DrawText(1, 0, left)

	var right string
	if g.state.Mode == ModeStory {
		right = fmt.Sprintf(" L%d %s  Spd: %.1f ", g.state.Level, g.wordProgress(), g.state.BaseSpeed)
	} else {
		right = fmt.Sprintf(" Endless  Spd: %.1f ", g.state.BaseSpeed)
	}
	dst.DrawText(dst.Width()-len([]rune(right))-1, 0, right)

	if buffs := g.activeBuffLine(); buffs != "" {
		dst.DrawTextColor(1, 1, buffs, core.ColorBrightBlue)
	}
}

// wordProgress renders collected letters in place and dots for the rest.
func (g *Game) wordProgress() string {
	word := WordForLevel(g.state.Level)
	var sb strings.Builder
	for i := 0; i < len(word) && i < WordLength; i++ {
		if g.state.Letters[i] {
			sb.WriteByte(word[i])
		} else {
			sb.WriteByte('·')
		}
	}
	return sb.String()
}

func (g *Game) activeBuffLine() string {
	labels := []struct {
		buff Buff
		name string
	}{
		{BuffShield, "[Shield]"},
		{BuffMagnet, "[Magnet]"},
		{BuffScoreBoost, "[x2]"},
		{BuffSlowMotion, "[Slow]"},
		{BuffReverse, "[Reverse]"},
		{BuffImmortal, "[Immortal]"},
	}
	var parts []string
	for _, l := range labels {
		if g.state.BuffActive(l.buff, g.now) {
			parts = append(parts, l.name)
		}
	}
	return strings.Join(parts, " ")
}

func (g *Game) drawShop(dst *core.Screen) {
	items := Catalog(g.state)

	boxW := 44
	boxH := len(items) + 6
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawText(boxX+(boxW-6)/2, boxY+1, "SHOP")
	dst.DrawText(boxX+2, boxY+2, fmt.Sprintf("Gems: %d", g.state.Gems))

	for i, item := range items {
		cursor := "  "
		if i == g.shopCursor {
			cursor = "> "
		}
		status := fmt.Sprintf("%d", item.Cost)
		if item.Owned {
			status = "owned"
		}
		line := fmt.Sprintf("%s%-22s %s", cursor, item.Name, status)
		dst.DrawText(boxX+2, boxY+3+i, line)
	}
	dst.DrawText(boxX+2, boxY+boxH-2, "Enter: buy  Esc: resume run")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ')
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
