package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/flagpong/internal/assets"
	"github.com/diegok/flagpong/internal/effects"
	"github.com/diegok/flagpong/internal/game"
)

var (
	TableColor  = mustHex("#0C5F1B")
	NetColor    = mustHex("#FFFFFF")
	HandleColor = mustHex("#8B4513")
	BallColor   = mustHex("#FFFFFF")
	BarColor    = mustHex("#333333")
	black       = colorful.Color{}
	white       = colorful.Color{R: 1, G: 1, B: 1}
	quoteGray   = colorful.Color{R: 200.0 / 255, G: 200.0 / 255, B: 200.0 / 255}
)

// mustHex parses a #rrggbb color literal
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// BallRunes animate the seam as the ball spins
var BallRunes = []rune{'◐', '◓', '◑', '◒'}

const (
	NetChar     = '┊'
	popupRows   = 6
	overlayFade = 0.7
)

// Renderer draws game snapshots onto the screen
type Renderer struct {
	screen   *Screen
	textures *assets.Set
}

// NewRenderer creates a renderer drawing textures from set
func NewRenderer(screen *Screen, textures *assets.Set) *Renderer {
	return &Renderer{screen: screen, textures: textures}
}

// Viewport returns the mapping for the current terminal size
func (r *Renderer) Viewport(width, height float64) Viewport {
	cols, rows := r.screen.Size()
	return NewViewport(cols, rows, width, height)
}

// Render draws one frame. Layers go bottom to top: table, net, paddles,
// ball, particles, quote, obstacles, game-over overlay.
func (r *Renderer) Render(snap game.Snapshot) {
	r.screen.Clear()
	vp := r.Viewport(snap.Width, snap.Height)

	r.drawTable(vp)
	r.drawNet(vp)
	r.drawPaddle(vp, snap.Player, r.textures.PlayerFace)
	r.drawPaddle(vp, snap.Opponent, r.textures.OpponentFace)
	r.drawBall(vp, snap)
	r.drawParticles(vp, snap.Particles)
	if snap.Quote.Active {
		r.drawQuote(vp, snap.Quote)
	}
	r.drawObstacles(vp, snap.Obstacles)
	if snap.GameOver {
		r.drawGameOver(vp, snap.Winner)
	}

	r.renderScoreboard(vp, snap)
	r.renderStatusBar(vp, snap)

	r.screen.Show()
}

func (r *Renderer) drawTable(vp Viewport) {
	style := tcell.StyleDefault.Background(Color(TableColor))
	r.screen.FillRect(0, 1, vp.Cols, vp.TableRows(), style, ' ')
}

func (r *Renderer) drawNet(vp Viewport) {
	x := vp.CellX(vp.Width / 2)
	style := tcell.StyleDefault.Background(Color(TableColor)).Foreground(Color(NetColor))
	for y := 1; y <= vp.TableRows(); y += 2 {
		r.screen.SetCell(x, y, style, NetChar)
	}
}

// drawPaddle draws the flag face once its texture is ready, and the handle
func (r *Renderer) drawPaddle(vp Viewport, p game.Paddle, face *assets.Texture) {
	h := p.HandleRect()
	hx, hy, hw, hh := vp.Cells(h.X, h.Y, h.W, h.H)
	r.fillCells(vp, hx, hy, hw, hh, func(_, _ float64) colorful.Color { return HandleColor })

	if !face.Ready() {
		return
	}
	rect := p.Rect()
	cx, cy, cw, ch := vp.Cells(rect.X, rect.Y, rect.W, rect.H)
	r.fillCells(vp, cx, cy, cw, ch, face.At)
}

func (r *Renderer) drawBall(vp Viewport, snap game.Snapshot) {
	x, y := vp.CellX(snap.Ball.X), vp.CellY(snap.Ball.Y)
	if !vp.InTable(x, y) {
		return
	}
	quarter := int(snap.Spin/(math.Pi/2)) % len(BallRunes)
	style := tcell.StyleDefault.Background(r.screen.BackgroundAt(x, y)).Foreground(Color(BallColor))
	r.screen.SetCell(x, y, style, BallRunes[quarter])
}

// drawParticles paints each particle as a disc faded into what is below it
func (r *Renderer) drawParticles(vp Viewport, particles []effects.Particle) {
	for _, p := range particles {
		cx, cy, cw, ch := vp.Cells(p.Pos.X-p.Radius, p.Pos.Y-p.Radius, 2*p.Radius, 2*p.Radius)
		centerX, centerY := vp.CellX(p.Pos.X), vp.CellY(p.Pos.Y)

		for y := cy; y < cy+ch; y++ {
			for x := cx; x < cx+cw; x++ {
				if !vp.InTable(x, y) {
					continue
				}
				inside := math.Hypot(vp.TableX(x)-p.Pos.X, vp.TableY(y)-p.Pos.Y) <= p.Radius
				if !inside && (x != centerX || y != centerY) {
					continue
				}
				below := fromTcell(r.screen.BackgroundAt(x, y))
				r.screen.Paint(x, y, Color(Fade(below, p.Color, p.Alpha)))
			}
		}
	}
}

// drawQuote draws the popup box at its fading opacity
func (r *Renderer) drawQuote(vp Viewport, q game.QuoteView) {
	boxW := vp.Cols * 4 / 5
	if boxW < 12 || vp.TableRows() < popupRows {
		return
	}
	boxX := (vp.Cols - boxW) / 2
	boxY := max(vp.CellY(vp.Height/2-120), 1)

	bg := Color(Fade(TableColor, black, q.Alpha*0.7))
	fill := tcell.StyleDefault.Background(bg)
	r.screen.FillRect(boxX, boxY, boxW, popupRows, fill, ' ')

	border := fill.Foreground(Color(Fade(TableColor, white, q.Alpha*0.8)))
	r.screen.DrawBox(boxX, boxY, boxW, popupRows, border)

	text := fill.Foreground(Color(Fade(TableColor, white, q.Alpha)))
	lines := wrap("\""+q.Text+"\"", boxW-4, 2)
	for i, line := range lines {
		r.screen.DrawText(boxX+(boxW-runeLen(line))/2, boxY+1+i, line, text)
	}

	attr := fill.Foreground(Color(Fade(TableColor, quoteGray, q.Alpha)))
	r.screen.DrawText(boxX+(boxW-runeLen(q.Attribution))/2, boxY+popupRows-2, q.Attribution, attr)
}

// drawObstacles samples the obstacle texture across every active block
func (r *Renderer) drawObstacles(vp Viewport, obstacles []game.Obstacle) {
	tex := r.textures.Obstacle
	if !tex.Ready() {
		return
	}
	for _, o := range obstacles {
		if !o.Active {
			continue
		}
		cx, cy, cw, ch := vp.Cells(o.X, o.Y, o.Width, o.Height)
		r.fillCells(vp, cx, cy, cw, ch, tex.At)
	}
}

// drawGameOver darkens the table and names the winner
func (r *Renderer) drawGameOver(vp Viewport, winner game.Side) {
	for y := 1; y <= vp.TableRows(); y++ {
		for x := 0; x < vp.Cols; x++ {
			below := fromTcell(r.screen.BackgroundAt(x, y))
			r.screen.Paint(x, y, Color(Fade(below, black, overlayFade)))
		}
	}

	title := "You Win!"
	if winner == game.SideOpponent {
		title = "Computer Wins!"
	}
	midY := vp.CellY(vp.Height / 2)
	bg := Color(Fade(TableColor, black, overlayFade))

	titleStyle := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.DrawText((vp.Cols-runeLen(title))/2, midY-1, title, titleStyle)

	sub := "Game Over"
	r.screen.DrawText((vp.Cols-len(sub))/2, midY+1, sub, tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite))

	hint := "Press SPACE for a new game"
	r.screen.DrawText((vp.Cols-len(hint))/2, midY+3, hint, tcell.StyleDefault.Background(bg).Foreground(tcell.ColorGreen))
}

// renderScoreboard draws the score line at the top
func (r *Renderer) renderScoreboard(vp Viewport, snap game.Snapshot) {
	barStyle := tcell.StyleDefault.Background(Color(BarColor)).Foreground(tcell.ColorWhite).Bold(true)
	r.screen.FillRect(0, 0, vp.Cols, 1, barStyle, ' ')

	left := "YOU"
	right := "CPU"
	scores := fmt.Sprintf(" %d - %d ", snap.PlayerScore, snap.OpponentScore)
	x := (vp.Cols - len(left) - len(scores) - len(right)) / 2

	r.screen.DrawText(x, 0, left, barStyle.Foreground(Color(effects.PlayerPalette[0])))
	r.screen.DrawText(x+len(left), 0, scores, barStyle)
	r.screen.DrawText(x+len(left)+len(scores), 0, right, barStyle.Foreground(Color(effects.OpponentPalette[0])))
}

// renderStatusBar draws phase, settings and key help at the bottom
func (r *Renderer) renderStatusBar(vp Viewport, snap game.Snapshot) {
	statusY := vp.Rows - 1
	if statusY < 1 {
		return
	}
	style := tcell.StyleDefault.Background(Color(BarColor)).Foreground(tcell.ColorWhite)
	r.screen.FillRect(0, statusY, vp.Cols, 1, style, ' ')

	text := fmt.Sprintf(" %s | %s | First to %d | SPACE start/pause  R reset  1-3 difficulty  Q quit",
		PhaseLabel(snap.Phase), snap.Difficulty, snap.PointsToWin)
	r.screen.DrawText(0, statusY, text, style)
}

// RenderLoading is shown until every texture is ready
func (r *Renderer) RenderLoading() {
	r.screen.Clear()
	screenW, screenH := r.screen.Size()

	title := "FLAGPONG"
	titleStyle := tcell.StyleDefault.Bold(true).Foreground(tcell.ColorTeal)
	r.screen.DrawText((screenW-len(title))/2, screenH/2-2, title, titleStyle)

	msg := "Loading textures..."
	r.screen.DrawText((screenW-len(msg))/2, screenH/2, msg, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	hint := "Press 'q' to cancel"
	r.screen.DrawText((screenW-len(hint))/2, screenH/2+2, hint, tcell.StyleDefault.Foreground(tcell.ColorGray))

	r.screen.Show()
}

// PhaseLabel is the status bar name of a phase
func PhaseLabel(p game.Phase) string {
	switch p {
	case game.PhaseIdle:
		return "READY"
	case game.PhaseRunning:
		return "PLAYING"
	case game.PhasePaused:
		return "PAUSED"
	case game.PhaseMatchOver:
		return "GAME OVER"
	}
	return ""
}

// fillCells colors a block of cells by sampling color at each cell center
func (r *Renderer) fillCells(vp Viewport, cx, cy, cw, ch int, color func(u, v float64) colorful.Color) {
	for y := cy; y < cy+ch; y++ {
		for x := cx; x < cx+cw; x++ {
			if !vp.InTable(x, y) {
				continue
			}
			u := (float64(x-cx) + 0.5) / float64(cw)
			v := (float64(y-cy) + 0.5) / float64(ch)
			r.screen.SetCell(x, y, tcell.StyleDefault.Background(Color(color(u, v))), ' ')
		}
	}
}

func fromTcell(c tcell.Color) colorful.Color {
	if c == tcell.ColorDefault {
		return black
	}
	red, green, blue := c.RGB()
	if red < 0 {
		return black
	}
	return colorful.Color{R: float64(red) / 255, G: float64(green) / 255, B: float64(blue) / 255}
}

// wrap breaks text into at most maxLines lines of width runes, cutting the
// last one short with an ellipsis
func wrap(text string, width, maxLines int) []string {
	if width <= 0 {
		return nil
	}
	var lines []string
	line := ""
	for _, word := range strings.Fields(text) {
		switch {
		case line == "":
			line = word
		case runeLen(line)+1+runeLen(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}

	for i, l := range lines {
		if runeLen(l) > width {
			lines[i] = truncate(l, width)
		}
	}
	if len(lines) > maxLines {
		lines = lines[:maxLines]
		lines[maxLines-1] = truncate(lines[maxLines-1]+" ...", width)
	}
	return lines
}

func truncate(s string, width int) string {
	rs := []rune(s)
	if len(rs) <= width {
		return s
	}
	if width <= 3 {
		return string(rs[:width])
	}
	return string(rs[:width-3]) + "..."
}

func runeLen(s string) int {
	return len([]rune(s))
}
