package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"genesis/pkg/compiler"
	"genesis/pkg/grid"
	"genesis/pkg/intern"
	"genesis/pkg/utils"
)

const (
	screenWidth  = 512
	screenHeight = 512
	cellWidth    = 128 // 21 debug-font glyphs
	cellHeight   = 16
	cellChars    = 20
	cols         = screenWidth / cellWidth
	headerRows   = 1
	visibleRows  = screenHeight/cellHeight - headerRows
)

// Game renders the token stream of one source file as a scrollable grid,
// one token per cell.
type Game struct {
	title  string
	labels []string
	rows   int
	scroll int // first visible row
}

func newGame(title string, src []byte, opts ...compiler.Option) (*Game, error) {
	names := intern.New(intern.WithIndex())
	kw, err := compiler.InternKeywords(names)
	if err != nil {
		return nil, err
	}
	tokens, err := compiler.Tokenize(src, names, opts...)
	if err != nil {
		return nil, err
	}

	labels := make([]string, 0, tokens.Len())
	for tok := range tokens.Values() {
		labels = append(labels, cellLabel(tok, names, kw))
	}
	return &Game{
		title:  fmt.Sprintf("%s: %d tokens, %d names", title, tokens.Len(), names.Count()),
		labels: labels,
		rows:   grid.Rows(len(labels), cols),
	}, nil
}

// cellLabel fits a token's lexeme into one cell. Keywords are bracketed.
func cellLabel(tok compiler.Token, names *intern.Interner, kw compiler.Keywords) string {
	text := compiler.Lexeme(tok, names)
	if kw.Is(tok) {
		text = "[" + text + "]"
	}
	if len(text) > cellChars {
		text = text[:cellChars-1] + "~"
	}
	return text
}

func (g *Game) scrollBy(delta int) {
	g.scroll = grid.ClampScroll(g.scroll+delta, g.rows, visibleRows)
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.scrollBy(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.scrollBy(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		g.scrollBy(visibleRows)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.scrollBy(-visibleRows)
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.scroll = 0
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.title, 0, 0)
	for i, label := range g.labels {
		x, y := grid.GetGridCoords(i, cols)
		y -= g.scroll
		if y < 0 || y >= visibleRows {
			continue
		}
		ebitenutil.DebugPrintAt(screen, label, x*cellWidth, (y+headerRows)*cellHeight)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	skipSpace := flag.Bool("skip-ws", true, "discard whitespace instead of emitting it as tokens")
	verbosity := flag.Int("v", 0, "log verbosity")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("usage: desktop [-skip-ws] [-v n] <source file>")
	}
	logger := utils.NewLogger(*verbosity)

	src, fullPath, err := utils.LoadSource(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read source file: %v", err)
	}

	opts := []compiler.Option{compiler.WithLogger(logger)}
	if *skipSpace {
		opts = append(opts, compiler.WithSkipWhitespace())
	}
	game, err := newGame(fullPath, src, opts...)
	if err != nil {
		log.Fatalf("Lexing failed: %v", err)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Genesis Tokens")

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
