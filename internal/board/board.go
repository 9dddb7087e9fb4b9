// Package board is the map collaborator of combat resolution: coordinates,
// terrain, buildings, debris left by destroyed limbs and pending area
// explosions. The combat core passes these through without interpreting them.
package board

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ─── Hex Coordinates ────────────────────────────────────────────────────────
// MegaMek offset coordinates (col, row), odd-q layout, 1-indexed.

type HexCoord struct {
	Col, Row int
}

func (h HexCoord) String() string {
	return fmt.Sprintf("%02d%02d", h.Col, h.Row)
}

type CubeCoord struct {
	Q, R, S int
}

// OffsetToCube converts offset coords (odd-q layout) to cube coords.
func OffsetToCube(h HexCoord) CubeCoord {
	q := h.Col - 1
	r := h.Row - 1
	z := r - (q-(q&1))/2
	return CubeCoord{Q: q, R: -q - z, S: z}
}

// Distance returns the hex distance between two offset coordinates.
func Distance(a, b HexCoord) int {
	ac := OffsetToCube(a)
	bc := OffsetToCube(b)
	return (abs(ac.Q-bc.Q) + abs(ac.R-bc.R) + abs(ac.S-bc.S)) / 2
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Neighbors returns the 6 adjacent hexes, facing order 0=N clockwise.
func Neighbors(h HexCoord) [6]HexCoord {
	col, row := h.Col, h.Row
	// 1-indexed even columns are the shifted ones in odd-q
	if col%2 == 0 {
		return [6]HexCoord{
			{col, row - 1},
			{col + 1, row},
			{col + 1, row + 1},
			{col, row + 1},
			{col - 1, row + 1},
			{col - 1, row},
		}
	}
	return [6]HexCoord{
		{col, row - 1},
		{col + 1, row - 1},
		{col + 1, row},
		{col, row + 1},
		{col - 1, row},
		{col - 1, row - 1},
	}
}

// ─── Terrain ────────────────────────────────────────────────────────────────

type TerrainType int

const (
	TerrainWoods TerrainType = iota // level 1=light, 2=heavy
	TerrainWater                    // level = depth
	TerrainRough
	TerrainPavement
	TerrainRoad
	TerrainBuilding // level = CF class (1-4)
	TerrainSand
	TerrainSwamp
	TerrainMud
	TerrainRubble
	TerrainDebris // limbs and wreckage
	TerrainVacuum
)

type TerrainFeature struct {
	Type  TerrainType
	Level int
}

type Hex struct {
	Coord     HexCoord
	Elevation int
	Terrain   []TerrainFeature
}

func (h *Hex) HasTerrain(t TerrainType) (bool, int) {
	for _, f := range h.Terrain {
		if f.Type == t {
			return true, f.Level
		}
	}
	return false, 0
}

// Building is a structure standing in one or more hexes.
type Building struct {
	ID  int
	CF  int
	Hex []HexCoord
}

// Explosion is an area effect waiting to be applied to everything near it.
type Explosion struct {
	Origin      HexCoord
	Damage      int
	Degradation int
	Cause       string
}

// ─── Accessors ──────────────────────────────────────────────────────────────

// Accessor is what combat resolution may ask of the board.
type Accessor interface {
	TerrainAt(h HexCoord) []TerrainFeature
	BuildingAt(h HexCoord) *Building
	AddDebris(h HexCoord, cause string)
	AddExplosion(e Explosion)
}

// ─── Board ──────────────────────────────────────────────────────────────────

type Board struct {
	Width, Height int
	Hexes         map[HexCoord]*Hex
	Buildings     []*Building
	Pending       []Explosion
}

func New(w, h int) *Board {
	return &Board{
		Width:  w,
		Height: h,
		Hexes:  make(map[HexCoord]*Hex, w*h),
	}
}

func (b *Board) InBounds(h HexCoord) bool {
	return h.Col >= 1 && h.Col <= b.Width && h.Row >= 1 && h.Row <= b.Height
}

// Get returns the hex, creating a clear one for in-bounds coords.
func (b *Board) Get(h HexCoord) *Hex {
	if hex, ok := b.Hexes[h]; ok {
		return hex
	}
	if !b.InBounds(h) {
		return nil
	}
	hex := &Hex{Coord: h}
	b.Hexes[h] = hex
	return hex
}

func (b *Board) TerrainAt(h HexCoord) []TerrainFeature {
	if hex := b.Hexes[h]; hex != nil {
		return hex.Terrain
	}
	return nil
}

func (b *Board) BuildingAt(h HexCoord) *Building {
	for _, bld := range b.Buildings {
		for _, c := range bld.Hex {
			if c == h {
				return bld
			}
		}
	}
	return nil
}

// AddDebris raises the debris level of a hex by one.
func (b *Board) AddDebris(h HexCoord, cause string) {
	hex := b.Get(h)
	if hex == nil {
		return
	}
	for i := range hex.Terrain {
		if hex.Terrain[i].Type == TerrainDebris {
			hex.Terrain[i].Level++
			return
		}
	}
	hex.Terrain = append(hex.Terrain, TerrainFeature{Type: TerrainDebris, Level: 1})
}

func (b *Board) AddExplosion(e Explosion) {
	b.Pending = append(b.Pending, e)
}

// TakeExplosions drains the pending explosions.
func (b *Board) TakeExplosions() []Explosion {
	out := b.Pending
	b.Pending = nil
	return out
}

// ─── Board Parser ───────────────────────────────────────────────────────────

// Parse reads a MegaMek .board file.
func Parse(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open board: %w", err)
	}
	defer f.Close()

	var board *Board
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == '#' || line == "end" {
			continue
		}
		if strings.HasPrefix(line, "size ") {
			parts := strings.Fields(line)
			if len(parts) >= 3 {
				w, _ := strconv.Atoi(parts[1])
				h, _ := strconv.Atoi(parts[2])
				board = New(w, h)
			}
			continue
		}
		if strings.HasPrefix(line, "hex ") && board != nil {
			parseHexLine(board, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan board: %w", err)
	}
	if board == nil {
		return nil, fmt.Errorf("board %s: missing size line", path)
	}
	return board, nil
}

func parseHexLine(board *Board, line string) {
	// hex XXYY elevation "terrain;terrain" "theme"
	parts := strings.Fields(line)
	if len(parts) < 3 || len(parts[1]) != 4 {
		return
	}
	col, _ := strconv.Atoi(parts[1][:2])
	row, _ := strconv.Atoi(parts[1][2:])
	elev, _ := strconv.Atoi(parts[2])

	hex := &Hex{Coord: HexCoord{Col: col, Row: row}, Elevation: elev}
	if len(parts) >= 4 {
		for _, feat := range strings.Split(strings.Trim(parts[3], "\""), ";") {
			if tf, ok := parseTerrainFeature(strings.TrimSpace(feat)); ok {
				hex.Terrain = append(hex.Terrain, tf)
			}
		}
	}
	board.Hexes[hex.Coord] = hex
}

func parseTerrainFeature(s string) (TerrainFeature, bool) {
	if s == "" {
		return TerrainFeature{}, false
	}
	parts := strings.Split(s, ":")
	level := 1
	if len(parts) >= 2 {
		level, _ = strconv.Atoi(parts[1])
	}
	types := map[string]TerrainType{
		"woods":    TerrainWoods,
		"water":    TerrainWater,
		"rough":    TerrainRough,
		"pavement": TerrainPavement,
		"road":     TerrainRoad,
		"building": TerrainBuilding,
		"sand":     TerrainSand,
		"swamp":    TerrainSwamp,
		"mud":      TerrainMud,
		"rubble":   TerrainRubble,
		"debris":   TerrainDebris,
		"space":    TerrainVacuum,
	}
	t, ok := types[strings.ToLower(parts[0])]
	if !ok {
		// ground_fluff, foliage_elev, bridge, etc. are cosmetic
		return TerrainFeature{}, false
	}
	return TerrainFeature{Type: t, Level: level}, true
}
