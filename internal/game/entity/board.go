package entity

import "fmt"

// Board dimensions.
const (
	Rows = 4
	Cols = 5
)

// Coord addresses a board cell. X is the row and Y the column.
type Coord struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// InBounds reports whether the coordinate names a cell on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < Rows && c.Y >= 0 && c.Y < Cols
}

// Cell is a board slot. The zero value is empty.
type Cell struct {
	card *Card
}

// Occupied returns a cell holding card.
func Occupied(card *Card) Cell {
	return Cell{card: card}
}

// Empty reports whether no card is in the cell.
func (c Cell) Empty() bool {
	return c.card == nil
}

// Card returns the card in the cell, if any.
func (c Cell) Card() (*Card, bool) {
	return c.card, c.card != nil
}

// Board is the shared 4x5 battlefield. Occupied cells in a row are always
// contiguous from column 0.
type Board struct {
	cells [Rows][Cols]Cell
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Cell returns the cell at c. Out-of-range coordinates read as empty.
func (b *Board) Cell(c Coord) Cell {
	if !c.InBounds() {
		return Cell{}
	}
	return b.cells[c.X][c.Y]
}

// CardAt returns the card at c, if any.
func (b *Board) CardAt(c Coord) (*Card, bool) {
	return b.Cell(c).Card()
}

// Place puts card into the first empty cell of row, scanning left to right.
// It returns the chosen column, or false when the row is full.
func (b *Board) Place(row int, card *Card) (int, bool) {
	if row < 0 || row >= Rows || card == nil {
		return 0, false
	}
	for col := 0; col < Cols; col++ {
		if b.cells[row][col].Empty() {
			b.cells[row][col] = Occupied(card)
			return col, true
		}
	}
	return 0, false
}

// RowCards returns the cards present in row, left to right.
func (b *Board) RowCards(row int) []*Card {
	if row < 0 || row >= Rows {
		return nil
	}
	cards := make([]*Card, 0, Cols)
	for col := 0; col < Cols; col++ {
		if card, ok := b.cells[row][col].Card(); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// EachInRow calls fn for every card present in row, left to right.
func (b *Board) EachInRow(row int, fn func(Coord, *Card)) {
	if row < 0 || row >= Rows {
		return
	}
	for col := 0; col < Cols; col++ {
		if card, ok := b.cells[row][col].Card(); ok {
			fn(Coord{X: row, Y: col}, card)
		}
	}
}

// Each calls fn for every card on the board in row-major order.
func (b *Board) Each(fn func(Coord, *Card)) {
	for row := 0; row < Rows; row++ {
		b.EachInRow(row, fn)
	}
}

// RowHasTaunt reports whether a taunt minion stands in row.
func (b *Board) RowHasTaunt(row int) bool {
	for _, card := range b.RowCards(row) {
		if card.IsTaunt() {
			return true
		}
	}
	return false
}

// Eliminate marks the card at c dead, empties its cell and shifts the cards
// to its right one column left. It returns the removed card.
func (b *Board) Eliminate(c Coord) (*Card, bool) {
	card, ok := b.CardAt(c)
	if !ok {
		return nil, false
	}
	card.Dead = true
	b.cells[c.X][c.Y] = Cell{}

	row := &b.cells[c.X]
	for col := c.Y + 1; col < Cols; col++ {
		if row[col].Empty() {
			break
		}
		row[col-1] = row[col]
		row[col] = Cell{}
	}
	return card, true
}
