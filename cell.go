package spreadsheet

import (
	"errors"
	"fmt"
	"strings"
)

type cellKind uint8

const (
	kindEmpty cellKind = iota
	kindText
	kindFormula
)

// Cell holds one of three content kinds — empty, text, or formula —
// plus the incoming dependency edges (dependents) used for cache
// invalidation. A Cell always belongs to the Sheet that created it;
// callers reach one only through Sheet.GetCell.
type Cell struct {
	sheet *Sheet

	kind    cellKind
	text    string   // kindText only: raw text, apostrophe included
	formula *Formula // kindFormula only

	cache      *Value // kindFormula only; nil means "not yet computed"
	dependents map[Position]struct{}
}

func newEmptyCell(sheet *Sheet) *Cell {
	return &Cell{sheet: sheet, kind: kindEmpty, dependents: make(map[Position]struct{})}
}

func (c *Cell) setEmpty() {
	c.kind = kindEmpty
	c.text = ""
	c.formula = nil
	c.cache = nil
}

func (c *Cell) setText(raw string) {
	c.kind = kindText
	c.text = raw
	c.formula = nil
	c.cache = nil
}

func (c *Cell) setFormula(f *Formula) {
	c.kind = kindFormula
	c.formula = f
	c.text = ""
	c.cache = nil
}

func (c *Cell) isEmpty() bool { return c.kind == kindEmpty }

// Value returns the cell's computed value, evaluating and memoizing a
// formula cell's result on first access.
func (c *Cell) Value() Value {
	switch c.kind {
	case kindEmpty:
		return Value{Kind: KindNumber, Number: 0}
	case kindText:
		s := c.text
		if strings.HasPrefix(s, "'") {
			s = s[1:]
		}
		return Value{Kind: KindString, Str: s}
	case kindFormula:
		if c.cache == nil {
			c.cache = computeFormulaValue(c.sheet, c.formula)
		}
		return *c.cache
	default:
		panic("unreachable cell kind") // kind is always one of the three above
	}
}

func computeFormulaValue(sheet *Sheet, f *Formula) *Value {
	n, err := f.Evaluate(sheet.lookup)
	if err == nil {
		return &Value{Kind: KindNumber, Number: n}
	}
	var fe FormulaError
	if errors.As(err, &fe) {
		return &Value{Kind: KindError, Err: fe}
	}
	panic(fmt.Sprintf("formula evaluation returned a non-FormulaError error: %v", err))
}

// Text returns the cell's raw source text: "" for an empty cell, the raw
// text (apostrophe included) for a text cell, or "=" plus the canonical
// formula expression for a formula cell.
func (c *Cell) Text() string {
	switch c.kind {
	case kindEmpty:
		return ""
	case kindText:
		return c.text
	case kindFormula:
		return "=" + c.formula.Expression()
	default:
		panic("unreachable cell kind")
	}
}

// ReferencedCells returns the positions this cell's formula reads, or
// nil for a non-formula cell.
func (c *Cell) ReferencedCells() []Position {
	if c.kind != kindFormula {
		return nil
	}
	return c.formula.ReferencedCells()
}

func (c *Cell) invalidate() {
	if c.kind == kindFormula {
		c.cache = nil
	}
}
