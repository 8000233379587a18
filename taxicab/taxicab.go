// Package taxicab walks a comma separated list of turn-by-turn instructions
// over a city grid and measures how far the walk ends from the origin.
package taxicab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/adamluzsi/seq"
)

// Turn is a one character turn indicator, either Left or Right.
type Turn byte

const (
	Left  Turn = 'L'
	Right Turn = 'R'
)

// Instruction tells which way to turn and how many blocks to advance afterwards.
type Instruction struct {
	Turn     Turn
	Distance int
}

// Position is a point of the city grid.
type Position struct {
	X, Y int
}

// Heading is one of the four unit vectors of the grid.
type Heading struct {
	DX, DY int
}

var (
	North = Heading{DX: 0, DY: 1}
	East  = Heading{DX: 1, DY: 0}
	South = Heading{DX: 0, DY: -1}
	West  = Heading{DX: -1, DY: 0}
)

// State is the walker's position and heading between two instructions.
type State struct {
	Position Position
	Heading  Heading
}

// Start is the walk's initial state: the origin, facing North.
var Start = State{Heading: North}

// Parse returns a single-pass sequence of the instructions
// serialized in a comma-and-space separated string, e.g. "R2, L3".
// A malformed token surfaces as an error on the consuming terminal operation.
func Parse(input string) seq.Seq[Instruction] {
	tokens := strings.Split(input, ", ")
	var index int
	return seq.FromIterator(seq.Func[Instruction](func() (Instruction, bool, error) {
		var zero Instruction
		if len(tokens) <= index {
			return zero, false, nil
		}
		token := tokens[index]
		index++
		ins, err := parseToken(token)
		if err != nil {
			return zero, false, err
		}
		return ins, true, nil
	}))
}

func parseToken(token string) (Instruction, error) {
	var zero Instruction
	if len(token) < 2 {
		return zero, fmt.Errorf("taxicab: malformed instruction %q", token)
	}
	turn := Turn(token[0])
	if turn != Left && turn != Right {
		return zero, fmt.Errorf("taxicab: unknown turn indicator in %q", token)
	}
	distance, err := strconv.Atoi(token[1:])
	if err != nil || distance < 0 {
		return zero, fmt.Errorf("taxicab: malformed distance in %q", token)
	}
	return Instruction{Turn: turn, Distance: distance}, nil
}

// Move applies one instruction to the walker's state:
// rotate the heading a quarter turn, then advance along the new heading.
func Move(st State, ins Instruction) State {
	h := st.Heading
	if ins.Turn == Left {
		h = Heading{DX: -h.DY, DY: h.DX}
	} else {
		h = Heading{DX: h.DY, DY: -h.DX}
	}
	return State{
		Position: Position{
			X: st.Position.X + h.DX*ins.Distance,
			Y: st.Position.Y + h.DY*ins.Distance,
		},
		Heading: h,
	}
}

// Walk folds the instructions over the starting state.
func Walk(instructions seq.Seq[Instruction], start State) (State, error) {
	return seq.FoldLeft(instructions, start, Move)
}

// Distance is the Manhattan distance of the position from the origin.
func Distance(p Position) int {
	return abs(p.X) + abs(p.Y)
}

// Run walks the serialized instructions from Start
// and reports the final Manhattan distance.
func Run(input string) (int, error) {
	st, err := Walk(Parse(input), Start)
	if err != nil {
		return 0, err
	}
	return Distance(st.Position), nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
