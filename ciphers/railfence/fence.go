package railfence

import "strings"

// Gap marks a zigzag cell that holds no character.
const Gap = '.'

// Fence renders the zigzag layout of message, one line per rail.
//
//	W...E...C...R..
//	.E.R.D.S.O.E.E.
//	..A...I...V...D
//
// Rails that can never receive a character (depth larger than the message) are
// omitted, so the layout has min(depth, len(message)) lines. An empty message
// renders no lines.
func Fence(message string, depth int) ([]string, error) {
	if err := validate(message, depth); err != nil {
		return nil, err
	}
	text := []rune(message)
	if len(text) == 0 {
		return nil, nil
	}

	rows := min(depth, len(text))
	grid := make([][]rune, rows)
	for rail := range grid {
		grid[rail] = []rune(strings.Repeat(string(Gap), len(text)))
	}
	for i, r := range text {
		grid[Rail(i, rows)][i] = r
	}

	lines := make([]string, rows)
	for rail, row := range grid {
		lines[rail] = string(row)
	}
	return lines, nil
}
