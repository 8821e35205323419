// internal/console/render.go
//
// Board and result drawing: gallows, figure, chosen letters, revealed
// word and the end-of-round scores.

package console

import (
	"fmt"
	"strings"

	"github.com/robalobadob/hangman/internal/game"
)

// limbs drawn for a full figure; the seventh wrong try shows all of them.
const fullFigure = 6

// RenderPreview shows the complete figure on an empty board of the given
// width before the first guess of a round.
func (c *Console) RenderPreview(columns int) {
	fmt.Fprintln(c.out, "This is what the board looks like when the whole character is present")
	c.RenderBoard(game.Board{Columns: columns, WrongTries: fullFigure, Revealed: make([]string, columns)})
}

// RenderBoard draws the gallows, the figure, the letters tried so far and
// the revealed word.
func (c *Console) RenderBoard(b game.Board) {
	indent := strings.Repeat("  ", b.Columns)
	fmt.Fprintf(c.out, "%s_\n", strings.Repeat("__", b.Columns))
	fmt.Fprintf(c.out, "%s |\n", indent)
	for _, line := range figure(min(b.WrongTries, fullFigure)) {
		fmt.Fprintf(c.out, "%s%s\n", indent, line)
	}

	if len(b.ChosenLetters) > 0 {
		fmt.Fprintf(c.out, "\nSo far, you chose >> %s\n", strings.Join(b.ChosenLetters, " "))
	}
	fmt.Fprintln(c.out, "\nCorrect Letters:")
	fmt.Fprintln(c.out)
	for _, l := range b.Revealed {
		if l == "" {
			l = " "
		}
		fmt.Fprintf(c.out, " %s   ", l)
	}
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, strings.Repeat("---  ", b.Columns))
}

// ShowResults announces the winner and both scores.
func (c *Console) ShowResults(o game.Outcome, setter, guesser *game.Player) {
	if o.Winner != nil {
		fmt.Fprintf(c.out, "End of game, word was %s\n", o.Word)
		fmt.Fprintf(c.out, "Congrats %s", o.Winner.Name)
		if o.Winner.Role == game.RoleSetter {
			fmt.Fprint(c.out, ", the guesser could not find the word.")
		}
		fmt.Fprintln(c.out, " You win and you gained a point")
	}
	fmt.Fprintln(c.out, "\nPoints:")
	fmt.Fprintf(c.out, "%s (guesser): %d\n", guesser.Name, guesser.Score)
	fmt.Fprintf(c.out, "%s (setter): %d\n", setter.Name, setter.Score)
}

// figure returns the three rows of the hanged man with n parts drawn:
// head, body, left arm, right arm, left leg, right leg.
func figure(n int) [3]string {
	part := func(i int, s string) string {
		if n >= i {
			return s
		}
		return " "
	}
	return [3]string{
		" " + part(1, "O"),
		part(3, "/") + part(2, "|") + part(4, `\`),
		part(5, "/") + " " + part(6, `\`),
	}
}
