// internal/console/console.go
//
// Line-oriented terminal I/O for the game.
// Responsibilities:
//   - Prompts and raw line input (EOF surfaces as ErrInputClosed).
//   - Numbered option menus with digit/range validation.
//   - The countdown shown while the computer "thinks".
//
// Drawing the board lives in render.go.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

var ErrInputClosed = errors.New("console: input closed")

// Console reads answers from in and writes everything to out.
type Console struct {
	sc   *bufio.Scanner
	out  io.Writer
	step time.Duration
}

// New returns a Console. step is the delay between countdown ticks; zero
// prints the countdown without waiting.
func New(in io.Reader, out io.Writer, step time.Duration) *Console {
	return &Console{sc: bufio.NewScanner(in), out: out, step: step}
}

// Println writes a line of text.
func (c *Console) Println(a ...any) { fmt.Fprintln(c.out, a...) }

// Printf writes formatted text.
func (c *Console) Printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }

// Prompt shows message followed by the input marker.
func (c *Console) Prompt(message string) {
	fmt.Fprintln(c.out, message)
	fmt.Fprint(c.out, "\n>> ")
}

// Error reports a recoverable input problem.
func (c *Console) Error(problem string) {
	c.Prompt(fmt.Sprintf("Error, %s, please try again", problem))
}

// ReadLine returns the next input line without its line ending.
func (c *Console) ReadLine() (string, error) {
	if !c.sc.Scan() {
		if err := c.sc.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(c.sc.Text(), "\r"), nil
}

// Options asks the user to pick one of choices by number and returns its
// index. Invalid answers are reported and asked again.
func (c *Console) Options(choices []string, message string) (int, error) {
	if len(choices) == 0 {
		return 0, errors.New("console: no options")
	}
	fmt.Fprintf(c.out, "\n%s (%s)\n", message, joinChoices(choices))
	fmt.Fprintln(c.out, "\nSelect a number corresponding to an option:")
	var menu strings.Builder
	for i, ch := range choices {
		fmt.Fprintf(&menu, "%d: %s   ", i+1, ch)
	}
	c.Prompt(menu.String())

	for {
		line, err := c.ReadLine()
		if err != nil {
			return 0, err
		}
		line = strings.TrimSpace(line)
		n, err := strconv.Atoi(line)
		switch {
		case line == "" || err != nil || !isDigits(line):
			c.Error("must input number")
		case n < 1 || n > len(choices):
			c.Error("out of range")
		default:
			fmt.Fprintln(c.out)
			return n - 1, nil
		}
	}
}

// Confirm is a Yes/No menu.
func (c *Console) Confirm(message string) (bool, error) {
	i, err := c.Options([]string{"Yes", "No"}, message)
	return i == 0, err
}

// Countdown prints "message -> 3 2 1", waiting one step per tick.
func (c *Console) Countdown(ctx context.Context, message string) error {
	fmt.Fprintf(c.out, "%s -> ", message)
	for i := 3; i > 0; i-- {
		fmt.Fprintf(c.out, "%d ", i)
		if c.step <= 0 {
			continue
		}
		t := time.NewTimer(c.step)
		select {
		case <-ctx.Done():
			t.Stop()
			fmt.Fprintln(c.out)
			return ctx.Err()
		case <-t.C:
		}
	}
	fmt.Fprintln(c.out)
	return nil
}

// joinChoices renders "a, b or c".
func joinChoices(choices []string) string {
	if len(choices) == 1 {
		return choices[0]
	}
	return strings.Join(choices[:len(choices)-1], ", ") + " or " + choices[len(choices)-1]
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
