package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrUnhandled = errors.New("unhandled command")

// Run executes one command per line from r, echoing results to the console
// output. Blank lines and lines starting with # are skipped. With strict
// set, the first line that cannot be mapped to a command stops the run.
func (c *Console) Run(ctx context.Context, r io.Reader, strict bool) error {
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		res := c.Execute(line)
		if res.Message != "" {
			fmt.Fprintf(c.out, "> %s\n%s\n", line, res.Message)
		}
		if !res.Handled {
			c.log.Warn("console line not handled", "line", lineNo, "input", line)
			if strict {
				return fmt.Errorf("line %d %q: %w", lineNo, line, ErrUnhandled)
			}
		}
		if res.Quit {
			return nil
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	return nil
}
