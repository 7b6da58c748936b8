package client

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

const shellPrompt = "marketplace> "

// shell runs commands read line by line from the app input until EOF,
// "exit" or "quit". A failing command is reported and the loop continues.
func (a *App) shell(ctx context.Context, _ []string) error {
	scanner := bufio.NewScanner(a.in)
	fmt.Fprint(a.out, shellPrompt)

	for scanner.Scan() {
		fields, err := splitCommandLine(scanner.Text())
		switch {
		case err != nil:
			fmt.Fprintln(a.out, "error:", err)
		case len(fields) == 0:
		case fields[0] == "exit" || fields[0] == "quit":
			return nil
		case fields[0] == "shell":
			fmt.Fprintln(a.out, "error: already in shell")
		case fields[0] == "help":
			fs, _ := a.newGlobalFlagSet()
			a.printUsage(fs)
		default:
			if err = a.dispatch(ctx, fields[0], fields[1:]); err != nil {
				fmt.Fprintln(a.out, "error:", FormatError(err))
			}
		}

		if err = ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(a.out, shellPrompt)
	}

	return scanner.Err()
}

// splitCommandLine splits line on whitespace. Single or double quotes group
// words into one argument.
func splitCommandLine(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		quote   rune
		inWord  bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case r == '"' || r == '\'':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				args = append(args, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, fmt.Errorf("unterminated quote %q", quote)
	}
	if inWord {
		args = append(args, current.String())
	}
	return args, nil
}
