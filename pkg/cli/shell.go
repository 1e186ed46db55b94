package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/khalid-nowaf/wordtrie/pkg/dictionary"
	"golang.org/x/term"
)

type ShellCmd struct {
	Files  []string `arg:"" optional:"" type:"existingfile" help:"Word files to load before the prompt starts"`
	Prompt string   `default:"> " help:"Prompt string"`
}

// Run executes the shell command. When stdin is a terminal it is put in raw mode so
// the Tab key can be handled.
func (cmd *ShellCmd) Run(ctx *Context) error {
	if err := loadWords(ctx, cmd.Files); err != nil {
		return err
	}

	if f, ok := ctx.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("failed to set raw mode: %w", err)
		}
		defer term.Restore(fd, oldState)
	}

	return newShell(ctx.dict, ctx.stdin, ctx.stdout, cmd.Prompt).run()
}

var errQuit = errors.New("quit")

const shellHelp = "commands: add WORD..., del WORD..., has WORD, ls [PREFIX], help, quit"

type shell struct {
	dict   *dictionary.Dictionary
	in     *bufio.Reader
	out    io.Writer
	prompt string
}

func newShell(dict *dictionary.Dictionary, in io.Reader, out io.Writer, prompt string) *shell {
	return &shell{dict: dict, in: bufio.NewReader(in), out: out, prompt: prompt}
}

func (s *shell) run() error {
	for {
		line, err := s.readLine()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := s.execute(line); errors.Is(err, errQuit) {
			return nil
		}
	}
}

// readLine edits one line. Output uses "\r\n" because a raw terminal does not
// translate line feeds.
func (s *shell) readLine() (string, error) {
	var input strings.Builder
	fmt.Fprint(s.out, s.prompt)

	for {
		char, err := s.in.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && input.Len() > 0 {
				fmt.Fprint(s.out, "\r\n")
				return input.String(), nil
			}
			return "", err
		}

		switch char {
		case '\n', '\r': // Enter key
			fmt.Fprint(s.out, "\r\n")
			return input.String(), nil

		case 127, 8: // Backspace
			if input.Len() > 0 {
				curr := input.String()
				input.Reset()
				input.WriteString(curr[:len(curr)-1])
				fmt.Fprint(s.out, "\b \b")
			}

		case 3, 4: // Ctrl+C, Ctrl+D
			fmt.Fprint(s.out, "\r\n")
			return "", io.EOF

		case 9: // Tab key
			curr := s.complete(input.String())
			input.Reset()
			input.WriteString(curr)

		case 27: // Escape sequence (e.g. arrow keys), ignored
			var seq [2]byte
			if _, err := io.ReadFull(s.in, seq[:]); err != nil {
				return "", err
			}

		default:
			// Printable ASCII characters
			if char >= 32 && char < 127 {
				input.WriteByte(char)
				fmt.Fprintf(s.out, "%c", char)
			}
		}
	}
}

// complete expands the last token of line and returns the new line.
// A single completion is filled in followed by a space. Several completions are
// extended to their common prefix, or listed when there is nothing to extend.
func (s *shell) complete(line string) string {
	start := strings.LastIndexByte(line, ' ') + 1
	token := line[start:]
	if token == "" {
		return line
	}

	completions, ok, err := s.dict.Complete(token)
	if err != nil || !ok || len(completions) == 0 {
		fmt.Fprint(s.out, "\a")
		return line
	}

	if len(completions) == 1 {
		toAdd := completions[0][len(token):] + " "
		fmt.Fprint(s.out, toAdd)
		return line + toAdd
	}

	if common := commonPrefix(completions); len(common) > len(token) {
		toAdd := common[len(token):]
		fmt.Fprint(s.out, toAdd)
		return line + toAdd
	}

	fmt.Fprint(s.out, "\r\n"+strings.Join(completions, "  ")+"\r\n")
	fmt.Fprint(s.out, s.prompt, line)
	return line
}

func (s *shell) execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	command, args := fields[0], fields[1:]
	switch command {
	case "quit", "exit":
		return errQuit
	case "help":
		s.println(shellHelp)
	case "add":
		for _, word := range args {
			result, _ := s.dict.Insert(word)
			s.println(result.String())
		}
	case "del":
		for _, word := range args {
			result, _ := s.dict.Delete(word)
			s.println(result.String())
		}
	case "has":
		if len(args) != 1 {
			s.println("usage: has WORD")
			return nil
		}
		s.println(fmt.Sprint(s.dict.Exists(args[0])))
	case "ls":
		prefix := ""
		if len(args) > 0 {
			prefix = args[0]
		}
		words, ok, err := s.dict.Complete(prefix)
		switch {
		case err != nil:
			s.println(err.Error())
		case !ok:
			s.println(fmt.Sprintf("no such prefix: %q", prefix))
		default:
			for _, word := range words {
				s.println(word)
			}
		}
	default:
		s.println(fmt.Sprintf("unknown command %q, %s", command, shellHelp))
	}
	return nil
}

func (s *shell) println(line string) {
	fmt.Fprint(s.out, line+"\r\n")
}

func commonPrefix(words []string) string {
	prefix := words[0]
	for _, word := range words[1:] {
		for !strings.HasPrefix(word, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}
	return prefix
}
