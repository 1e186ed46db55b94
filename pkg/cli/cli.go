package cli

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/wordtrie/pkg/dictionary"
	"github.com/rs/zerolog"
)

// Context is handed to every command's Run method.
type Context struct {
	dict   *dictionary.Dictionary
	config *Config
	logger zerolog.Logger
	stdin  io.Reader
	stdout io.Writer
}

// CLI is the root of the command line. Global flags left empty fall back to the
// config file, then to the defaults of LoadConfig.
type CLI struct {
	Config    string `help:"YAML config file"`
	LogLevel  string `help:"Log level: debug, info, warn or error"`
	Lowercase bool   `help:"Fold ASCII upper case letters to lower case before storing words"`
	MaxNodes  int    `help:"Maximum number of trie nodes, 0 for no limit" default:"-1"`
	WordKey   string `help:"Column or key holding the word in CSV, TSV and JSON files"`

	List     ListCmd     `cmd:"" help:"List every word in alphabetical order"`
	Complete CompleteCmd `cmd:"" help:"List the words starting with a prefix"`
	Exists   ExistsCmd   `cmd:"" help:"Check whether a word is stored"`
	Remove   RemoveCmd   `cmd:"" help:"Remove words, then list the remaining ones"`
	Shell    ShellCmd    `cmd:"" help:"Interactive prompt with tab completion"`
}

// Execute parses args and runs the selected command.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var root CLI
	parser, err := kong.New(&root,
		kong.Name("wordtrie"),
		kong.Description("Sorted word listing and autocomplete over a trie of lowercase words."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	appCtx, err := root.newContext(stdin, stdout, stderr)
	if err != nil {
		return err
	}
	return ctx.Run(appCtx)
}

func (c *CLI) newContext(stdin io.Reader, stdout, stderr io.Writer) (*Context, error) {
	cfg, err := LoadConfig(c.Config)
	if err != nil {
		return nil, err
	}
	if c.LogLevel != "" {
		cfg.LogLevel = c.LogLevel
	}
	if c.Lowercase {
		cfg.Lowercase = true
	}
	if c.MaxNodes >= 0 {
		cfg.MaxNodes = c.MaxNodes
	}
	if c.WordKey != "" {
		cfg.WordKey = c.WordKey
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	logger := newLogger(stderr, level)

	return &Context{
		dict: dictionary.NewDictionary(
			dictionary.WithLogger(logger),
			dictionary.WithLowercase(cfg.Lowercase),
			dictionary.WithMaxNodes(cfg.MaxNodes),
		),
		config: cfg,
		logger: logger,
		stdin:  stdin,
		stdout: stdout,
	}, nil
}

func newLogger(out io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: out, NoColor: true}
	if f, ok := out.(*os.File); ok && f == os.Stderr {
		console.NoColor = false
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}
