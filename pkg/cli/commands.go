package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/khalid-nowaf/wordtrie/pkg/trie"
)

type OutputFlags struct {
	Format string `help:"Output format: text, csv, tsv or json"`
	Output string `short:"o" help:"Write the result to this file instead of stdout"`
}

type ListCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Word files: .txt (one word per line), .csv, .tsv or .json"`
	OutputFlags `embed:""`
}

// Run executes the list command.
func (cmd *ListCmd) Run(ctx *Context) error {
	if err := loadWords(ctx, cmd.Files); err != nil {
		return err
	}
	return writeWords(ctx, cmd.OutputFlags, ctx.dict.List())
}

type CompleteCmd struct {
	Prefix string   `short:"p" help:"Prefix to complete, empty lists every word"`
	Files  []string `arg:"" type:"existingfile" help:"Word files: .txt (one word per line), .csv, .tsv or .json"`
	OutputFlags `embed:""`
}

// Run executes the complete command. A prefix that leads nowhere is reported, not
// treated as an error.
func (cmd *CompleteCmd) Run(ctx *Context) error {
	if err := loadWords(ctx, cmd.Files); err != nil {
		return err
	}
	words, ok, err := ctx.dict.Complete(cmd.Prefix)
	if err != nil {
		return err
	}
	if !ok {
		_, err := fmt.Fprintf(ctx.stdout, "no such prefix: %q\n", cmd.Prefix)
		return err
	}
	return writeWords(ctx, cmd.OutputFlags, words)
}

type ExistsCmd struct {
	Word  string   `arg:"" help:"Word to look up"`
	Files []string `arg:"" type:"existingfile" help:"Word files: .txt (one word per line), .csv, .tsv or .json"`
}

// Run executes the exists command.
func (cmd *ExistsCmd) Run(ctx *Context) error {
	if err := loadWords(ctx, cmd.Files); err != nil {
		return err
	}
	_, err := fmt.Fprintln(ctx.stdout, ctx.dict.Exists(cmd.Word))
	return err
}

type RemoveCmd struct {
	Words []string `name:"word" short:"w" required:"" help:"Word to remove, can be repeated"`
	Files []string `arg:"" type:"existingfile" help:"Word files: .txt (one word per line), .csv, .tsv or .json"`
	OutputFlags `embed:""`
}

// Run executes the remove command.
func (cmd *RemoveCmd) Run(ctx *Context) error {
	if err := loadWords(ctx, cmd.Files); err != nil {
		return err
	}
	for _, word := range cmd.Words {
		result, err := ctx.dict.Delete(word)
		if err != nil {
			return err
		}
		ctx.logger.Info().Msg(result.String())
	}
	return writeWords(ctx, cmd.OutputFlags, ctx.dict.List())
}

// loadWords parses every file into the dictionary. Invalid words are logged and
// skipped, running out of nodes stops the load.
func loadWords(ctx *Context, files []string) error {
	for _, file := range files {
		loaded, skipped := 0, 0
		err := parseWords(file, ctx.config.WordKey, func(word string) error {
			result, err := ctx.dict.Insert(word)
			if errors.Is(err, trie.ErrAllocation) {
				return err
			}
			if err != nil {
				skipped++
				return nil
			}
			if result.Changed {
				loaded++
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("loading %s: %w", file, err)
		}
		ctx.logger.Info().
			Str("file", file).
			Int("loaded", loaded).
			Int("skipped", skipped).
			Int("nodes", ctx.dict.NodeCount()).
			Msg("words loaded")
	}
	return nil
}

func writeWords(ctx *Context, flags OutputFlags, words trie.WordSet) error {
	format := flags.Format
	if format == "" {
		format = ctx.config.Format
	}

	var out io.Writer = ctx.stdout
	if flags.Output != "" {
		file, err := os.Create(flags.Output)
		if err != nil {
			return err
		}
		defer file.Close()
		out = file
	}

	writer, err := NewWriter(format, out, ctx.config.WordKey)
	if err != nil {
		return err
	}
	if err := writer.Write(words); err != nil {
		return err
	}
	ctx.logger.Debug().Int("words", words.Len()).Str("format", format).Msg("words written")
	return nil
}
