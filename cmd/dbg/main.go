// Command dbg prints YAML or JSON documents with the dbg formatter.
//
// Usage:
//
//	dbg [-config file] [-v] [file ...]
//
// With no files, documents are read from standard input. Mapping order is
// preserved. Each document is printed as one record labelled with its source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/dbg"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := run(os.Args[1:], os.Stdin, os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Error().Err(err).Msg("dbg failed")
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer, log zerolog.Logger) error {
	fs := flag.NewFlagSet("dbg", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	configPath := fs.String("config", "", "YAML `file` with printer settings")
	verbose := fs.Bool("v", false, "log each document")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log = log.Level(zerolog.InfoLevel)
	if *verbose {
		log = log.Level(zerolog.DebugLevel)
	}

	cfg := dbg.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = dbg.LoadConfig(*configPath); err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}
	// Call-site tags would point into this command.
	cfg.Tag = dbg.TagNone
	p := dbg.NewPrinter(stdout, cfg)

	if fs.NArg() == 0 {
		return printDocuments(p, "stdin", stdin, log)
	}
	for _, path := range fs.Args() {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		err = printDocuments(p, filepath.Base(path), f, log)
		_ = f.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

// printDocuments prints every document in r. Documents after the first are
// labelled name#N and preceded by a separator.
func printDocuments(p *dbg.Printer, name string, r io.Reader, log zerolog.Logger) error {
	dec := yaml.NewDecoder(r)
	for i := 0; ; i++ {
		var node yaml.Node
		if err := dec.Decode(&node); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("%s: %w", name, err)
		}
		v, err := fromNode(&node)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		label := name
		if i > 0 {
			label += "#" + strconv.Itoa(i)
			p.Sep()
		}
		log.Debug().Str("source", name).Int("document", i).Msg("printing document")
		p.Fields(dbg.Field{Name: label, Value: v})
	}
}

// fromNode converts a YAML node into values the formatter lays out:
// mappings become insertion-ordered maps and sequences become slices.
func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]any, len(n.Content))
		for i, c := range n.Content {
			v, err := fromNode(c)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		return items, nil
	case yaml.MappingNode:
		m := linkedhashmap.New()
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := fromNode(n.Content[i])
			if err != nil {
				return nil, err
			}
			if n.Content[i].Kind != yaml.ScalarNode {
				k = dbg.Sprint(k)
			}
			v, err := fromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			m.Put(k, v)
		}
		return m, nil
	default:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, err
		}
		return v, nil
	}
}
