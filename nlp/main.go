package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/oarkflow/summarise/nlp/config"
	"github.com/oarkflow/summarise/nlp/engine"
	"github.com/oarkflow/summarise/nlp/export"
	"github.com/oarkflow/summarise/nlp/logging"
	"github.com/oarkflow/summarise/nlp/pipeline"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("reading .env: %v", err)
	}
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

// run scores a single document given by -text or -file, or a JSON Lines
// batch with -batch. Reports go to stdout as JSON, one per line.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("summarise", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML or JSON config file")
	title := fs.String("title", "", "document title")
	text := fs.String("text", "", "document text")
	file := fs.String("file", "", "read the document text from this file")
	batch := fs.String("batch", "", "JSON Lines file of {id,title,text} documents, - for stdin")
	rankCutoff := fs.Int("rank-cutoff", 0, "rank cutoff for the position feature (0 keeps the configured one)")
	summary := fs.Bool("summary", false, "also select summary sentences")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *rankCutoff != 0 {
		cfg.RankCutoff = *rankCutoff
	}
	logger, closer, err := logging.New(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer closer.Close()
	e, err := engine.New(cfg, logger)
	if err != nil {
		return err
	}

	if *batch != "" {
		in := stdin
		if *batch != "-" {
			f, err := os.Open(*batch)
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		var runner pipeline.Runner = e
		if *summary {
			runner = summarizing{e}
		}
		_, err := pipeline.Run(ctx, in, stdout, runner, cfg.Workers, logger)
		return err
	}

	body := *text
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return err
		}
		body = string(data)
	}
	rep, err := e.Run(ctx, engine.Request{Title: *title, Text: body, Summary: *summary})
	if err != nil {
		return err
	}
	return export.Write(stdout, rep)
}

// summarizing turns on summary selection for every batch document.
type summarizing struct{ e *engine.Engine }

func (s summarizing) Run(ctx context.Context, req engine.Request) (*export.Report, error) {
	req.Summary = true
	return s.e.Run(ctx, req)
}
