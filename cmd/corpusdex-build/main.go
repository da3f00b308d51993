package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"time"

	flags "github.com/jessevdk/go-flags"

	"github.com/avkuznetsov/corpusdex"
)

type options struct {
	Input  string `long:"input" description:"Line-delimited input corpus" value-name:"PATH" default:"corpus.jsonl"`
	Output string `long:"output" description:"Output index file" value-name:"PATH" default:"index.bin"`
	Stats  bool   `long:"stats" description:"Print the top-20 most frequent terms after building"`
}

func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Usage = "[options]"
	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	in, err := os.Open(opts.Input)
	if err != nil {
		logger.Error("cannot open input corpus", slog.String("path", opts.Input), slog.Any("err", err))
		os.Exit(1)
	}
	defer in.Close()

	builder := corpusdex.NewBuilder()

	start := time.Now()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		builder.AddLine(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		logger.Error("error reading input corpus", slog.Any("err", err))
		os.Exit(1)
	}
	buildDuration := time.Since(start)

	idx := builder.Finalize()

	fmt.Printf("build time: %s\n", buildDuration)

	if opts.Stats {
		fmt.Println()
		fmt.Println("top 20 terms by document frequency:")
		freqs := idx.TermFrequencies()
		limit := 20
		if len(freqs) < limit {
			limit = len(freqs)
		}
		for i := 0; i < limit; i++ {
			fmt.Printf("  %2d. %s - %d documents\n", i+1, freqs[i].Term, freqs[i].Count)
		}
	}

	saveStart := time.Now()
	if err := idx.Save(opts.Output); err != nil {
		logger.Error("cannot save index", slog.String("path", opts.Output), slog.Any("err", err))
		os.Exit(1)
	}
	saveDuration := time.Since(saveStart)

	fmt.Printf("save time: %s\n", saveDuration)
	fmt.Println("========================================")
	fmt.Printf("documents: %d\n", idx.NumDocs())
	fmt.Printf("terms:     %d\n", idx.NumTerms())
	fmt.Println("========================================")
}
