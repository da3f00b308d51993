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
	Index string `long:"index" description:"Index file to load" value-name:"PATH" default:"index.bin"`
	Query string `long:"query" description:"Run a single query and exit" value-name:"QUERY"`
	Batch bool   `long:"batch" description:"Batch mode: read one query per stdin line"`
	Limit int    `long:"limit" description:"Maximum number of results to print" value-name:"N" default:"50"`
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

	idx, err := corpusdex.Load(opts.Index)
	if err != nil {
		logger.Error("cannot load index", slog.String("path", opts.Index), slog.Any("err", err))
		os.Exit(1)
	}
	if idx.NumDocs() == 0 {
		logger.Error("index is empty or failed to load")
		os.Exit(1)
	}

	eval := corpusdex.NewEvaluator(idx)

	switch {
	case opts.Query != "":
		fmt.Printf("query: %s\n", opts.Query)
		fmt.Println("----------------------------------------")
		runQuery(eval, idx, opts.Query, opts.Limit)

	case opts.Batch:
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			fmt.Printf("Q: %s\n", line)
			start := time.Now()
			results := eval.Search(line)
			elapsed := time.Since(start)
			fmt.Printf("R: %d documents (%s)\n", len(results), elapsed)
			printTitles(idx, results, opts.Limit)
			fmt.Println("---")
		}

	default:
		runREPL(eval, idx, opts.Limit)
	}
}

func runQuery(eval *corpusdex.Evaluator, idx *corpusdex.Index, query string, limit int) {
	start := time.Now()
	results := eval.Search(query)
	elapsed := time.Since(start)

	printResults(idx, results, limit)
	fmt.Printf("search time: %s\n", elapsed)
}

func printResults(idx *corpusdex.Index, results []uint32, limit int) {
	fmt.Printf("found: %d documents\n", len(results))

	count := 0
	for _, docID := range results {
		if count >= limit {
			fmt.Printf("and %d more\n", len(results)-limit)
			break
		}
		doc := idx.Document(docID)
		fmt.Printf("%d. %s\n", count+1, doc.Title)
		fmt.Printf("   %s\n", doc.URL)
		if doc.Category != "" {
			fmt.Printf("   [%s]\n", doc.Category)
		}
		fmt.Println()
		count++
	}
}

func printTitles(idx *corpusdex.Index, results []uint32, limit int) {
	count := 0
	for _, docID := range results {
		if count >= limit {
			break
		}
		doc := idx.Document(docID)
		fmt.Printf("   - %s\n", doc.Title)
		count++
	}
}

func runREPL(eval *corpusdex.Evaluator, idx *corpusdex.Index, limit int) {
	fmt.Println("========================================")
	fmt.Println("          search engine")
	fmt.Println("========================================")
	fmt.Printf("documents in index: %d\n", idx.NumDocs())
	fmt.Printf("terms:              %d\n", idx.NumTerms())
	fmt.Println()
	fmt.Println("enter a query (or 'quit' to exit):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "quit" || line == "exit" || line == "q" {
			break
		}
		if line == "" {
			continue
		}

		start := time.Now()
		results := eval.Search(line)
		elapsed := time.Since(start)

		printResults(idx, results, limit)
		fmt.Printf("time: %s\n", elapsed)
		fmt.Println()
	}
}
