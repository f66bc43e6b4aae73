package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/karupanerura/configlang/internal/interpreter"
	"github.com/karupanerura/configlang/internal/server"
	"github.com/karupanerura/configlang/internal/types"
	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"
)

type Option struct {
	Files     []string `short:"f" long:"file" description:"[OPTIONAL] Source file, may be repeated (default: stdin)" required:"false"`
	Constants []string `short:"c" long:"const" description:"[OPTIONAL] Predefined constant as name=value, may be repeated" required:"false"`
	Format    string   `long:"format" description:"[OPTIONAL] Output format" choice:"json" choice:"yaml" default:"json"`
	Listen    string   `short:"l" long:"listen" description:"[OPTIONAL] Listen host and port to serve the evaluation API" required:"false"`
	Debug     bool     `long:"debug" description:"[OPTIONAL] Trace line classification and evaluation"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opt Option
	parser := flags.NewParser(&opt, flags.HelpFlag|flags.PassDoubleDash)
	_, err := parser.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			parser.WriteHelp(stdout)
			return 0
		} else {
			printError(stderr, err)
			parser.WriteHelp(stderr)
			return 1
		}
	}
	if opt.Listen != "" && len(opt.Files) != 0 {
		printError(stderr, errors.New("--listen cannot be combined with --file"))
		parser.WriteHelp(stderr)
		return 1
	}

	predefined, err := parsePredefinedConstants(opt.Constants)
	if err != nil {
		printError(stderr, err)
		return 1
	}

	// server mode
	if opt.Listen != "" {
		if err := serve(opt.Listen, server.NewHTTPHandler(predefined, opt.Debug)); err != nil {
			log.Printf("failed to serve: %v", err)
			return 1
		}
		return 0
	}

	var results []types.Result
	if len(opt.Files) == 0 {
		in := interpreter.NewWithPredefined(predefined)
		in.Debug = opt.Debug
		ret, err := in.ParseReader(stdin)
		if err != nil {
			printError(stderr, err)
			return 1
		}
		results = append(results, ret)
	} else {
		results, err = parseFiles(opt.Files, predefined, opt.Debug)
		if err != nil {
			printError(stderr, err)
			return 1
		}
	}

	dump := dumpJSON
	if opt.Format == "yaml" {
		dump = dumpYAML
	}
	for _, ret := range results {
		if err := dump(stdout, ret.Value()); err != nil {
			log.Printf("failed to dump result: %v", err)
			return 1
		}
	}
	return 0
}

func parsePredefinedConstants(defs []string) (*types.ConstantTable, error) {
	ct := types.NewConstantTable()
	for _, def := range defs {
		name, valueText, ok := strings.Cut(def, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --const %q: expected name=value", def)
		}
		name = strings.TrimSpace(name)
		if !interpreter.IsValidConstantName(name) {
			return nil, fmt.Errorf("invalid --const %q: constant names are made of [a-z_]", def)
		}
		value, err := strconv.ParseInt(strings.TrimSpace(valueText), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --const %q: %w", def, err)
		}
		ct.Set(name, value)
	}
	return ct, nil
}

// parseFiles parses every file with its own interpreter, concurrently.
// Results keep the order of paths.
func parseFiles(paths []string, predefined *types.ConstantTable, debug bool) ([]types.Result, error) {
	results := make([]types.Result, len(paths))

	eg := errgroup.Group{}
	for i, path := range paths {
		i := i
		path := path
		eg.Go(func() error {
			ret, err := parseFile(path, predefined, debug)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = ret
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func parseFile(path string, predefined *types.ConstantTable, debug bool) (types.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return types.Result{}, fmt.Errorf("os.Open: %w", err)
	}
	defer f.Close()

	in := interpreter.NewWithPredefined(predefined)
	in.Debug = debug
	return in.ParseReader(f)
}

func serve(listen string, handler http.Handler) error {
	srv := http.Server{
		Handler: handler,
		Addr:    listen,
	}

	log.Printf("Listen HTTP on %s", listen)
	if err := srv.ListenAndServe(); errors.Is(err, http.ErrServerClosed) {
		return nil
	} else if err != nil {
		return err
	}
	return nil
}

func printError(w io.Writer, err error) {
	prefix := "Error:"
	if isTerminal(w) {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		prefix = c.Sprint(prefix)
	}
	if _, werr := fmt.Fprintf(w, "%s %v\n", prefix, err); werr != nil {
		log.Printf("failed to write error: %v (%v)", werr, err)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	return ok && isatty.IsTerminal(f.Fd())
}

func dumpJSON(w io.Writer, v any) error {
	opts := []json.EncodeOptionFunc{json.DisableHTMLEscape()}
	if isTerminal(w) {
		opts = append(opts, json.Colorize(json.DefaultColorScheme))
	}

	b, err := json.MarshalIndentWithOption(v, "", "    ", opts...)
	if err != nil {
		return fmt.Errorf("json.MarshalIndentWithOption: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	if _, err = io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("io.WriteString: %w", err)
	}
	return nil
}

func dumpYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml.Marshal: %w", err)
	}

	if _, err = w.Write(b); err != nil {
		return fmt.Errorf("w.Write: %w", err)
	}
	return nil
}
