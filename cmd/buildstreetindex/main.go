// Command buildstreetindex reads a CSV of German street names and writes a
// binary FST set usable by internal/streetindex at runtime. It is the
// offline build tool named in the external-interfaces contract: the FST it
// produces is injected as an opaque blob, never linked into the runtime
// binary.
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/blevesearch/vellum"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: buildstreetindex <input.csv> <output.fst>")
		os.Exit(1)
	}
	inputPath, outputPath := os.Args[1], os.Args[2]

	if err := run(inputPath, outputPath); err != nil {
		fmt.Fprintln(os.Stderr, "buildstreetindex:", err)
		os.Exit(1)
	}
}

func run(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("opening input CSV: %w", err)
	}
	defer in.Close()

	names, err := readStreetNames(in)
	if err != nil {
		return err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer out.Close()

	builder, err := vellum.New(out, nil)
	if err != nil {
		return fmt.Errorf("creating FST builder: %w", err)
	}
	for i, name := range names {
		if err := builder.Insert([]byte(name), uint64(i)); err != nil {
			return fmt.Errorf("inserting %q: %w", name, err)
		}
		if (i+1)%100000 == 0 {
			fmt.Fprintf(os.Stderr, "processed %d records\n", i+1)
		}
	}
	if err := builder.Close(); err != nil {
		return fmt.Errorf("finalizing FST: %w", err)
	}

	fmt.Fprintf(os.Stderr, "wrote %d street names to %s\n", len(names), outputPath)
	return nil
}

// readStreetNames reads the header-ignored "Name" column, normalizes each
// entry (lowercase, quote-trim, whitespace-trim), discards empties,
// deduplicates, and returns them lexicographically sorted — the order the
// FST builder requires.
func readStreetNames(r io.Reader) ([]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	seen := map[string]struct{}{}
	var first = true
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		if first {
			first = false
			continue
		}
		if len(record) == 0 {
			continue
		}
		name := normalizeStreetName(record[0])
		if name == "" {
			continue
		}
		seen[name] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func normalizeStreetName(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}
