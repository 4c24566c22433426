package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hn2v/graph"
)

// Read parses the edge-list format from r, returning the raw edges ready
// for graph.Build plus any label:type tags discovered on either endpoint.
// Blank lines and lines beginning with '#' are skipped.
func Read(r io.Reader) ([]graph.RawEdge, map[string]string, error) {
	var edges []graph.RawEdge
	types := make(map[string]string)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("edgelist: line %d: %w", lineNo, ErrMalformedRow)
		}

		from, fromType := splitTag(strings.TrimSpace(fields[0]))
		to, toType := splitTag(strings.TrimSpace(fields[1]))
		if fromType != "" {
			types[from] = fromType
		}
		if toType != "" {
			types[to] = toType
		}

		var weight float64
		if len(fields) >= 3 && strings.TrimSpace(fields[2]) != "" {
			w, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("edgelist: line %d: %w", lineNo, ErrBadWeight)
			}
			weight = w
		}

		edges = append(edges, graph.RawEdge{From: from, To: to, Weight: weight})
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("edgelist: %w", err)
	}

	return edges, types, nil
}

// ReadFile opens path and delegates to Read.
func ReadFile(path string) ([]graph.RawEdge, map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// TypeFunc adapts the types map discovered by Read into the type_of
// function graph.WithTypeFunc expects. Labels absent from types map to the
// empty tag, matching graph's "no meaningful type" convention.
func TypeFunc(types map[string]string) func(label string) string {
	return func(label string) string { return types[label] }
}

func splitTag(field string) (label, typeTag string) {
	label, typeTag, found := strings.Cut(field, ":")
	if !found {
		return field, ""
	}
	return label, typeTag
}
