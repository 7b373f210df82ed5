package datastructure

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/lintang-b-s/bipartite-matching/pkg"
)

func fields(s string) []string {
	return strings.Fields(s)
}

func parseCount(s string) (int, error) {
	c, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, ErrMalformedInput)
	}
	return c, nil
}

func parseVertexIndex(s string) (Index, error) {
	u, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a vertex index: %w", s, ErrMalformedInput)
	}
	if u < 0 || u > math.MaxUint32 {
		return 0, fmt.Errorf("vertex index %d: %w", u, ErrOutOfRange)
	}
	return Index(u), nil
}

// ReadBipartiteGraph loads a graph file. Files ending in .bz2 are decompressed on the fly.
func ReadBipartiteGraph(filename string) (*BipartiteGraph, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(filename, pkg.BZIP2_FILE_EXT) {
		bz, err := bzip2.NewReader(f, nil)
		if err != nil {
			return nil, err
		}
		defer bz.Close()
		r = bz
	}

	g, err := ParseBipartiteGraph(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return g, nil
}

// ParseBipartiteGraph reads
//
//	<v1> <v2>
//	<edgeCount>
//	<v1LocalIndex> <v2LocalIndex>   (edgeCount times)
//
// Lines after the declared edges are ignored.
func ParseBipartiteGraph(r io.Reader) (*BipartiteGraph, error) {
	br := bufio.NewReader(r)
	lineNumber := 0

	readLine := func() (string, error) {
		for {
			line, err := br.ReadString('\n')
			if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
				return "", err
			}
			lineNumber++
			line = strings.TrimSpace(line)
			if line != "" {
				return line, nil
			}
		}
	}

	line, err := readLine()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing partition sizes line: %w", ErrMalformedInput)
	} else if err != nil {
		return nil, err
	}
	tokens := fields(line)
	if len(tokens) != 2 {
		return nil, fmt.Errorf("line %d: expected 2 partition sizes, got %d fields: %w", lineNumber, len(tokens), ErrMalformedInput)
	}
	sizeOfV1, err := parseCount(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNumber, err)
	}
	sizeOfV2, err := parseCount(tokens[1])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNumber, err)
	}

	line, err = readLine()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("missing edge count line: %w", ErrMalformedInput)
	} else if err != nil {
		return nil, err
	}
	tokens = fields(line)
	if len(tokens) != 1 {
		return nil, fmt.Errorf("line %d: expected edge count, got %d fields: %w", lineNumber, len(tokens), ErrMalformedInput)
	}
	numEdges, err := parseCount(tokens[0])
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", lineNumber, err)
	}
	if numEdges < 0 {
		return nil, fmt.Errorf("line %d: negative edge count %d: %w", lineNumber, numEdges, ErrMalformedInput)
	}

	graph, err := NewBipartiteGraph(sizeOfV1, sizeOfV2)
	if err != nil {
		return nil, err
	}

	for i := 0; i < numEdges; i++ {
		line, err = readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		tokens = fields(line)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 vertex indices, got %d fields: %w", lineNumber, len(tokens), ErrMalformedInput)
		}
		start, err := parseVertexIndex(tokens[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		end, err := parseVertexIndex(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		if err := graph.AddEdge(start, end); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}

	if graph.NumberOfEdges() != numEdges {
		return nil, fmt.Errorf("declared %d edges, read %d: %w", numEdges, graph.NumberOfEdges(), ErrFormatInconsistency)
	}
	return graph, nil
}

// WriteBipartiteGraph writes g in the format read by ReadBipartiteGraph, bzip2 compressed
// when filename ends in .bz2.
func WriteBipartiteGraph(filename string, g *BipartiteGraph) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if !strings.HasSuffix(filename, pkg.BZIP2_FILE_EXT) {
		return EncodeBipartiteGraph(f, g)
	}

	bz, err := bzip2.NewWriter(f, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}
	if err := EncodeBipartiteGraph(bz, g); err != nil {
		bz.Close()
		return err
	}
	return bz.Close()
}

func EncodeBipartiteGraph(w io.Writer, g *BipartiteGraph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", g.NumberOfV1(), g.NumberOfV2())
	fmt.Fprintf(bw, "%d\n", g.NumberOfEdges())
	g.ForEachEdge(func(e Edge) {
		fmt.Fprintf(bw, "%d %d\n", e.GetFrom(), g.LocalV2(e.GetTo()))
	})

	return bw.Flush()
}
