package matching

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/lintang-b-s/bipartite-matching/pkg/datastructure"
)

// WriteSolution writes the matching size followed by one "<v1Index> <v2LocalIndex>" line
// per matched edge, sorted by v1Index.
func WriteSolution(filename string, v1 int, m *Matching) error {
	return writeFile(filename, func(w io.Writer) error {
		return EncodeSolution(w, v1, m)
	})
}

// writeFile removes filename again when encode, sync or close fails, so a failed write
// leaves no partial file behind.
func writeFile(filename string, encode func(w io.Writer) error) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(filename)
		}
	}()

	if err = encode(f); err != nil {
		return err
	}
	return f.Sync()
}

func EncodeSolution(w io.Writer, v1 int, m *Matching) error {
	bw := bufio.NewWriter(w)

	_, err := bw.WriteString(fmt.Sprintf("%d\n", m.Size()))
	if err != nil {
		return err
	}

	for _, e := range m.Edges() {
		_, err := bw.WriteString(fmt.Sprintf("%d %d\n", e.GetFrom(), e.GetTo()-datastructure.Index(v1)))
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadSolutionSize parses the first line of a solution file.
func ReadSolutionSize(filename string) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return 0, fmt.Errorf("reading solution size from %s: %w", filename, err)
	}

	size, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("solution size in %s: %w", filename, datastructure.ErrMalformedInput)
	}
	return size, nil
}
