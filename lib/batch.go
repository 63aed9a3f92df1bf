package lib

import (
	"bufio"
	"io"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Result is the outcome of one line of a batch. Exactly one of Value and
// Err is meaningful.
type Result struct {
	Line    int
	Input   string
	Postfix Expression
	Value   int64
	Err     error
}

type Batch struct {
	Name    string
	Results []Result
}

// Failed counts the results that carry an error.
func (b Batch) Failed() int {
	n := 0
	for _, r := range b.Results {
		if r.Err != nil {
			n++
		}
	}
	return n
}

// EvaluateLines evaluates every non-blank line of r that does not start with
// '#'. Evaluation failures are kept on the Result; only read failures are
// returned.
func EvaluateLines(name string, r io.Reader) (Batch, error) {
	batch := Batch{Name: name, Results: []Result{}}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		batch.Results = append(batch.Results, evaluateLine(lineNo, line))
	}
	if err := scanner.Err(); err != nil {
		return Batch{}, errors.Wrapf(err, "reading batch %s", name)
	}

	return batch, nil
}

func evaluateLine(lineNo int, input string) Result {
	res := Result{Line: lineNo, Input: input}

	postfix, err := Compile(input)
	if err != nil {
		res.Err = err
		return res
	}
	res.Postfix = postfix

	res.Value, res.Err = EvalPostfix(postfix)
	return res
}

func ReadBatchFromFile(filePath string) (Batch, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return Batch{}, errors.Wrap(err, "opening batch")
	}
	defer f.Close()

	return EvaluateLines(batchNameFromPath(filePath), f)
}

// ReadBatchesFromDir evaluates every file in dir in name order.
func ReadBatchesFromDir(dir string) ([]Batch, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "reading batch dir")
	}

	batches := []Batch{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		b, err := ReadBatchFromFile(path.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, nil
}

func batchNameFromPath(filePath string) string {
	_, fileName := path.Split(filePath)
	parts := strings.Split(fileName, ".")
	return parts[0]
}
