// Package corpus loads line-per-sentence evaluation corpora and assembles
// the parallel reference/hypothesis structure the scorers consume.
package corpus

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"golang.org/x/exp/mmap"
	"k8s.io/klog/v2"

	"github.com/cidrugHug8/bleunet/tokenizers/api"
)

// maxLineBytes bounds a single corpus line. A longer line fails the load
// instead of being silently split into two sentences.
const maxLineBytes = 4 * 1024 * 1024

// Parallel is a loaded evaluation corpus. References is grouped per
// sentence: References[i] holds every reference translation of
// Hypotheses[i], in reference-file order.
type Parallel struct {
	Hypotheses [][]string
	References [][][]string
}

// ReadSentences loads one corpus file, one sentence per line, tokenizing
// each line with tok. Files ending in .gz are decompressed on the fly;
// plain files are read through a memory map. Blank lines become empty
// sentences rather than being dropped, so line numbers keep lining up
// across the files of a parallel corpus.
func ReadSentences(path string, tok api.Tokenizer) ([][]string, error) {
	if strings.HasSuffix(path, ".gz") {
		return readGzip(path, tok)
	}
	return readPlain(path, tok)
}

func readPlain(path string, tok api.Tokenizer) ([][]string, error) {
	reader, err := mmap.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open corpus file %s", path)
	}
	defer reader.Close()

	sentences, err := scan(io.NewSectionReader(reader, 0, int64(reader.Len())), tok)
	if err != nil {
		return nil, errors.WithMessagef(err, "corpus file %s", path)
	}
	klog.V(2).Infof("Read %d sentences from %s", len(sentences), path)
	return sentences, nil
}

func readGzip(path string, tok api.Tokenizer) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open corpus file %s", path)
	}
	defer file.Close()

	zip, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decompress corpus file %s", path)
	}
	defer zip.Close()

	sentences, err := scan(zip, tok)
	if err != nil {
		return nil, errors.WithMessagef(err, "corpus file %s", path)
	}
	klog.V(2).Infof("Read %d sentences from %s (gzip)", len(sentences), path)
	return sentences, nil
}

func scan(r io.Reader, tok api.Tokenizer) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var sentences [][]string
	for scanner.Scan() {
		sentences = append(sentences, tok.Tokenize(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read line %d", len(sentences)+1)
	}
	return sentences, nil
}

// ReadParallel loads the hypothesis file and one file per reference
// translation, checks that every file has the same number of lines, and
// regroups the references per sentence.
func ReadParallel(hypothesisPath string, referencePaths []string, tok api.Tokenizer) (*Parallel, error) {
	if len(referencePaths) == 0 {
		return nil, errors.New("at least one reference file is required")
	}
	hypotheses, err := ReadSentences(hypothesisPath, tok)
	if err != nil {
		return nil, err
	}

	references := make([][][]string, len(hypotheses))
	for i := range references {
		references[i] = make([][]string, 0, len(referencePaths))
	}
	for _, referencePath := range referencePaths {
		sentences, err := ReadSentences(referencePath, tok)
		if err != nil {
			return nil, err
		}
		if len(sentences) != len(hypotheses) {
			return nil, errors.Errorf("reference file %s has %d sentences, hypothesis file %s has %d",
				referencePath, len(sentences), hypothesisPath, len(hypotheses))
		}
		for i, sentence := range sentences {
			references[i] = append(references[i], sentence)
		}
	}
	klog.V(1).Infof("Loaded parallel corpus: %d sentences, %d references each",
		len(hypotheses), len(referencePaths))
	return &Parallel{Hypotheses: hypotheses, References: references}, nil
}
