package classifier

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
)

// TrainFromCSV runs the single-fit offline training procedure over a
// labeled corpus with text and label columns. Column order is taken from
// the header row.
func TrainFromCSV(path string, opts TrainingOptions) (*Vectorizer, *LogisticModel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open training data: %w", err)
	}
	defer f.Close()

	texts, labels, err := readCorpus(f)
	if err != nil {
		return nil, nil, err
	}
	if len(texts) == 0 {
		return nil, nil, fmt.Errorf("training data %s contains no rows", path)
	}

	return Train(texts, labels, opts)
}

// Train fits the vectorizer and the classifier over an in-memory corpus
func Train(texts, labels []string, opts TrainingOptions) (*Vectorizer, *LogisticModel, error) {
	vectorizer := FitVectorizer(texts)

	features := make([]map[int]float64, len(texts))
	for i, t := range texts {
		features[i] = vectorizer.Transform(t)
	}

	model, err := TrainLogistic(features, labels, vectorizer.Dim(), opts)
	if err != nil {
		return nil, nil, err
	}

	return vectorizer, model, nil
}

func readCorpus(r io.Reader) ([]string, []string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read corpus header: %w", err)
	}

	textIdx, labelIdx := -1, -1
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "text", "body", "subject":
			if textIdx == -1 {
				textIdx = i
			}
		case "label", "class":
			labelIdx = i
		}
	}
	if textIdx == -1 || labelIdx == -1 {
		return nil, nil, fmt.Errorf("corpus header must contain text and label columns, got %v", header)
	}

	var texts, labels []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}
		if len(record) <= textIdx || len(record) <= labelIdx {
			continue
		}
		label := strings.ToLower(strings.TrimSpace(record[labelIdx]))
		if label == "" {
			continue
		}
		texts = append(texts, record[textIdx])
		labels = append(labels, label)
	}

	return texts, labels, nil
}
