package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mikey/phish-triage/internal/classifier"
	"github.com/mikey/phish-triage/internal/logging"
	"go.uber.org/zap"
)

var (
	dataPath       = flag.String("data", "", "Path to the labeled training CSV")
	vectorizerPath = flag.String("vectorizer", "./models/vectorizer.gob", "Output path for the vectorizer artifact")
	modelPath      = flag.String("model", "./models/classifier.gob", "Output path for the classifier artifact")
	epochs         = flag.Int("epochs", 0, "Training epochs (0 uses the default)")
	learningRate   = flag.Float64("lr", 0, "Learning rate (0 uses the default)")
	verbose        = flag.Bool("verbose", false, "Enable verbose logging")
	jsonLog        = flag.Bool("json-log", false, "Output logs in JSON format")
)

func main() {
	flag.Parse()

	logger, err := logging.InitConsoleLogger(*verbose, *jsonLog)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *dataPath == "" {
		logger.Fatal("Training data path is required (-data)")
	}

	opts := classifier.DefaultTrainingOptions()
	if *epochs > 0 {
		opts.Epochs = *epochs
	}
	if *learningRate > 0 {
		opts.LearningRate = *learningRate
	}

	logger.Info("Training subject classifier",
		zap.String("data", *dataPath),
		zap.Int("epochs", opts.Epochs),
		zap.Float64("learning_rate", opts.LearningRate))

	vectorizer, model, err := classifier.TrainFromCSV(*dataPath, opts)
	if err != nil {
		logger.Fatal("Training failed", zap.Error(err))
	}

	for _, path := range []string{*vectorizerPath, *modelPath} {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			logger.Fatal("Failed to create output directory", zap.Error(err), zap.String("path", path))
		}
	}

	if err := classifier.SaveVectorizer(*vectorizerPath, vectorizer); err != nil {
		logger.Fatal("Failed to save vectorizer", zap.Error(err))
	}
	if err := classifier.SaveModel(*modelPath, model); err != nil {
		logger.Fatal("Failed to save classifier", zap.Error(err))
	}

	logger.Info("Training artifacts written",
		zap.String("vectorizer", *vectorizerPath),
		zap.String("model", *modelPath),
		zap.Int("vocabulary_size", vectorizer.Dim()))

	fmt.Printf("Vocabulary size: %d\n", vectorizer.Dim())
	fmt.Printf("Vectorizer: %s\n", *vectorizerPath)
	fmt.Printf("Classifier: %s\n", *modelPath)
}
