package classifier

import (
	"fmt"
	"math"
	"sort"
)

// LogisticModel is a binary logistic-regression classifier over the
// TF-IDF feature space. Classes[1] is the positive class whose
// probability the sigmoid reports.
type LogisticModel struct {
	Weights []float64
	Bias    float64
	Classes [2]string
}

// TrainingOptions control the gradient-descent fit
type TrainingOptions struct {
	Epochs       int
	LearningRate float64
	L2           float64
}

// DefaultTrainingOptions returns the single-fit configuration used by the
// offline trainer
func DefaultTrainingOptions() TrainingOptions {
	return TrainingOptions{
		Epochs:       300,
		LearningRate: 0.5,
		L2:           1e-4,
	}
}

// TrainLogistic fits the model on sparse feature vectors against string
// labels. Exactly two distinct labels are required; if one of them is
// "phishing" it becomes the positive class, otherwise the positive class
// is the lexicographically larger label.
func TrainLogistic(features []map[int]float64, labels []string, dim int, opts TrainingOptions) (*LogisticModel, error) {
	if len(features) != len(labels) {
		return nil, fmt.Errorf("feature/label length mismatch: %d vs %d", len(features), len(labels))
	}

	distinct := make(map[string]bool)
	for _, l := range labels {
		distinct[l] = true
	}
	if len(distinct) != 2 {
		return nil, fmt.Errorf("expected exactly 2 classes, got %d", len(distinct))
	}

	classes := make([]string, 0, 2)
	for l := range distinct {
		classes = append(classes, l)
	}
	sort.Strings(classes)
	if classes[0] == LabelPhishing {
		classes[0], classes[1] = classes[1], classes[0]
	}

	m := &LogisticModel{
		Weights: make([]float64, dim),
		Classes: [2]string{classes[0], classes[1]},
	}

	y := make([]float64, len(labels))
	for i, l := range labels {
		if l == m.Classes[1] {
			y[i] = 1
		}
	}

	n := float64(len(features))
	for epoch := 0; epoch < opts.Epochs; epoch++ {
		gradBias := 0.0
		grad := make(map[int]float64)
		for i, x := range features {
			p := m.decision(x)
			diff := p - y[i]
			gradBias += diff
			for idx, val := range x {
				grad[idx] += diff * val
			}
		}
		m.Bias -= opts.LearningRate * gradBias / n
		for idx, g := range grad {
			m.Weights[idx] -= opts.LearningRate * (g/n + opts.L2*m.Weights[idx])
		}
	}

	return m, nil
}

func (m *LogisticModel) decision(x map[int]float64) float64 {
	z := m.Bias
	for idx, val := range x {
		if idx < len(m.Weights) {
			z += m.Weights[idx] * val
		}
	}
	return 1 / (1 + math.Exp(-z))
}

// PredictProba returns the probability mass assigned to each class
func (m *LogisticModel) PredictProba(x map[int]float64) map[string]float64 {
	p := m.decision(x)
	return map[string]float64{
		m.Classes[0]: 1 - p,
		m.Classes[1]: p,
	}
}

// Predict returns the most probable class label
func (m *LogisticModel) Predict(x map[int]float64) string {
	if m.decision(x) >= 0.5 {
		return m.Classes[1]
	}
	return m.Classes[0]
}
