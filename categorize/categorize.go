// Package categorize predicts a spend category from a transaction
// description using a naive-Bayes classifier trained on a merchant corpus.
// The trained model is persisted to disk and reloaded across runs.
package categorize

import (
	"log"
	"os"
	"strings"
	"sync"

	"github.com/jbrukh/bayesian"
	"github.com/spf13/viper"
)

// Uncategorized is returned when the model cannot produce a usable answer.
const Uncategorized = "Uncategorized"

// Categories is the fixed class list, in training order. The classifier's
// score vector is indexed against this slice.
var Categories = []string{
	"Food & Drink",
	"Shopping",
	"Travel",
	"Groceries",
	"Bills",
	"Health",
	"Other",
}

// Categorizer wraps the trained classifier. Safe for concurrent Predict
// calls; Learn/Save are not and belong to setup.
type Categorizer struct {
	classifier *bayesian.Classifier
	classes    []bayesian.Class
}

func classList() []bayesian.Class {
	classes := make([]bayesian.Class, 0, len(Categories))
	for _, c := range Categories {
		classes = append(classes, bayesian.Class(c))
	}
	return classes
}

// New builds an untrained categorizer over the fixed class list.
func New() *Categorizer {
	classes := classList()
	return &Categorizer{
		classifier: bayesian.NewClassifier(classes...),
		classes:    classes,
	}
}

// Load returns a categorizer backed by the model at modelPath. A missing or
// unreadable model file is not an error: the seed corpus is trained from
// scratch and the fresh model is written back to modelPath for next time.
func Load(modelPath string) *Categorizer {
	if modelPath != "" {
		if classifier, err := bayesian.NewClassifierFromFile(modelPath); err == nil {
			return &Categorizer{classifier: classifier, classes: classList()}
		} else if !os.IsNotExist(err) {
			log.Printf("WARN could not load model from %s: %v", modelPath, err)
		}
	}

	c := New()
	c.TrainSeed()
	if modelPath != "" {
		if err := c.Save(modelPath); err != nil {
			log.Printf("WARN could not save model to %s: %v", modelPath, err)
		}
	}
	return c
}

// Learn adds one labeled description to the model. Unknown categories are
// ignored rather than growing the class list.
func (c *Categorizer) Learn(description, category string) {
	for _, class := range c.classes {
		if string(class) == category {
			c.classifier.Learn(tokenize(description), class)
			return
		}
	}
}

// TrainSeed teaches the built-in merchant corpus.
func (c *Categorizer) TrainSeed() {
	for _, entry := range seedCorpus {
		c.Learn(entry.Description, entry.Category)
	}
}

// Save persists the trained model to path.
func (c *Categorizer) Save(path string) error {
	return c.classifier.WriteToFile(path)
}

// Predict returns the best-scoring category for description, or the
// Uncategorized sentinel when the description yields no tokens or the
// classifier misbehaves. Prediction never fails.
func (c *Categorizer) Predict(description string) (category string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("WARN category prediction failed for %q: %v", description, r)
			category = Uncategorized
		}
	}()

	tokens := tokenize(description)
	if len(tokens) == 0 {
		return Uncategorized
	}

	_, inx, _ := c.classifier.LogScores(tokens)
	if inx < 0 || inx >= len(c.classes) {
		return Uncategorized
	}
	return string(c.classes[inx])
}

func tokenize(description string) []string {
	return strings.Fields(strings.ToLower(description))
}

var (
	sharedOnce sync.Once
	shared     *Categorizer
)

// Shared returns the process-wide categorizer, loading (or training) it on
// first use. The model path comes from configuration.
func Shared() *Categorizer {
	sharedOnce.Do(func() {
		shared = Load(viper.GetString("categorizer.model_path"))
	})
	return shared
}
