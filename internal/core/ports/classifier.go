// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/glhost/internal/core/domain"

// Classifier decides which driver role categories a shared object filename
// belongs to. A zero result means the file is not a driver object.
//
//go:generate mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks
type Classifier interface {
	// Classify returns the set of categories matching the given filename.
	Classify(filename string) domain.Category
}
