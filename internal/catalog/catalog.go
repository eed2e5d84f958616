package catalog

import (
	"fmt"

	"aviengine/internal/model"
)

// Catalog is the immutable set of interview questions. It is constructed
// once and passed explicitly into every component; nothing in the engine
// reads a package-level question list.
type Catalog struct {
	byID    map[string]model.Question
	ordered []model.Question
}

// Stats describes the catalog composition
type Stats struct {
	TotalQuestions           int                    `json:"totalQuestions"`
	ByCategory               map[model.Category]int `json:"questionsByCategory"`
	ByWeight                 map[int]int            `json:"questionsByWeight"`
	ByStressLevel            map[int]int            `json:"questionsByStressLevel"`
	CriticalQuestions        int                    `json:"criticalQuestions"`
	HighStressQuestions      int                    `json:"highStressQuestions"`
	EstimatedDurationMinutes int                    `json:"estimatedDurationMinutes"`
}

// New builds a catalog from a question set, validating the invariants every
// question must satisfy: unique id, weight 1-10, stress level 1-5.
func New(questions []model.Question) (*Catalog, error) {
	c := &Catalog{
		byID:    make(map[string]model.Question, len(questions)),
		ordered: make([]model.Question, 0, len(questions)),
	}
	for _, q := range questions {
		if q.ID == "" {
			return nil, fmt.Errorf("catalog question without id")
		}
		if _, dup := c.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		if q.Weight < 1 || q.Weight > 10 {
			return nil, fmt.Errorf("question %q: weight %d out of range [1,10]", q.ID, q.Weight)
		}
		if q.StressLevel < 1 || q.StressLevel > 5 {
			return nil, fmt.Errorf("question %q: stress level %d out of range [1,5]", q.ID, q.StressLevel)
		}
		c.byID[q.ID] = q
		c.ordered = append(c.ordered, q)
	}
	return c, nil
}

// Get returns the question for id
func (c *Catalog) Get(id string) (model.Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// Has reports whether id exists in the catalog
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Len returns the number of questions
func (c *Catalog) Len() int {
	return len(c.ordered)
}

// All returns the questions in catalog order. The slice is a copy.
func (c *Catalog) All() []model.Question {
	out := make([]model.Question, len(c.ordered))
	copy(out, c.ordered)
	return out
}

// ByCategory returns the questions of one category in catalog order
func (c *Catalog) ByCategory(category model.Category) []model.Question {
	var out []model.Question
	for _, q := range c.ordered {
		if q.Category == category {
			out = append(out, q)
		}
	}
	return out
}

// Critical returns the questions with weight >= 9
func (c *Catalog) Critical() []model.Question {
	var out []model.Question
	for _, q := range c.ordered {
		if q.IsCritical() {
			out = append(out, q)
		}
	}
	return out
}

// HighStress returns the questions with stress level >= 4
func (c *Catalog) HighStress() []model.Question {
	var out []model.Question
	for _, q := range c.ordered {
		if q.IsHighStress() {
			out = append(out, q)
		}
	}
	return out
}

// Stats computes catalog composition counters
func (c *Catalog) Stats() Stats {
	s := Stats{
		TotalQuestions: len(c.ordered),
		ByCategory:     make(map[model.Category]int),
		ByWeight:       make(map[int]int),
		ByStressLevel:  make(map[int]int),
	}
	totalSeconds := 0
	for _, q := range c.ordered {
		s.ByCategory[q.Category]++
		s.ByWeight[q.Weight]++
		s.ByStressLevel[q.StressLevel]++
		totalSeconds += q.EstimatedTime
		if q.IsCritical() {
			s.CriticalQuestions++
		}
		if q.IsHighStress() {
			s.HighStressQuestions++
		}
	}
	s.EstimatedDurationMinutes = (totalSeconds + 59) / 60
	return s
}
