package roc

import "fmt"

// LabelPolicy converts a state code into a boolean "is a case" label.
// The same policy decides both which observations exclude a node and
// which ground-truth states count as positive events.
type LabelPolicy int

const (
	// LabelInfected counts only state I as a case.
	LabelInfected LabelPolicy = iota
	// LabelInfectedOrRecovered counts every state other than S as a case.
	// Untested (-1) is therefore a case too; this is kept as-is.
	LabelInfectedOrRecovered
)

// Valid reports whether p is one of the defined policies.
func (p LabelPolicy) Valid() bool {
	return p == LabelInfected || p == LabelInfectedOrRecovered
}

// IsCase applies the policy to a state code. An undefined policy counts
// nothing as a case; ExcludedNodes and SelectEvents reject it up front.
func (p LabelPolicy) IsCase(s StateCode) bool {
	switch p {
	case LabelInfected:
		return s == Infected
	case LabelInfectedOrRecovered:
		return s != Susceptible
	default:
		return false
	}
}

func (p LabelPolicy) String() string {
	switch p {
	case LabelInfected:
		return "I"
	case LabelInfectedOrRecovered:
		return "IR"
	default:
		return fmt.Sprintf("LabelPolicy(%d)", int(p))
	}
}

// Ranker maps a posterior triple to a scalar risk score.
// Higher scores are ranked first.
type Ranker interface {
	Score(m Marginal) float64
}

// RankerFunc adapts an ordinary function to a Ranker.
type RankerFunc func(m Marginal) float64

func (f RankerFunc) Score(m Marginal) float64 {
	return f(m)
}

// RankInfected scores a node by P(I).
type RankInfected struct{}

func (RankInfected) Score(m Marginal) float64 {
	return m[Infected]
}

// RankInfectedOrRecovered scores a node by P(I) + P(R).
type RankInfectedOrRecovered struct{}

func (RankInfectedOrRecovered) Score(m Marginal) float64 {
	return m[Infected] + m[Recovered]
}

// Recipe pairs a label policy with the ranker that scores the same notion of "case".
type Recipe struct {
	Name   string
	Label  LabelPolicy
	Ranker Ranker
}

const (
	// RecipeInfected labels by I and ranks by P(I).
	RecipeInfected = "infected"
	// RecipeInfectedOrRecovered labels by I or R and ranks by P(I)+P(R).
	RecipeInfectedOrRecovered = "infected-or-recovered"
)

// ValidRecipes is the set of recognized recipe names.
// Shared by NewRecipe and configuration validation.
var ValidRecipes = map[string]bool{RecipeInfected: true, RecipeInfectedOrRecovered: true}

// IsValidRecipe returns true if name is a recognized recipe.
func IsValidRecipe(name string) bool {
	return ValidRecipes[name]
}

// RecipeNames returns the recognized recipe names in a stable order.
func RecipeNames() []string {
	return []string{RecipeInfected, RecipeInfectedOrRecovered}
}

// NewRecipe returns the named recipe.
func NewRecipe(name string) (Recipe, error) {
	switch name {
	case RecipeInfected:
		return Recipe{Name: name, Label: LabelInfected, Ranker: RankInfected{}}, nil
	case RecipeInfectedOrRecovered:
		return Recipe{Name: name, Label: LabelInfectedOrRecovered, Ranker: RankInfectedOrRecovered{}}, nil
	default:
		return Recipe{}, fmt.Errorf("%w %q; valid: %s, %s", ErrUnknownRecipe, name, RecipeInfected, RecipeInfectedOrRecovered)
	}
}
