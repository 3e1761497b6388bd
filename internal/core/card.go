package core

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	BucketTens Bucket = iota
	BucketNines
	BucketEightOrLower
)

type (
	// Bucket is the grade-distribution column a grade is counted in.
	Bucket int

	// Card is one graded card instance. It is immutable once built.
	Card struct {
		name  string
		grade int
		cost  decimal.Decimal
	}
)

var (
	ErrInvalidGrade  = errors.New("card grade must be an integer or a string representation of an integer")
	ErrInvalidCost   = errors.New("card cost must be a number")
	ErrInvalidAmount = errors.New("amount must be a number")
)

// NewCard builds a card from already typed values.
func NewCard(name string, grade int, cost decimal.Decimal) Card {
	return Card{name: name, grade: grade, cost: cost}
}

// ParseCard builds a card from raw text input, coercing grade and cost.
func ParseCard(name, grade, cost string) (Card, error) {
	g, err := ParseGrade(grade)
	if err != nil {
		return Card{}, err
	}
	c, err := ParseCost(cost)
	if err != nil {
		return Card{}, err
	}
	return NewCard(name, g, c), nil
}

func (c Card) Name() string          { return c.name }
func (c Card) Grade() int            { return c.grade }
func (c Card) Cost() decimal.Decimal { return c.cost }
func (c Card) Bucket() Bucket        { return BucketOf(c.grade) }

// Equal reports whether both cards carry the same values.
func (c Card) Equal(o Card) bool {
	return c.name == o.name && c.grade == o.grade && c.cost.Equal(o.cost)
}

func (c Card) String() string {
	return fmt.Sprintf("%s (grade %d)", c.name, c.grade)
}

// ParseGrade accepts an optionally signed base-10 integer. "9.0" is rejected.
func ParseGrade(s string) (int, error) {
	g, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGrade, s)
	}
	return g, nil
}

// BucketOf returns the column a grade is tallied in: 10, 9, or everything else.
func BucketOf(grade int) Bucket {
	switch grade {
	case 10:
		return BucketTens
	case 9:
		return BucketNines
	default:
		return BucketEightOrLower
	}
}

func (b Bucket) String() string {
	switch b {
	case BucketTens:
		return "10s"
	case BucketNines:
		return "9s"
	default:
		return "8s or lower"
	}
}
