package feature

import (
	"fmt"
)

/*
Criterion represents a constraint on a row.

Its SatisfiedBy method takes the values of a row and returns a boolean
indicating whether the row satisfies the criterion.

Its Attribute method returns the index of the column the criterion
applies to.
*/
type Criterion interface {
	Attribute() int
	SatisfiedBy(values []Value) bool
}

/*
DiscreteCriterion represents a constraint on an attribute to take a
specific value.

Its Value method returns the value to which the attribute is constrained.
*/
type DiscreteCriterion interface {
	Criterion
	Value() Value
}

type discreteCriterion struct {
	attribute int
	value     Value
}

/*
NewDiscreteCriterion takes the index of an attribute and a value and returns
a DiscreteCriterion satisfied by rows whose value for the attribute equals
the given one.
*/
func NewDiscreteCriterion(attribute int, value Value) DiscreteCriterion {
	return &discreteCriterion{attribute, value}
}

func (dc *discreteCriterion) Attribute() int {
	return dc.attribute
}

/*
SatisfiedBy receives the values of a row and returns true if the row has a
value for the criterion's attribute equal to the criterion's value, false
otherwise (including when the row is too short to have one).
*/
func (dc *discreteCriterion) SatisfiedBy(values []Value) bool {
	if dc.attribute < 0 || dc.attribute >= len(values) {
		return false
	}
	return values[dc.attribute].Equal(dc.value)
}

func (dc *discreteCriterion) Value() Value {
	return dc.value
}

func (dc *discreteCriterion) String() string {
	return fmt.Sprintf("a%d is %s", dc.attribute+1, dc.value)
}

/*
All takes a list of criteria and returns a Criterion satisfied only by rows
that satisfy all of them. With no criteria it is satisfied by every row.
Its Attribute method returns -1.
*/
func All(criteria ...Criterion) Criterion {
	return conjunction(criteria)
}

type conjunction []Criterion

func (c conjunction) Attribute() int {
	return -1
}

func (c conjunction) SatisfiedBy(values []Value) bool {
	for _, cr := range c {
		if !cr.SatisfiedBy(values) {
			return false
		}
	}
	return true
}
