// Package search compiles loosely-structured job filter requests into a
// typed predicate tree plus an ordering directive. The compiler is a
// pure function: it never touches the store, and repositories render
// the tree into whatever query language they speak.
package search

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Field identifies a filterable job attribute. Renderers map each
// field to a concrete column or relation.
type Field string

const (
	FieldTitle            Field = "title"
	FieldDescription      Field = "description"
	FieldRequirements     Field = "requirements"
	FieldResponsibilities Field = "responsibilities"
	FieldCompanyName      Field = "companyName"
	FieldCategoryID       Field = "categoryId"
	FieldType             Field = "type"
	FieldExperienceLevel  Field = "experienceLevel"
	FieldLocation         Field = "location"
	FieldIsRemote         Field = "isRemote"
	FieldSalaryMin        Field = "salaryMin"
	FieldSalaryMax        Field = "salaryMax"
	FieldSkillID          Field = "skillId"
	FieldStatus           Field = "status"
	FieldExpiresAt        Field = "expiresAt"
)

// Predicate is one node of the boolean filter tree. The set of
// variants is closed; renderers type-switch over it.
type Predicate interface {
	isPredicate()
}

// And is satisfied when every child is. An empty And matches
// everything.
type And struct {
	Preds []Predicate
}

// Or is satisfied when at least one child is.
type Or struct {
	Preds []Predicate
}

// Equals matches a field exactly.
type Equals struct {
	Field Field
	Value interface{}
}

// Contains matches a case-insensitive substring of a text field.
type Contains struct {
	Field Field
	Value string
}

// Range bounds a field from below and/or above. A nil bound is open;
// present bounds are inclusive unless the matching Exclusive flag is
// set.
type Range struct {
	Field        Field
	Min          interface{}
	Max          interface{}
	MinExclusive bool
	MaxExclusive bool
}

// OneOf matches when the field's value is in the given set. For
// FieldSkillID the job matches when any of its associated skills is.
type OneOf struct {
	Field  Field
	Values []interface{}
}

// IsNull matches when the field has no value.
type IsNull struct {
	Field Field
}

func (And) isPredicate()      {}
func (Or) isPredicate()       {}
func (Equals) isPredicate()   {}
func (Contains) isPredicate() {}
func (Range) isPredicate()    {}
func (OneOf) isPredicate()    {}
func (IsNull) isPredicate()   {}

// Filter is the closed set of optional search criteria. Pointer fields
// distinguish "not supplied" from a zero value; enum fields arrive
// already validated as strings.
type Filter struct {
	Search          string
	CategoryID      *uuid.UUID
	Type            string
	ExperienceLevel string
	Location        string
	IsRemote        *bool
	SalaryMin       *float64
	SalaryMax       *float64
	SkillIDs        []uuid.UUID
}

// Sort is the raw client ordering request before allow-list
// resolution.
type Sort struct {
	By    string
	Order string
}

type OrderKey string

const (
	OrderCreatedAt OrderKey = "createdAt"
	OrderUpdatedAt OrderKey = "updatedAt"
	OrderTitle     OrderKey = "title"
	OrderSalary    OrderKey = "salary"
	OrderCompany   OrderKey = "company"
	OrderExpiresAt OrderKey = "expiresAt"
)

type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// Order is the resolved single-key ordering directive.
type Order struct {
	Key       OrderKey
	Direction Direction
}

// Query is a compiled search: one predicate tree shared by the paged
// fetch and the count so the total always matches the page's universe,
// plus the ordering directive. Now is the expiry cutoff captured once
// per compile.
type Query struct {
	Pred  Predicate
	Order Order
	Now   time.Time
}

const publishedStatus = "PUBLISHED"

// Compile translates a filter and sort request into a Query. It is
// deterministic: the same input and instant always yield an identical
// tree.
//
// The baseline predicate is always applied: only PUBLISHED jobs whose
// expiry is unset or after now. Each supplied criterion adds one
// conjunct; the free-text search adds a disjunction across title,
// description, requirements, responsibilities and the owning company's
// name. A location criterion is suppressed when isRemote=true is also
// supplied, so remote jobs are never excluded by a location mismatch.
func Compile(f Filter, s Sort, now time.Time) Query {
	preds := make([]Predicate, 0, 10)

	preds = append(preds, Equals{Field: FieldStatus, Value: publishedStatus})
	preds = append(preds, Or{Preds: []Predicate{
		IsNull{Field: FieldExpiresAt},
		Range{Field: FieldExpiresAt, Min: now, MinExclusive: true},
	}})

	if term := strings.TrimSpace(f.Search); term != "" {
		preds = append(preds, Or{Preds: []Predicate{
			Contains{Field: FieldTitle, Value: term},
			Contains{Field: FieldDescription, Value: term},
			Contains{Field: FieldRequirements, Value: term},
			Contains{Field: FieldResponsibilities, Value: term},
			Contains{Field: FieldCompanyName, Value: term},
		}})
	}

	if f.CategoryID != nil {
		preds = append(preds, Equals{Field: FieldCategoryID, Value: *f.CategoryID})
	}
	if f.Type != "" {
		preds = append(preds, Equals{Field: FieldType, Value: f.Type})
	}
	if f.ExperienceLevel != "" {
		preds = append(preds, Equals{Field: FieldExperienceLevel, Value: f.ExperienceLevel})
	}

	remote := f.IsRemote != nil && *f.IsRemote
	if f.Location != "" && !remote {
		preds = append(preds, Contains{Field: FieldLocation, Value: f.Location})
	}
	if f.IsRemote != nil {
		preds = append(preds, Equals{Field: FieldIsRemote, Value: *f.IsRemote})
	}

	// A requested floor matches jobs that can realistically pay that
	// much: either bound of the job's own range clears it.
	if f.SalaryMin != nil {
		preds = append(preds, Or{Preds: []Predicate{
			Range{Field: FieldSalaryMin, Min: *f.SalaryMin},
			Range{Field: FieldSalaryMax, Min: *f.SalaryMin},
		}})
	}
	if f.SalaryMax != nil {
		preds = append(preds, Range{Field: FieldSalaryMax, Max: *f.SalaryMax})
	}

	if len(f.SkillIDs) > 0 {
		vals := make([]interface{}, 0, len(f.SkillIDs))
		for _, id := range f.SkillIDs {
			vals = append(vals, id)
		}
		preds = append(preds, OneOf{Field: FieldSkillID, Values: vals})
	}

	return Query{Pred: And{Preds: preds}, Order: resolveOrder(s), Now: now}
}

// sortKeys is the ordering allow-list. Unknown client keys fall back
// to the default instead of reaching the store.
var sortKeys = map[string]OrderKey{
	"createdAt": OrderCreatedAt,
	"updatedAt": OrderUpdatedAt,
	"title":     OrderTitle,
	"salary":    OrderSalary,
	"company":   OrderCompany,
	"expiresAt": OrderExpiresAt,
}

func resolveOrder(s Sort) Order {
	key, ok := sortKeys[s.By]
	if !ok {
		key = OrderCreatedAt
	}
	dir := Desc
	if strings.EqualFold(s.Order, "asc") {
		dir = Asc
	}
	return Order{Key: key, Direction: dir}
}
