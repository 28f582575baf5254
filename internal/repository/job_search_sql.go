package repository

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Ankit73-bit/job-portal-backend/internal/search"
)

// jobColumns maps compiler fields onto the job listing query, which
// selects from jobs j joined with companies c and categories cat.
// FieldSkillID is absent on purpose: skill membership renders as an
// EXISTS subquery, not a column comparison.
var jobColumns = map[search.Field]string{
	search.FieldTitle:            "j.title",
	search.FieldDescription:      "j.description",
	search.FieldRequirements:     "j.requirements",
	search.FieldResponsibilities: "j.responsibilities",
	search.FieldCompanyName:      "c.name",
	search.FieldCategoryID:       "j.category_id",
	search.FieldType:             "j.type",
	search.FieldExperienceLevel:  "j.experience_level",
	search.FieldLocation:         "j.location",
	search.FieldIsRemote:         "j.is_remote",
	search.FieldSalaryMin:        "j.salary_min",
	search.FieldSalaryMax:        "j.salary_max",
	search.FieldStatus:           "j.status",
	search.FieldExpiresAt:        "j.expires_at",
}

var orderColumns = map[search.OrderKey]string{
	search.OrderCreatedAt: "j.created_at",
	search.OrderUpdatedAt: "j.updated_at",
	search.OrderTitle:     "j.title",
	search.OrderSalary:    "j.salary_max",
	search.OrderCompany:   "c.name",
	search.OrderExpiresAt: "j.expires_at",
}

// argList accumulates positional arguments while a predicate tree is
// rendered, so the fetch and count queries share one argument set.
type argList struct {
	args []interface{}
}

func (l *argList) add(v interface{}) string {
	l.args = append(l.args, v)
	return "$" + strconv.Itoa(len(l.args))
}

func jobColumn(f search.Field) (string, error) {
	col, ok := jobColumns[f]
	if !ok {
		return "", fmt.Errorf("no column mapping for field %q", f)
	}
	return col, nil
}

// renderPredicate emits a SQL condition for one tree node. Unmappable
// fields fail rather than degrade into a permissive query.
func renderPredicate(p search.Predicate, args *argList) (string, error) {
	switch v := p.(type) {
	case search.And:
		return renderGroup(v.Preds, " AND ", "TRUE", args)
	case search.Or:
		return renderGroup(v.Preds, " OR ", "FALSE", args)
	case search.Equals:
		col, err := jobColumn(v.Field)
		if err != nil {
			return "", err
		}
		return col + " = " + args.add(v.Value), nil
	case search.Contains:
		col, err := jobColumn(v.Field)
		if err != nil {
			return "", err
		}
		return col + " ILIKE " + args.add("%"+v.Value+"%"), nil
	case search.Range:
		return renderRange(v, args)
	case search.OneOf:
		if v.Field == search.FieldSkillID {
			return renderSkillSet(v.Values, args)
		}
		return renderOneOf(v, args)
	case search.IsNull:
		col, err := jobColumn(v.Field)
		if err != nil {
			return "", err
		}
		return col + " IS NULL", nil
	default:
		return "", fmt.Errorf("unsupported predicate %T", p)
	}
}

func renderGroup(preds []search.Predicate, sep, empty string, args *argList) (string, error) {
	if len(preds) == 0 {
		return empty, nil
	}
	parts := make([]string, 0, len(preds))
	for _, p := range preds {
		s, err := renderPredicate(p, args)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	if len(parts) == 1 {
		return parts[0], nil
	}
	return "(" + strings.Join(parts, sep) + ")", nil
}

func renderRange(v search.Range, args *argList) (string, error) {
	col, err := jobColumn(v.Field)
	if err != nil {
		return "", err
	}
	conds := make([]string, 0, 2)
	if v.Min != nil {
		op := ">="
		if v.MinExclusive {
			op = ">"
		}
		conds = append(conds, col+" "+op+" "+args.add(v.Min))
	}
	if v.Max != nil {
		op := "<="
		if v.MaxExclusive {
			op = "<"
		}
		conds = append(conds, col+" "+op+" "+args.add(v.Max))
	}
	switch len(conds) {
	case 0:
		return "TRUE", nil
	case 1:
		return conds[0], nil
	default:
		return "(" + conds[0] + " AND " + conds[1] + ")", nil
	}
}

func renderOneOf(v search.OneOf, args *argList) (string, error) {
	col, err := jobColumn(v.Field)
	if err != nil {
		return "", err
	}
	if len(v.Values) == 0 {
		return "FALSE", nil
	}
	ph := make([]string, 0, len(v.Values))
	for _, val := range v.Values {
		ph = append(ph, args.add(val))
	}
	return col + " IN (" + strings.Join(ph, ", ") + ")", nil
}

// renderSkillSet matches jobs having at least one associated skill in
// the requested set.
func renderSkillSet(values []interface{}, args *argList) (string, error) {
	if len(values) == 0 {
		return "FALSE", nil
	}
	ph := make([]string, 0, len(values))
	for _, v := range values {
		ph = append(ph, args.add(v))
	}
	return "EXISTS (SELECT 1 FROM job_skills js WHERE js.job_id = j.id AND js.skill_id IN (" +
		strings.Join(ph, ", ") + "))", nil
}

// renderOrder resolves the ordering directive against the column map,
// with the row id as tiebreaker so pages are stable across calls.
func renderOrder(o search.Order) string {
	col, ok := orderColumns[o.Key]
	if !ok {
		col = "j.created_at"
	}
	dir := "DESC"
	if o.Direction == search.Asc {
		dir = "ASC"
	}
	return col + " " + dir + ", j.id " + dir
}
