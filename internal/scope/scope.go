// Package scope derives row visibility predicates from the caller's
// identity claims. Every read query appends exactly one predicate computed
// here; there is no ACL storage and no per-row lookup.
package scope

import (
	appErrors "github.com/campus-ops/faculty-reporting-api/pkg/errors"

	"github.com/campus-ops/faculty-reporting-api/internal/models"
)

// Predicate is a WHERE fragment with positional args. Clauses use $1-style
// placeholders starting at the given offset so repositories can splice them
// into a base query.
type Predicate struct {
	Clause string
	Args   []interface{}
}

// Unrestricted is the empty predicate.
var Unrestricted = Predicate{}

// Courses scopes the course listing. Every known role sees its own
// faculty's courses; students get the same faculty filter as everyone
// else, never an unfiltered read.
func Courses(claims *models.Claims) (Predicate, error) {
	switch claims.Role {
	case models.RoleProgramLeader, models.RoleProgramReviewLead, models.RoleLecturer, models.RoleStudent:
		return Predicate{Clause: "WHERE faculty = $1", Args: []interface{}{claims.Faculty}}, nil
	default:
		return Predicate{}, appErrors.Clone(appErrors.ErrRoleMismatch, "unknown role")
	}
}

// MyClasses scopes the class listing to the caller's own assignments and is
// only available to lecturers.
func MyClasses(claims *models.Claims) (Predicate, error) {
	switch claims.Role {
	case models.RoleLecturer:
		return Predicate{Clause: "WHERE cl.assigned_lecturer_id = $1", Args: []interface{}{claims.UserID}}, nil
	case models.RoleProgramLeader, models.RoleProgramReviewLead, models.RoleStudent:
		return Predicate{}, appErrors.Clone(appErrors.ErrRoleMismatch, "only lecturers can access their classes")
	default:
		return Predicate{}, appErrors.Clone(appErrors.ErrRoleMismatch, "unknown role")
	}
}

// Reports scopes the report listing: lecturers see their own submissions,
// review and program leaders see everything authored within their faculty
// (via the join to the authoring lecturer), students see nothing.
func Reports(claims *models.Claims) (Predicate, error) {
	switch claims.Role {
	case models.RoleLecturer:
		return Predicate{Clause: "WHERE r.lecturer_id = $1", Args: []interface{}{claims.UserID}}, nil
	case models.RoleProgramReviewLead, models.RoleProgramLeader:
		return Predicate{Clause: "WHERE u.faculty = $1", Args: []interface{}{claims.Faculty}}, nil
	case models.RoleStudent:
		return Predicate{}, appErrors.Clone(appErrors.ErrRoleMismatch, "students cannot access reports")
	default:
		return Predicate{}, appErrors.Clone(appErrors.ErrRoleMismatch, "unknown role")
	}
}

// Users scopes the user directory. It is deliberately unrestricted for all
// authenticated roles; the frontend needs the full roster to pick rating
// targets and class lecturers.
func Users(claims *models.Claims) (Predicate, error) {
	if !claims.Role.Valid() {
		return Predicate{}, appErrors.Clone(appErrors.ErrRoleMismatch, "unknown role")
	}
	return Unrestricted, nil
}

// Ratings scopes rating reads by target lecturer; any authenticated role
// may read them.
func Ratings(claims *models.Claims, targetID string) (Predicate, error) {
	if !claims.Role.Valid() {
		return Predicate{}, appErrors.Clone(appErrors.ErrRoleMismatch, "unknown role")
	}
	return Predicate{Clause: "WHERE rt.target_id = $1", Args: []interface{}{targetID}}, nil
}
