package auth

import (
	"fmt"
	"log"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

// Roles known to the enforcer. Every registered account is grouped into
// staff; the first account additionally into admin.
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Subject returns the casbin subject for a user id.
func Subject(userID uint64) string {
	return fmt.Sprintf("user:%d", userID)
}

// InitCasbin defines the RBAC model and initializes the enforcer with GORM adapter
func InitCasbin(db *gorm.DB) (*casbin.Enforcer, error) {
	// creates the casbin_rule table on first run
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, err
	}

	text := `
		[request_definition]
		r = sub, obj, act

		[policy_definition]
		p = sub, obj, act

		[role_definition]
		g = _, _

		[policy_effect]
		e = some(where (p.eft == allow))

		[matchers]
		m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && regexMatch(r.act, p.act)
	`

	m, err := model.NewModelFromString(text)
	if err != nil {
		return nil, err
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, err
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, err
	}

	policies, _ := enforcer.GetPolicy()
	if len(policies) == 0 {
		log.Println("Casbin: No policies found, initializing default policies...")

		// autosave is on, so each AddPolicy persists through the adapter
		defaults := [][]string{
			{RoleAdmin, "/*", "(GET)|(POST)|(PUT)|(DELETE)"},
			{RoleStaff, "/employee/*", "POST"},
			{RoleStaff, "/accounts/validate-admin", "POST"},
		}
		for _, p := range defaults {
			if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
				log.Printf("Failed to add default policy %v: %v", p, err)
			}
		}
	}

	log.Println("Casbin initialized successfully")
	return enforcer, nil
}
