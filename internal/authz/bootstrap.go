package authz

import (
	"fmt"

	"github.com/civeni/civeni-api/internal/constants"
)

// RoleSeed declares a built-in role.
type RoleSeed struct {
	Role      string
	Inherits  []string
	Policies  []Policy
	Immutable bool
}

// BuiltinRoleSeeds defines the built-in back-office role matrix.
// admin_root matches everything; editor manages content; finance reads
// registrations and revenue reports.
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.RoleAdminRoot,
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
			Immutable: true,
		},
		{
			Role: constants.RoleEditor,
			Policies: []Policy{
				{Object: "/admin/events", Action: "*"},
				{Object: "/admin/events/:id", Action: "*"},
				{Object: "/admin/events/:id/translations", Action: "*"},
				{Object: "/admin/events/:id/translations/:locale", Action: "*"},
				{Object: "/admin/events/:id/certificate", Action: "*"},
				{Object: "/admin/posts", Action: "*"},
				{Object: "/admin/posts/:id", Action: "*"},
				{Object: "/admin/banners", Action: "*"},
				{Object: "/admin/banners/:id", Action: "*"},
				{Object: "/admin/works", Action: "GET"},
				{Object: "/admin/works/:id", Action: "*"},
				{Object: "/admin/certificates", Action: "GET"},
				{Object: "/admin/certificate-attempts", Action: "GET"},
				{Object: "/admin/upload", Action: "POST"},
			},
			Immutable: true,
		},
		{
			Role: constants.RoleFinance,
			Policies: []Policy{
				{Object: "/admin/registrations", Action: "GET"},
				{Object: "/admin/registrations/:id", Action: "GET"},
				{Object: "/admin/registrations/:id", Action: "PATCH"},
				{Object: "/admin/categories", Action: "*"},
				{Object: "/admin/categories/:id", Action: "*"},
				{Object: "/admin/finance/summary", Action: "GET"},
				{Object: "/admin/finance/series", Action: "GET"},
			},
			Immutable: true,
		},
	}
}

// BootstrapBuiltinRoles seeds the built-in roles and their policies.
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		role, err := NormalizeRole(seed.Role)
		if err != nil {
			return err
		}

		exists, err := s.enforcer.HasNamedGroupingPolicy("g", role, roleAnchor)
		if err != nil {
			return fmt.Errorf("check builtin role failed: %w", err)
		}
		if !exists {
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, roleAnchor); err != nil {
				return fmt.Errorf("create builtin role failed: %w", err)
			}
		}

		for _, parent := range seed.Inherits {
			parentRole, err := NormalizeRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(role, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
