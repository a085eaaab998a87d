package modules

import (
	"context"

	"github.com/riverqueue/river"

	"etree.io/etree/internal/api/handlers"
	"etree.io/etree/internal/service"
)

// GovernanceModule wires roles and the role-permission assignment
// surface.
type GovernanceModule struct {
	infra       *Infrastructure
	roles       *service.RoleService
	permissions *service.PermissionService
}

// NewGovernanceModule creates the governance module.
func NewGovernanceModule(infra *Infrastructure) *GovernanceModule {
	return &GovernanceModule{
		infra:       infra,
		roles:       service.NewRoleService(infra.EntClient),
		permissions: service.NewPermissionService(infra.EntClient),
	}
}

func (m *GovernanceModule) Name() string { return "governance" }

func (m *GovernanceModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Roles = m.roles
	deps.Permissions = m.permissions
}

func (m *GovernanceModule) RegisterWorkers(_ *river.Workers) {}

func (m *GovernanceModule) Shutdown(context.Context) error { return nil }
