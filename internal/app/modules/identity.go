package modules

import (
	"context"

	"github.com/riverqueue/river"

	"etree.io/etree/internal/api/handlers"
	"etree.io/etree/internal/jobs"
	"etree.io/etree/internal/service"
)

// IdentityModule wires user accounts, authentication, and the email
// delivery workers.
type IdentityModule struct {
	infra *Infrastructure
	users *service.UserService
}

// NewIdentityModule creates the identity module with explicit
// constructor wiring.
func NewIdentityModule(infra *Infrastructure) *IdentityModule {
	users := service.NewUserService(
		infra.EntClient,
		infra.Media,
		infra.Dispatcher,
		infra.Config.Auth,
		infra.Pools.General.Raw(),
	)
	return &IdentityModule{infra: infra, users: users}
}

// Users exposes the user service to sibling modules.
func (m *IdentityModule) Users() *service.UserService { return m.users }

func (m *IdentityModule) Name() string { return "identity" }

func (m *IdentityModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Users = m.users
}

func (m *IdentityModule) RegisterWorkers(workers *river.Workers) {
	if workers == nil || m == nil || m.infra == nil {
		return
	}
	river.AddWorker(workers, jobs.NewSendEmailWorker(m.infra.Mailer))
	river.AddWorker(workers, jobs.NewOTPCleanupWorker(m.infra.EntClient, jobs.DefaultOTPRetention))
}

func (m *IdentityModule) Shutdown(context.Context) error { return nil }
