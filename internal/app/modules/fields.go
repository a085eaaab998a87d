package modules

import (
	"context"

	"github.com/riverqueue/river"

	"etree.io/etree/internal/api/handlers"
	"etree.io/etree/internal/service"
)

// FieldsModule wires the required-field definition store and the
// per-user value services.
type FieldsModule struct {
	infra  *Infrastructure
	fields *service.FieldService
	values *service.ValueService
}

// NewFieldsModule creates the fields module. It depends on the
// identity module's user service for target-user resolution.
func NewFieldsModule(infra *Infrastructure, users *service.UserService) *FieldsModule {
	fields := service.NewFieldService(infra.EntClient)
	values := service.NewValueService(infra.EntClient, users, fields, infra.Media, infra.Dispatcher)
	return &FieldsModule{infra: infra, fields: fields, values: values}
}

func (m *FieldsModule) Name() string { return "fields" }

func (m *FieldsModule) ContributeServerDeps(deps *handlers.ServerDeps) {
	if deps == nil {
		return
	}
	deps.Fields = m.fields
	deps.Values = m.values
}

func (m *FieldsModule) RegisterWorkers(_ *river.Workers) {}

func (m *FieldsModule) Shutdown(context.Context) error { return nil }
