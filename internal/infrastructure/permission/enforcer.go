package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/persist"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/permission"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

// rbacModel is role-based with role inheritance; subjects are role names, not users.
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var _ permission.PermissionEnforcer = (*Enforcer)(nil)

type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

// NewEnforcer stores policies in the casbin_rule table through the gorm adapter.
func NewEnforcer(db *gorm.DB, log logger.Interface) (*Enforcer, error) {
	adapter, err := gormadapter.NewAdapterByDB(db)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin adapter: %w", err)
	}
	return NewEnforcerWithAdapter(adapter, log)
}

func NewEnforcerWithAdapter(adapter persist.Adapter, log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("failed to load policy: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log,
	}, nil
}

func (e *Enforcer) Enforce(role string, resource permission.Resource, action permission.Action) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role, string(resource), string(action))
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}
	return allowed, nil
}

func (e *Enforcer) LoadPolicy() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.enforcer.LoadPolicy(); err != nil {
		return fmt.Errorf("failed to reload policy: %w", err)
	}

	e.logger.Info("policy reloaded successfully")
	return nil
}
