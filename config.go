package authcore

import (
	"fmt"

	"github.com/anoylabs/authcore/storage"
)

// Config groups the tunables of the session core. Zero values fall back to
// the defaults below; Builder.Build validates the result.
type Config struct {
	Session SessionConfig
	Routes  RoutesConfig
	Storage StorageConfig
	Audit   AuditConfig
}

// SessionConfig controls session defaults.
type SessionConfig struct {
	// DefaultRole is assigned when neither the caller nor the token claims
	// supply a role. Defaults to RoleUser.
	DefaultRole Role

	// DefaultPersist is the tier used when a LoginRequest leaves Persist
	// unset. Defaults to storage.PersistLocal.
	DefaultPersist storage.Mode
}

// RoutesConfig names the routes the interceptor and the guard redirect to.
type RoutesConfig struct {
	// Login is the login entry point route (default "login").
	Login string

	// Landing is the default landing route for rejected navigations
	// (default "home").
	Landing string

	// RedirectParam is the query parameter carrying the return target so the
	// user lands back where they were after re-authenticating (default
	// "redirect").
	RedirectParam string
}

// StorageConfig controls the persisted record keys.
type StorageConfig struct {
	// KeyPrefix is prepended to the three record keys in both tiers
	// (default "auth.").
	KeyPrefix string
}

// AuditConfig controls the async audit dispatcher.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	// DropIfFull drops events instead of blocking when the buffer is full;
	// drops are counted and exposed via Manager.AuditDropped.
	DropIfFull bool
}

func defaultConfig() Config {
	return Config{
		Session: SessionConfig{
			DefaultRole:    RoleUser,
			DefaultPersist: storage.PersistLocal,
		},
		Routes: RoutesConfig{
			Login:         "login",
			Landing:       "home",
			RedirectParam: "redirect",
		},
		Storage: StorageConfig{
			KeyPrefix: "auth.",
		},
		Audit: AuditConfig{
			Enabled:    true,
			BufferSize: 64,
			DropIfFull: true,
		},
	}
}

func (c *Config) applyDefaults() {
	d := defaultConfig()
	if c.Session.DefaultRole == "" {
		c.Session.DefaultRole = d.Session.DefaultRole
	}
	if c.Session.DefaultPersist == "" {
		c.Session.DefaultPersist = d.Session.DefaultPersist
	}
	if c.Routes.Login == "" {
		c.Routes.Login = d.Routes.Login
	}
	if c.Routes.Landing == "" {
		c.Routes.Landing = d.Routes.Landing
	}
	if c.Routes.RedirectParam == "" {
		c.Routes.RedirectParam = d.Routes.RedirectParam
	}
	if c.Audit.BufferSize <= 0 {
		c.Audit.BufferSize = d.Audit.BufferSize
	}
}

func (c Config) validate() error {
	if !c.Session.DefaultRole.Valid() {
		return fmt.Errorf("invalid default role %q", c.Session.DefaultRole)
	}
	if !c.Session.DefaultPersist.Valid() {
		return fmt.Errorf("invalid default persistence mode %q", c.Session.DefaultPersist)
	}
	if c.Routes.Login == c.Routes.Landing {
		return fmt.Errorf("login and landing routes must differ (%q)", c.Routes.Login)
	}
	return nil
}
