package http

import (
	"time"

	notificationServices "github.com/civicdesk/civicdesk/internal/application/notification/services"
	userUsecases "github.com/civicdesk/civicdesk/internal/application/user/usecases"
	"github.com/civicdesk/civicdesk/internal/domain/shared/events"
	"github.com/civicdesk/civicdesk/internal/infrastructure/auth"
	"github.com/civicdesk/civicdesk/internal/infrastructure/cache"
	"github.com/civicdesk/civicdesk/internal/infrastructure/email"
	"github.com/civicdesk/civicdesk/internal/infrastructure/messaging"
	"github.com/civicdesk/civicdesk/internal/infrastructure/permission"
	"github.com/civicdesk/civicdesk/internal/infrastructure/ratelimit"
	infraServices "github.com/civicdesk/civicdesk/internal/infrastructure/services"
	"github.com/civicdesk/civicdesk/internal/infrastructure/storage"
	"github.com/civicdesk/civicdesk/internal/shared/services/markdown"
)

const (
	oauthStateTTL        = 10 * time.Minute
	oauthStateKeyPrefix  = "civicdesk:oauth_state:"
	revokedSessionPrefix = "civicdesk:session:revoked:"
	eventDispatcherQueue = 256
)

// services holds infrastructure services shared by several use cases.
type services struct {
	jwt         *auth.JWTService
	hasher      *auth.BcryptPasswordHasher
	google      *auth.GoogleOAuthClient
	stateStore  userUsecases.StateStore
	sessions    cache.SessionStore
	imageStore  *storage.LocalImageStore
	renderer    markdown.Renderer
	idGenerator *infraServices.ComplaintIDGenerator
	enforcer    *permission.Enforcer
	rateLimiter ratelimit.RateLimiter
}

func (c *Container) initServices() error {
	cfg := c.cfg
	s := &services{
		jwt:         auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes, cfg.Auth.JWT.RefreshExpDays),
		hasher:      auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		imageStore:  storage.NewLocalImageStore(cfg.Storage.MediaRoot, cfg.Storage.MediaURL, cfg.Storage.MaxUploadMB),
		renderer:    markdown.NewRenderer(),
		idGenerator: infraServices.NewComplaintIDGenerator(c.db, cfg.Complaint.IDPrefix),
	}

	if cfg.OAuth.Google.Enabled() {
		s.google = auth.NewGoogleOAuthClient(auth.GoogleOAuthConfig{
			ClientID:     cfg.OAuth.Google.ClientID,
			ClientSecret: cfg.OAuth.Google.ClientSecret,
			RedirectURL:  cfg.OAuth.Google.RedirectURL,
		})
	}

	policy := ratelimit.Policy{
		Requests: cfg.RateLimit.Requests,
		Window:   time.Duration(cfg.RateLimit.WindowSeconds) * time.Second,
	}
	if c.redis != nil {
		s.stateStore = cache.NewRedisStateStore(c.redis, oauthStateKeyPrefix, oauthStateTTL)
		s.sessions = cache.NewRedisSessionStore(c.redis, revokedSessionPrefix)
		if cfg.RateLimit.Enabled {
			s.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis, policy)
		}
	} else {
		s.stateStore = cache.NewMemoryStateStore(oauthStateTTL)
		s.sessions = cache.NewMemorySessionStore()
		if cfg.RateLimit.Enabled {
			s.rateLimiter = ratelimit.NewMemoryRateLimiter(policy)
		}
	}

	enforcer, err := permission.NewEnforcer(c.db, c.log.Named("permission"))
	if err != nil {
		return err
	}
	if err := enforcer.SeedDefaults(); err != nil {
		return err
	}
	s.enforcer = enforcer

	c.svcs = s
	c.dispatcher = events.NewInMemoryEventDispatcher(eventDispatcherQueue, c.log.Named("events"))
	return c.initNotifier()
}

// initNotifier subscribes the complaint notifier to the dispatcher. Disabled sinks
// are passed as untyped nil so the notifier can tell they are absent.
func (c *Container) initNotifier() error {
	var mailer notificationServices.MailSender
	if c.cfg.Email.Enabled {
		mailer = email.NewSMTPEmailService(email.SMTPConfig{
			Host:        c.cfg.Email.SMTPHost,
			Port:        c.cfg.Email.SMTPPort,
			Username:    c.cfg.Email.SMTPUser,
			Password:    c.cfg.Email.SMTPPassword,
			FromAddress: c.cfg.Email.FromAddress,
			FromName:    c.cfg.Email.FromName,
			BaseURL:     c.cfg.Server.FrontendURL,
		})
	}

	var broker notificationServices.BrokerPublisher
	if c.cfg.AMQP.Enabled {
		broker = messaging.NewAMQPPublisher(c.cfg.AMQP.URL, c.cfg.AMQP.Queue)
	}

	notifier := notificationServices.NewComplaintNotifier(
		c.repos.notificationRepo,
		c.repos.userRepo,
		mailer,
		broker,
		c.log.Named("notifier"),
	)
	return notifier.Register(c.dispatcher)
}
