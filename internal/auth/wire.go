package auth

import (
	"database/sql"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/auth/repository"
	"github.com/ChoneChone22/bambite-storefront/internal/config"
	"github.com/ChoneChone22/bambite-storefront/internal/token"
)

type Module struct {
	Controller *Controller
	Middleware *Middleware
	Sessions   SessionManager
	Users      UserRepository
}

func NewModule(db *sql.DB, rdb *goredis.Client, cfg config.AuthConfig, logger *zap.Logger) *Module {
	users := repository.NewMySQLUserRepository(db)
	sessions := token.NewManager(rdb, cfg.SessionTTL)
	resets := NewRedisResetStore(rdb, cfg.OTPTTL, cfg.ResetTokenTTL)
	sender := NewLogSender(logger)

	svc := NewService(users, sessions, resets, sender, cfg, logger)

	return &Module{
		Controller: NewController(svc, cfg.SessionTTL, logger),
		Middleware: NewMiddleware(sessions, logger),
		Sessions:   sessions,
		Users:      users,
	}
}
