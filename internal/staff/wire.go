package staff

import (
	"database/sql"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	authrepo "github.com/ChoneChone22/bambite-storefront/internal/auth/repository"
	"github.com/ChoneChone22/bambite-storefront/internal/config"
	"github.com/ChoneChone22/bambite-storefront/internal/token"
)

func NewModule(db *sql.DB, rdb *goredis.Client, cfg config.AuthConfig, logger *zap.Logger) *Controller {
	users := authrepo.NewMySQLUserRepository(db)
	sessions := token.NewManager(rdb, cfg.SessionTTL)
	svc := NewService(users, sessions, cfg.BcryptCost, logger)
	return NewController(svc, logger)
}
