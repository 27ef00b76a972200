package core

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/reflectdiary/diary-api/app/store/sqlstore"
	"github.com/reflectdiary/diary-api/pkg/utils"
)

type Core struct {
	cfg CoreConfig

	stores     func() *sqlstore.Provider
	httpEngine *gin.Engine

	metrics *Metrics

	limiterMu sync.Mutex
	limiters  map[string]*rate.Limiter
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	utils.SetupIDWorker(1)

	core := &Core{
		cfg:      cfg,
		metrics:  NewMetrics("diary_api", "core"),
		limiters: make(map[string]*rate.Limiter),
	}

	setupSqlStore(core)

	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Database)
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) HttpEngine() *gin.Engine {
	if s.httpEngine == nil {
		s.httpEngine = gin.New()
		s.httpEngine.Use(gin.Recovery())
	}
	return s.httpEngine
}

// UseLimiter returns the per-key limiter for an operation. ratelimit is
// the allowed number of events per minute.
func (s *Core) UseLimiter(key string, operation string, ratelimit int) *rate.Limiter {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()

	mapKey := operation + ":" + key
	l, exist := s.limiters[mapKey]
	if !exist {
		limit := rate.Every(time.Minute / time.Duration(ratelimit))
		l = rate.NewLimiter(limit, ratelimit*2)
		s.limiters[mapKey] = l
	}
	return l
}
