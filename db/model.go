package db

import (
	"time"

	"github.com/lonng/taiserver/db/model"

	_ "github.com/go-sql-driver/mysql"
	"github.com/go-xorm/xorm"
	log "github.com/sirupsen/logrus"
)

const defaultMaxConns = 10

var (
	DB     *xorm.Engine
	logger = log.WithField("component", "model")
)

type options struct {
	showSQL      bool
	maxOpenConns int
	maxIdleConns int
}

// ModelOption specifies an option for dialing the database.
type ModelOption func(*options)

// MaxIdleConns specifies the max idle connect numbers.
func MaxIdleConns(i int) ModelOption {
	return func(opts *options) {
		opts.maxIdleConns = i
	}
}

// MaxOpenConns specifies the max open connect numbers.
func MaxOpenConns(i int) ModelOption {
	return func(opts *options) {
		opts.maxOpenConns = i
	}
}

func ShowSQL(show bool) ModelOption {
	return func(opts *options) {
		opts.showSQL = show
	}
}

// MustStartup connects to dsn and syncs the schema. It panics on failure and
// returns the function that closes the connection.
func MustStartup(dsn string, opts ...ModelOption) func() {
	settings := &options{
		maxIdleConns: defaultMaxConns,
		maxOpenConns: defaultMaxConns,
	}

	for _, opt := range opts {
		opt(settings)
	}

	logger.Infof("ShowSQL=%t MaxIdleConn=%v MaxOpenConn=%v", settings.showSQL, settings.maxIdleConns, settings.maxOpenConns)

	db, err := xorm.NewEngine("mysql", dsn)
	if err != nil {
		panic(err)
	}
	DB = db

	// 设置日志相关
	DB.SetLogger(NewLogger(logger.WithField("orm", "xorm"), settings.showSQL))

	DB.SetMaxIdleConns(settings.maxIdleConns)
	DB.SetMaxOpenConns(settings.maxOpenConns)
	DB.ShowSQL(settings.showSQL)

	if err := syncSchema(); err != nil {
		panic(err)
	}

	// 定时ping数据库, 保持连接池连接
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Minute * 5)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := DB.Ping(); err != nil {
					logger.Error(err)
				}
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		DB.Close()
		logger.Info("stopped")
	}
}

func syncSchema() error {
	return DB.StoreEngine("InnoDB").Sync2(
		new(model.ScoreTai),
	)
}
