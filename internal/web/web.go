package web

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/lonng/nex"
	"github.com/lonng/taiserver/db"
	"github.com/lonng/taiserver/internal/rule"
	"github.com/lonng/taiserver/internal/web/api"
	"github.com/lonng/taiserver/pkg/algoutil"
	"github.com/lonng/taiserver/pkg/errutil"
	"github.com/lonng/taiserver/pkg/whitelist"
	"github.com/lonng/taiserver/protocol"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var (
	logger   = log.WithField("component", "http")
	nexSetup sync.Once
)

// DBStartup connects to the configured database.
func DBStartup() func() {
	dsn := db.BuildDSN(
		viper.GetString("database.host"),
		viper.GetInt("database.port"),
		viper.GetString("database.username"),
		viper.GetString("database.password"),
		viper.GetString("database.dbname"),
		viper.GetString("database.args"))

	return db.MustStartup(
		dsn,
		db.MaxIdleConns(viper.GetInt("database.max_idle_conns")),
		db.MaxOpenConns(viper.GetInt("database.max_open_conns")),
		db.ShowSQL(viper.GetBool("database.show_sql")))
}

// RuleProvider picks where rulesets come from according to rule.source. The
// returned closer releases the database when one was opened.
func RuleProvider() (rule.Provider, func(), error) {
	switch source := viper.GetString("rule.source"); source {
	case "", "config":
		return rule.NewConfigProvider(viper.GetViper()), func() {}, nil
	case "database":
		closer := DBStartup()
		return &db.Rulesets{Default: rule.DefaultRuleset(viper.GetViper())}, closer, nil
	default:
		return nil, nil, errors.Wrapf(errutil.ErrIllegalRuleSource, "%q", source)
	}
}

func pongHandler() (string, error) {
	return "pong", nil
}

func logRequest(ctx context.Context, r *http.Request) (context.Context, error) {
	if uri := r.RequestURI; uri != "/ping" {
		logger.Debugf("RequestID=%s Method=%s, RemoteAddr=%s URL=%s", uuid.New(), r.Method, r.RemoteAddr, uri)
	}
	return ctx, nil
}

func encodeError(err error) interface{} {
	logger.Warnf("Result=Failed, Error=%v", err)
	return &protocol.ErrorResponse{
		Code:  errutil.Code(err),
		Error: err.Error(),
	}
}

func ipFilter(list *whitelist.List) nex.BeforeFunc {
	return func(ctx context.Context, r *http.Request) (context.Context, error) {
		if !list.Verify(r.RemoteAddr) {
			return ctx, errutil.ErrPermissionDenied
		}
		return ctx, nil
	}
}

// startupService builds the http handler. A nil list lets every address in.
func startupService(rules rule.Provider, list *whitelist.List) http.Handler {
	nexSetup.Do(func() {
		nex.Before(logRequest)
		nex.SetErrorEncoder(encodeError)
	})

	var filter nex.BeforeFunc
	if list != nil {
		filter = ipFilter(list)
	}

	mux := http.NewServeMux()
	mux.Handle("/v1/hu/", api.MakeHuService(rules, filter))
	mux.Handle("/ping", nex.Handler(pongHandler))

	return algoutil.AccessControl(viper.GetString("webserver.allow_origin"), algoutil.OptionControl(mux))
}

func Startup() error {
	rules, closer, err := RuleProvider()
	if err != nil {
		return err
	}
	defer closer()

	var list *whitelist.List
	if ips := viper.GetStringSlice("webserver.whitelist"); len(ips) > 0 {
		if list, err = whitelist.New(ips); err != nil {
			return err
		}
	}

	addr := viper.GetString("webserver.addr")
	logger.Infof("Web service addr: %s, rule source: %s", addr, viper.GetString("rule.source"))

	server := &http.Server{Addr: addr, Handler: startupService(rules, list)}
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	sg := make(chan os.Signal, 1)
	signal.Notify(sg, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)
	// stop server
	select {
	case s := <-sg:
		log.Infof("got signal: %s", s.String())
	}
	return server.Shutdown(context.Background())
}
