package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/lonng/taiserver/internal/hooks"
	"github.com/lonng/taiserver/internal/web"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()

	// base application info
	app.Name = "taiserver"
	app.Author = "MaJong"
	app.Version = "0.1.0"
	app.Copyright = "majong team reserved"
	app.Usage = "mahjong hu and tai evaluation server"

	// flags
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "./configs/config.toml",
			Usage: "load configuration from `FILE`",
		},
		cli.BoolFlag{
			Name:  "cpuprofile",
			Usage: "enable cpu profile",
		},
	}

	app.Before = setup
	app.Action = serve
	app.Commands = []cli.Command{
		{
			Name:   "serve",
			Usage:  "run the http evaluation service",
			Action: serve,
		},
		evalCommand,
		dealCommand,
		syncRulesCommand,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setup(c *cli.Context) error {
	viper.SetConfigType("toml")
	viper.SetConfigFile(c.String("config"))
	if err := viper.ReadInConfig(); err != nil {
		log.Warnf("read config %s failed, use defaults: %v", c.String("config"), err)
	}

	log.SetFormatter(&log.TextFormatter{DisableColors: true})
	if viper.GetBool("core.debug") {
		log.SetLevel(log.DebugLevel)
	}
	if viper.GetBool("core.log_source") {
		log.AddHook(hooks.NewHook())
	}
	return nil
}

func serve(c *cli.Context) error {
	if c.GlobalBool("cpuprofile") {
		filename := fmt.Sprintf("cpuprofile-%d.pprof", time.Now().Unix())
		f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE, os.ModePerm)
		if err != nil {
			return err
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	return web.Startup()
}
