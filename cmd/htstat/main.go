package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/hashtable/internal/config"
	"github.com/gostonefire/hashtable/internal/logger"
	"os"
)

func main() {
	configFile := flag.String("config", "", "path of an optional config file, HTSTAT_* environment variables take precedence")
	flag.Parse()

	conf, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logger.New(os.Stdout, conf.AppName, conf.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err = run(conf, log); err != nil {
		log.Error().Err(err).Msg("htstat failed")
		os.Exit(1)
	}
}
