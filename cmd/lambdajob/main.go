package main

import (
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/josenarvaezp/gluego/internal/config"
	"github.com/josenarvaezp/gluego/internal/lambdas"
	"github.com/josenarvaezp/gluego/internal/logs"
	log "github.com/sirupsen/logrus"
)

var handler *lambdas.JobHandler

func init() {
	conf, err := config.Load(os.Getenv("GLUEGO_CONFIG"))
	if err != nil {
		log.WithError(err).Fatal("Error reading config file")
	}

	// lambda filesystems are read only outside /tmp
	if os.Getenv("GLUEGO_BOOKMARK_DIR") != "" {
		conf.BookmarkDir = os.Getenv("GLUEGO_BOOKMARK_DIR")
	} else if conf.BookmarkBucket == "" {
		conf.BookmarkDir = "/tmp/gluego/bookmarks"
	}

	// set logger
	log.SetLevel(logs.ConfigLogLevelToLevel(conf.LogLevel))
	log.SetFormatter(&log.JSONFormatter{})

	handler = lambdas.NewJobHandler(conf)
}

func main() {
	lambda.Start(handler.Handle)
}
