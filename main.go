package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Brundha-2004/smartspend/pkg/budgetalert"
	"github.com/Brundha-2004/smartspend/pkg/mailer"
	"github.com/Brundha-2004/smartspend/pkg/monthsum"

	"github.com/gin-gonic/gin"
)

var (
	cfg       *Config
	jwtSecret []byte

	mail      *mailer.Mailer
	alerts    *budgetalert.Evaluator
	summaries *monthsum.Aggregator
)

func main() {
	cfg = loadConfig()
	jwtSecret = []byte(cfg.JWTSecret)

	// Support a lightweight migrate command: `./smartspend migrate`
	// It runs AutoMigrate and exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		cfg.AutoMigrate = true
		initDB()
		fmt.Println("migration completed")
		return
	}

	initDB()
	initServices()

	r := gin.Default()

	setupRoutes(r)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}

func initServices() {
	var err error
	mail, err = mailer.New(cfg.Mail)
	if err != nil {
		log.Fatal("failed to build mailer:", err)
	}
	store := dbStore{}
	alerts = budgetalert.New(store, mail, cfg.AlertDedupe)
	summaries = monthsum.New(store, store)
}
