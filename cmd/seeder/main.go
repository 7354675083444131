// cmd/seeder/main.go
package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/unclebandit/customerdesk/internal/config"
	"github.com/unclebandit/customerdesk/internal/db"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "seeder",
		Usage: "Create the customer desk schema and load sample data",
		Commands: []*cli.Command{
			{
				Name:  "migrate",
				Usage: "Create tables that do not exist yet",
				Action: withDB(func(c *cli.Context, pool *sql.DB) error {
					if err := db.Migrate(c.Context, pool); err != nil {
						return err
					}
					fmt.Println("Schema is up to date")
					return nil
				}),
			},
			{
				Name:  "seed",
				Usage: "Load sample companies, employees, customers and assignments",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "migrate", Usage: "create missing tables first", Value: true},
				},
				Action: withDB(func(c *cli.Context, pool *sql.DB) error {
					if c.Bool("migrate") {
						if err := db.Migrate(c.Context, pool); err != nil {
							return err
						}
					}
					if err := db.Seed(c.Context, pool); err != nil {
						return err
					}
					fmt.Println("Database seeding completed successfully!")
					return nil
				}),
			},
		},
	}
}

func withDB(action func(c *cli.Context, pool *sql.DB) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		pool, err := db.Open(config.Load())
		if err != nil {
			return err
		}
		defer pool.Close()
		return action(c, pool)
	}
}
