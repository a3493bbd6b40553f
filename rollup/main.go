package main

import (
	"fmt"
	"os"

	"github.com/ghetzel/cli"
	"github.com/ghetzel/go-stockutil/log"
	"github.com/ghetzel/rollup"
	"github.com/ghetzel/rollup/aggregations"
	"github.com/ghetzel/rollup/dal"
	"github.com/ghetzel/rollup/dialects"
)

func main() {
	app := cli.NewApp()
	app.Name = rollup.ApplicationName
	app.Usage = rollup.ApplicationSummary
	app.Version = rollup.ApplicationVersion
	app.EnableBashCompletion = false

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   `log-level, L`,
			Usage:  `Level of log output verbosity`,
			Value:  `info`,
			EnvVar: `LOGLEVEL`,
		},
	}

	app.Before = func(c *cli.Context) error {
		log.SetLevelString(c.String(`log-level`))
		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      `compile`,
			Usage:     `Print the SQL select fragment compiled for a column.`,
			ArgsUsage: `FIELD_EXPR [FIELD_EXPR ..]`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  `dialect, d`,
					Usage: `The SQL dialect to compile for.`,
					Value: `sqlite`,
				},
				cli.StringFlag{
					Name:  `connection, c`,
					Usage: `A connection string URI to resolve the dialect from (supercedes --dialect).`,
				},
				cli.StringFlag{
					Name:  `type, t`,
					Usage: `The column type (numeric, text, timestamp, longtext).`,
					Value: `text`,
				},
				cli.StringFlag{
					Name:  `aggregation, a`,
					Usage: `The aggregation to apply to the column (empty for none).`,
				},
				cli.StringSliceFlag{
					Name:  `alias, A`,
					Usage: `The result alias for each field expression, in order.`,
				},
			},
			Action: func(c *cli.Context) {
				var dialect dialects.Dialect

				if cs := c.String(`connection`); cs != `` {
					if conn, err := dal.ParseConnectionString(cs); err == nil {
						if d, driver, dsn, err := dialects.FromConnectionString(conn); err == nil {
							dialect = d
							log.Debugf("resolved %v dialect (driver=%s dsn=%s)", d.Name(), driver, dsn)
						} else {
							log.Fatal(err)
						}
					} else {
						log.Fatalf("invalid connection string: %v", err)
					}
				} else if d, err := dialects.Get(c.String(`dialect`)); err == nil {
					dialect = d
				} else {
					log.Fatal(err)
				}

				fields := c.Args()

				if len(fields) == 0 {
					log.Fatalf("must specify at least one field expression")
				}

				aliases := c.StringSlice(`alias`)

				// default the aliases to the field expressions themselves
				if len(aliases) == 0 {
					aliases = fields
				}

				column := &dal.Column{
					Name:        `column`,
					Fields:      fields,
					Aliases:     aliases,
					Type:        dal.ColumnType(c.String(`type`)),
					Aggregation: c.String(`aggregation`),
				}

				if compiled, err := rollup.NewCompiler(dialect).CompileColumn(column); err == nil {
					fmt.Println(compiled)
				} else {
					log.Fatal(err)
				}
			},
		}, {
			Name:  `dialects`,
			Usage: `List the supported SQL dialects.`,
			Action: func(_ *cli.Context) {
				for _, name := range dialects.All() {
					fmt.Println(name)
				}
			},
		}, {
			Name:  `aggregations`,
			Usage: `List the supported aggregation variants.`,
			Action: func(_ *cli.Context) {
				for _, identifier := range aggregations.All() {
					if aggregation, err := aggregations.Get(identifier); err == nil {
						fmt.Printf("%s\t%s\n", identifier, aggregation.Name())
					}
				}
			},
		},
	}

	app.Run(os.Args)
}
