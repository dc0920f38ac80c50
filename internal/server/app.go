package server

import (
	"errors"

	"retailpos/internal/handler"

	"github.com/urfave/cli/v2"
)

// NewApp builds the pos command line. The store is opened once the global
// flags are parsed and closed when the command returns.
func NewApp(d Deps) *cli.App {
	uc := &handler.Usecases{}
	var closeFn func() error

	productH := handler.NewProductHandler(uc)
	saleH := handler.NewSaleHandler(uc)
	reportH := handler.NewReportHandler(uc)
	importH := handler.NewImportHandler(uc)
	shellH := handler.NewShellHandler(uc)

	commands := []*cli.Command{productH.Command(), saleH.Command()}
	commands = append(commands, reportH.Commands()...)
	commands = append(commands, importH.Command(), shellH.Command())

	return &cli.App{
		Name:  "pos",
		Usage: "point of sale for a single shop",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data-dir",
				Usage: "directory holding the catalog and sales files",
				Value: d.Config.DataDir,
			},
		},
		Commands: commands,
		Before: func(c *cli.Context) error {
			cfg := d.Config
			cfg.DataDir = c.String("data-dir")
			built, closer, err := Open(c.Context, cfg, d)
			if err != nil {
				return err
			}
			*uc = *built
			closeFn = closer
			return nil
		},
		After: func(c *cli.Context) error {
			if closeFn == nil {
				return nil
			}
			return closeFn()
		},
		// main prints the error and picks the exit status
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

// ExitCode is the process status for an error returned by the app.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return handler.ExitCode(err)
}
