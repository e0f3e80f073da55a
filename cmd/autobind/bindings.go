package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/omarluq/autobind/bind"
	"github.com/omarluq/autobind/cmd/autobind/di"
	"github.com/omarluq/autobind/registry"
	"github.com/omarluq/autobind/scan"

	// Demo modules declare themselves into the default catalog on import.
	_ "github.com/omarluq/autobind/examples/greeter"
	_ "github.com/omarluq/autobind/examples/mailer"
)

var (
	policyFlag  string
	workersFlag int
	formatFlag  string
)

var bindingsCmd = &cobra.Command{
	Use:   "bindings",
	Short: "Run registration and print the resulting bindings",
	Long: `Run marker-driven registration over every module linked into this binary
and print the bindings it produced.`,
	RunE: runBindings,
}

func init() {
	bindingsCmd.Flags().StringVar(&policyFlag, "policy", "",
		"abstraction derivation policy: marker or convention (overrides config)")
	bindingsCmd.Flags().IntVar(&workersFlag, "workers", 0,
		"max modules scanned in parallel (overrides config)")
	bindingsCmd.Flags().StringVar(&formatFlag, "format", "table",
		"output format: table or json")
	rootCmd.AddCommand(bindingsCmd)
}

func runBindings(_ *cobra.Command, _ []string) error {
	configPath := cfgFile
	if configPath == "" {
		configPath = findConfigFile()
	}

	container, err := di.NewContainer(configPath)
	if err != nil {
		return err
	}
	defer func() {
		_ = container.Shutdown()
	}()

	if policyFlag != "" {
		do.ProvideNamedValue(container.Injector(), di.PolicyOverrideKey, policyFlag)
	}
	if workersFlag > 0 {
		do.ProvideNamedValue(container.Injector(), di.WorkersOverrideKey, workersFlag)
	}

	loggerSvc, err := di.Invoke[*di.LoggerService](container)
	if err != nil {
		return err
	}
	logger := *loggerSvc.Logger
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger
	scan.SetLogger(&logger)
	bind.SetLogger(&logger)

	driverSvc, err := di.Invoke[*di.DriverService](container)
	if err != nil {
		return err
	}
	regSvc, err := di.Invoke[*di.RegistryService](container)
	if err != nil {
		return err
	}

	reg, err := driverSvc.Driver.RegisterAll(regSvc.Registry)
	if err != nil {
		// Partial results are still worth printing; surface the scan
		// failures after.
		log.Error().Err(err).Msg("some modules failed to register")
	}

	if perr := printBindings(reg.Bindings()); perr != nil {
		return perr
	}
	return err
}

type bindingRow struct {
	Abstraction string `json:"abstraction"`
	Concrete    string `json:"concrete"`
	Lifetime    string `json:"lifetime"`
}

func printBindings(bindings []registry.Binding) error {
	rows := lo.Map(bindings, func(b registry.Binding, _ int) bindingRow {
		return bindingRow{
			Abstraction: b.Abstraction.String(),
			Concrete:    b.Concrete.String(),
			Lifetime:    b.Lifetime.String(),
		}
	})

	switch formatFlag {
	case "json":
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case "", "table":
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ABSTRACTION\tCONCRETE\tLIFETIME")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\n", r.Abstraction, r.Concrete, r.Lifetime)
		}
		if err := w.Flush(); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format %q (valid: table, json)", formatFlag)
	}
	return nil
}
