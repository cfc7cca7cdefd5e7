package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-clocale"
)

type infoConfig struct {
	format string
	name   string
	env    bool
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "locale-info: %v\n", err)
	os.Exit(1)
}

func parseFlags() (infoConfig, error) {
	var cfg infoConfig

	flag.StringVar(&cfg.format, "o", "text", "output format: text, table, json or yaml")
	flag.StringVar(&cfg.name, "set", "", "select this default locale before reporting")
	flag.BoolVar(&cfg.env, "env", false, "select the default locale from LC_ALL/LC_CTYPE/LANG")

	flag.Parse()

	switch cfg.format {
	case "text", "table", "json", "yaml":
	default:
		return infoConfig{}, fmt.Errorf("unknown output format %q", cfg.format)
	}

	return cfg, nil
}

type report struct {
	Name     string        `json:"name" yaml:"name"`
	MBCurMax int           `json:"mb_cur_max" yaml:"mb_cur_max"`
	Lconv    *locale.Lconv `json:"lconv" yaml:"lconv"`
}

func run(cfg infoConfig) error {
	if cfg.env {
		if _, ok := locale.SetNative(); !ok {
			if name, value := locale.CtypeVar(); name != "" {
				return fmt.Errorf("the locale requested by %s=%s isn't available here", name, value)
			}
			return errors.New("no locale environment variables are set")
		}
	}

	if cfg.name != "" {
		if _, err := locale.Setlocale(locale.All, cfg.name); err != nil {
			return fmt.Errorf("set %q: %w (errno %d)", cfg.name, err, int(locale.Errno(err)))
		}
	}

	name, err := locale.Query(locale.All)
	if err != nil {
		return err
	}

	rep := report{
		Name:     name,
		MBCurMax: locale.MBCurMax(locale.Global),
		Lconv:    locale.Localeconv(),
	}

	switch cfg.format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(rep)
	case "table":
		renderTable(rep)
		return nil
	}

	renderText(rep)
	return nil
}

func renderText(rep report) {
	fmt.Printf("locale: %s\n", rep.Name)
	fmt.Printf("MB_CUR_MAX: %d\n", rep.MBCurMax)
	fmt.Printf("decimal_point: %q\n", rep.Lconv.DecimalPoint)
	fmt.Printf("thousands_sep: %q\n", rep.Lconv.ThousandsSep)
	fmt.Printf("grouping: %q\n", rep.Lconv.Grouping)
	fmt.Printf("currency_symbol: %q\n", rep.Lconv.CurrencySymbol)
	fmt.Printf("frac_digits: %d\n", rep.Lconv.FracDigits)
}

func renderTable(rep report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)

	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"locale", rep.Name},
		{"MB_CUR_MAX", rep.MBCurMax},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"decimal_point", fmt.Sprintf("%q", rep.Lconv.DecimalPoint)},
		{"thousands_sep", fmt.Sprintf("%q", rep.Lconv.ThousandsSep)},
		{"grouping", fmt.Sprintf("%q", rep.Lconv.Grouping)},
		{"int_curr_symbol", fmt.Sprintf("%q", rep.Lconv.IntCurrSymbol)},
		{"currency_symbol", fmt.Sprintf("%q", rep.Lconv.CurrencySymbol)},
		{"mon_decimal_point", fmt.Sprintf("%q", rep.Lconv.MonDecimalPoint)},
		{"positive_sign", fmt.Sprintf("%q", rep.Lconv.PositiveSign)},
		{"negative_sign", fmt.Sprintf("%q", rep.Lconv.NegativeSign)},
		{"int_frac_digits", rep.Lconv.IntFracDigits},
		{"frac_digits", rep.Lconv.FracDigits},
		{"p_sign_posn", rep.Lconv.PSignPosn},
		{"n_sign_posn", rep.Lconv.NSignPosn},
	})

	t.SetStyle(table.StyleRounded)
	t.Render()
}
