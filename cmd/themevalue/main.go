package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	jsoniter "github.com/json-iterator/go"

	"github.com/go-leo/themevalue/decorator"
	"github.com/go-leo/themevalue/valueobject"
)

var errUsage = errors.New("usage")

// Usage is a replacement usage function for the flags package.
func Usage() {
	fmt.Fprintf(os.Stderr, "Usage of themevalue:\n")
	fmt.Fprintf(os.Stderr, "\tthemevalue date <unix seconds>\n")
	fmt.Fprintf(os.Stderr, "\tthemevalue date -json '{\"day\":\"15\",\"month\":\"08\",\"year\":\"2023\"}'\n")
	fmt.Fprintf(os.Stderr, "\tthemevalue file '{\"size\":\"123\",\"mime\":\"pdf\",\"name\":\"Test.pdf\",\"url\":\"http://example.com/test.pdf\"}'\n")
	fmt.Fprintf(os.Stderr, "Environment:\n")
	fmt.Fprintf(os.Stderr, "\tTHEMEVALUE_TIMEZONE, THEMEVALUE_VARIANT, THEMEVALUE_LANGUAGE\n")
	flag.PrintDefaults()
}

func main() {
	variant := flag.String("variant", "", "variant applied to the date")
	flag.Usage = Usage
	flag.Parse()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}

	if err := run(cfg, flag.Args(), *variant, os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			flag.Usage()
			os.Exit(2)
		}
		slog.Error("Failed to build value object", "err", err)
		os.Exit(1)
	}
}

func run(cfg *Config, args []string, variant string, w io.Writer) error {
	if len(args) < 2 {
		return errUsage
	}
	var vo valueobject.ValueObject
	switch args[0] {
	case "date":
		date, err := buildDate(cfg, args[1:])
		if err != nil {
			return err
		}
		var decorators []decorator.Decorator[*valueobject.Date]
		if variant != "" {
			decorators = append(decorators, valueobject.SetVariant(variant))
		}
		vo = decorator.Chain(date, decorators...)
	case "file":
		file, err := valueobject.FileFromJSON([]byte(args[1]))
		if err != nil {
			return err
		}
		vo = decorator.Chain(file, valueobject.DefaultLanguageCode(cfg.Language))
	default:
		return errUsage
	}
	slog.Debug("built value object", "kind", args[0], "fields", len(vo.Keys()))
	return jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w).Encode(vo)
}

func buildDate(cfg *Config, args []string) (*valueobject.Date, error) {
	opts, err := cfg.dateOptions()
	if err != nil {
		return nil, err
	}
	if args[0] == "-json" {
		if len(args) < 2 {
			return nil, errUsage
		}
		return valueobject.DateFromJSON([]byte(args[1]), opts...)
	}
	return valueobject.DateFromTimestamp(args[0], opts...)
}
