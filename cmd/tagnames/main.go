// Command tagnames manages the list of tag names offered by editing tools.
//
// Usage:
//
//	tagnames [-config file] list
//	tagnames [-config file] add NAME...
//	tagnames [-config file] destroy NAME
//	tagnames [-config file] suggest INPUT [LIMIT]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	"github.com/aryszka/multitag/config"
	"github.com/aryszka/multitag/names"
)

var (
	errUsage = errors.New("usage: tagnames [-config file] list|add NAME...|destroy NAME|suggest INPUT [LIMIT]")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	nameStyle   = lipgloss.NewStyle().PaddingLeft(2)
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("tagnames", flag.ContinueOnError)
	configPath := fs.String("config", os.Getenv("MULTITAG_CONFIG"), "path to a YAML or keyval configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() == 0 {
		return errUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	cache, err := names.New(names.Options{
		SinkOptions: cfg.SinkOptions(),
		Logger:      cfg.Logger(),
	})
	if err != nil {
		return fmt.Errorf("open tag names: %w", err)
	}

	defer cache.Close()
	return execute(cache, fs.Args(), out)
}

func execute(cache *names.Cache, args []string, out io.Writer) error {
	switch args[0] {
	case "list":
		if len(args) != 1 {
			return errUsage
		}

		return render(out, "tag names", cache.All())
	case "add":
		if len(args) < 2 {
			return errUsage
		}

		if err := cache.Add(args[1:]...); err != nil {
			return err
		}

		return render(out, "tag names", cache.All())
	case "destroy":
		if len(args) != 2 {
			return errUsage
		}

		if err := cache.Destroy(args[1]); err != nil {
			return err
		}

		return render(out, "tag names", cache.All())
	case "suggest":
		if len(args) < 2 || len(args) > 3 {
			return errUsage
		}

		limit := 5
		if len(args) == 3 {
			l, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid limit: %w", err)
			}

			limit = l
		}

		return render(out, "suggestions", cache.Suggest(args[1], limit))
	default:
		return errUsage
	}
}

func render(out io.Writer, title string, list []string) error {
	if _, err := fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("%s (%d)", title, len(list)))); err != nil {
		return err
	}

	for _, n := range list {
		if _, err := fmt.Fprintln(out, nameStyle.Render(n)); err != nil {
			return err
		}
	}

	return nil
}
