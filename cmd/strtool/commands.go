package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/rkleemann/strtools/profile"
	"github.com/rkleemann/strtools/stitch"
	"github.com/rkleemann/strtools/subst"
	"github.com/rkleemann/strtools/trim"
)

// profileFlag returns a fresh profile flag. Every command carries its
// own instance because parsed values live on the flag.
func profileFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:    "profile",
		Aliases: []string{"p"},
		Usage:   "profile file installing the blank class, separator, and variable grammar",
	}
}

// installProfile loads and installs the profile named by --profile, if
// any.
func installProfile(cmd *cli.Command) error {
	path := cmd.String("profile")
	if path == "" {
		return nil
	}
	p, err := profile.FromFile(path)
	if err != nil {
		return err
	}
	return p.Install()
}

// argOrStdin returns the first positional argument, or all of stdin
// when no argument is given, so the commands work as filters.
func argOrStdin(cmd *cli.Command) (string, error) {
	if args := cmd.Args().Slice(); len(args) > 0 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// parseBindings turns repeated name=value flags into one binding set.
func parseBindings(pairs []string) (subst.Bindings, error) {
	bound := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		name, val, ok := strings.Cut(pair, "=")
		if !ok {
			return subst.Bindings{}, fmt.Errorf("binding %q is not name=value", pair)
		}
		bound[name] = val
	}
	return subst.Map(bound), nil
}

var substCommand = &cli.Command{
	Name:      "subst",
	Usage:     "substitute bound variables into a template",
	ArgsUsage: "[template]",
	Flags: []cli.Flag{
		profileFlag(),
		&cli.StringSliceFlag{
			Name:    "var",
			Aliases: []string{"v"},
			Usage:   "bind a variable as name=value (repeatable)",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if err := installProfile(cmd); err != nil {
			return err
		}
		template, err := argOrStdin(cmd)
		if err != nil {
			return err
		}
		bindings, err := parseBindings(cmd.StringSlice("var"))
		if err != nil {
			return err
		}
		fmt.Println(subst.Expand(template, bindings))
		return nil
	},
}

var varsCommand = &cli.Command{
	Name:      "vars",
	Usage:     "list the variables a template references",
	ArgsUsage: "[template]",
	Flags:     []cli.Flag{profileFlag()},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if err := installProfile(cmd); err != nil {
			return err
		}
		template, err := argOrStdin(cmd)
		if err != nil {
			return err
		}
		for _, name := range subst.Vars(template) {
			fmt.Println(name)
		}
		return nil
	},
}

var trimCommand = &cli.Command{
	Name:      "trim",
	Usage:     "trim lead and rear patterns from text",
	ArgsUsage: "[text]",
	Flags: []cli.Flag{
		profileFlag(),
		&cli.StringFlag{
			Name:  "lead",
			Usage: "lead pattern (defaults to a blank run; empty disables)",
		},
		&cli.StringFlag{
			Name:  "rear",
			Usage: "rear pattern (defaults to the lead; empty disables)",
		},
		&cli.BoolFlag{
			Name:    "lines",
			Aliases: []string{"l"},
			Usage:   "trim every line independently",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if err := installProfile(cmd); err != nil {
			return err
		}
		text, err := argOrStdin(cmd)
		if err != nil {
			return err
		}

		var opts []trim.Option
		if cmd.IsSet("lead") {
			opts = append(opts, trim.WithLead(cmd.String("lead")))
		}
		if cmd.IsSet("rear") {
			opts = append(opts, trim.WithRear(cmd.String("rear")))
		}
		t, err := trim.New(opts...)
		if err != nil {
			return err
		}

		if cmd.Bool("lines") {
			fmt.Println(t.TrimLines(text))
			return nil
		}
		fmt.Println(t.Trim(text))
		return nil
	},
}

var shrinkCommand = &cli.Command{
	Name:      "shrink",
	Usage:     "trim, then collapse every blank run to one separator",
	ArgsUsage: "[text]",
	Flags:     []cli.Flag{profileFlag()},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if err := installProfile(cmd); err != nil {
			return err
		}
		text, err := argOrStdin(cmd)
		if err != nil {
			return err
		}
		fmt.Println(trim.Shrink(text))
		return nil
	},
}

var stitchCommand = &cli.Command{
	Name:      "stitch",
	Usage:     "join items, suppressing the separator next to blanks",
	ArgsUsage: "item...",
	Flags: []cli.Flag{
		profileFlag(),
		&cli.StringFlag{
			Name:    "separator",
			Aliases: []string{"s"},
			Usage:   "separator for this call only",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if err := installProfile(cmd); err != nil {
			return err
		}
		args := cmd.Args().Slice()
		items := make([]any, 0, len(args))
		for _, arg := range args {
			items = append(items, arg)
		}
		if cmd.IsSet("separator") {
			fmt.Println(stitch.JoinWith(cmd.String("separator"), items...))
			return nil
		}
		fmt.Println(stitch.Join(items...))
		return nil
	},
}

var profileCommand = &cli.Command{
	Name:  "profile",
	Usage: "inspect and manage profile files",
	Commands: []*cli.Command{
		{
			Name:  "show",
			Usage: "print the effective profile as JSON",
			Flags: []cli.Flag{profileFlag()},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				p := profile.Default()
				if path := cmd.String("profile"); path != "" {
					var err error
					if p, err = profile.FromFile(path); err != nil {
						return err
					}
				}
				data, err := json.MarshalIndent(p, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			},
		},
		{
			Name:      "init",
			Usage:     "write the default profile to a file",
			ArgsUsage: "path",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				args := cmd.Args().Slice()
				if len(args) != 1 {
					return fmt.Errorf("expected exactly one path argument")
				}
				return profile.Default().Save(args[0])
			},
		},
		{
			Name:  "schema",
			Usage: "print the profile JSON Schema",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				data, err := json.MarshalIndent(profile.Schema(), "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			},
		},
		{
			Name:      "watch",
			Usage:     "follow a profile file, installing each reload",
			ArgsUsage: "path",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				args := cmd.Args().Slice()
				if len(args) != 1 {
					return fmt.Errorf("expected exactly one path argument")
				}
				path := args[0]

				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()

				ch, err := profile.Watch(ctx, path)
				if err != nil {
					return err
				}
				slog.Info("watching profile", "path", path)
				for p := range ch {
					if err := p.Install(); err != nil {
						slog.Warn("profile install failed", "path", path, "error", err)
						continue
					}
					slog.Info("profile installed", "path", path)
				}
				return nil
			},
		},
	},
}
