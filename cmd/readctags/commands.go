package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"readctags/internal/config"
	"readctags/internal/locator"
	"readctags/internal/tags"
	"readctags/pkg/fileutil"
	"readctags/pkg/style"
)

func newCheckCmd(a *app) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Parse the tags file and report lines that do not re-encode to themselves",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, found, err := a.locator().Load()
			if err != nil {
				return err
			}

			mismatches, err := tags.Verify(found.Content)
			if err != nil {
				return err
			}

			fmt.Fprintf(a.out, "%s: %d entries, %d pseudo-tags\n",
				a.paint.Bold(style.ColorCodeCyan, found.Path), set.Len(), len(tags.ParsePseudoTags(found.Content)))

			for _, m := range mismatches {
				fmt.Fprintf(a.out, "%s %s\n", a.paint.Yellow(fmt.Sprintf("line %d:", m.Line)), renderDiff(a.paint, m.Diffs))
			}

			if len(mismatches) == 0 {
				fmt.Fprintln(a.out, a.paint.Green("all lines are canonical"))
				return nil
			}
			fmt.Fprintf(a.out, "%d non-canonical lines\n", len(mismatches))
			if strict {
				return fmt.Errorf("%d lines are not in canonical form", len(mismatches))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any line is not in canonical form")
	return cmd
}

// renderDiff shows one line's diff inline, with tabs made visible.
func renderDiff(paint style.Painter, diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		text := strings.ReplaceAll(d.Text, "\t", `\t`)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			b.WriteString(paint.Removed(text))
		case diffmatchpatch.DiffInsert:
			b.WriteString(paint.Added(text))
		case diffmatchpatch.DiffEqual:
			b.WriteString(text)
		}
	}
	return b.String()
}

func newFindCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "find <name>",
		Short: "Print every entry with the given tag name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := a.loadIndex()
			if err != nil {
				return err
			}
			entries := idx.ByName(args[0])
			if len(entries) == 0 {
				return fmt.Errorf("no tag named %q", args[0])
			}
			a.printEntries(entries)
			return nil
		},
	}
}

func newQueryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "query <expression>",
		Short: "Print entries matching an expression, e.g. \"kind == 'class' && language == 'ruby'\"",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := a.loadIndex()
			if err != nil {
				return err
			}
			entries, err := idx.Query(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("Query evaluated", "expression", args[0], "matches", len(entries))
			a.printEntries(entries)
			return nil
		},
	}
}

func newStatsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Count entries by kind and language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := a.loadIndex()
			if err != nil {
				return err
			}
			printStats(a, idx)
			return nil
		},
	}
}

func printStats(a *app, idx *tags.Index) {
	fmt.Fprintf(a.out, "entries: %d\nnames: %d\nfiles: %d\n", idx.Len(), idx.CountTags(), idx.CountFiles())

	fmt.Fprintln(a.out, a.paint.Bold(style.ColorCodeCyan, "kinds:"))
	for _, kind := range idx.Kinds() {
		label := string(kind)
		if kind == tags.KindUndefined {
			label = "(none)"
		}
		fmt.Fprintf(a.out, "  %-16s %d\n", label, len(idx.ByKind(kind)))
	}

	fmt.Fprintln(a.out, a.paint.Bold(style.ColorCodeCyan, "languages:"))
	for _, lang := range idx.Languages() {
		fmt.Fprintf(a.out, "  %-16s %d\n", lang.String(), len(idx.ByLanguage(lang)))
	}
}

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the tags file whenever it changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := a.locator().Read()
			if err != nil {
				return err
			}

			watcher, err := fileutil.NewFileWatcher(found.Path, a.cfg.WatchDebounce, a.log)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			a.reportReload(watcher.Path())
			return watcher.Watch(ctx, func(e fileutil.FileEvent) {
				a.log.Info("Tags file changed", "path", e.Path, "event", e.Type.String())
				a.reportReload(watcher.Path())
			})
		},
	}
}

// reportReload parses the watched file itself. Other candidates are not
// consulted, so a deleted file is reported rather than replaced.
func (a *app) reportReload(path string) {
	set, _, err := locator.New([]string{path}, locator.WithLogger(a.log)).Load()
	if err != nil {
		fmt.Fprintln(a.out, a.paint.Red(err.Error()))
		return
	}
	fmt.Fprintf(a.out, "%s: %d entries\n", path, set.Len())
}

func newConfigCmd(a *app) *cobra.Command {
	var save string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if save != "" {
				if err := config.SaveConfig(a.cfg, save); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "configuration written to %s\n", save)
				return nil
			}

			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("failed to marshal config: %w", err)
			}
			_, err = a.out.Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&save, "save", "", "Write the effective configuration to this file")
	return cmd
}
