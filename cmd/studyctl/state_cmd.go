package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/state"
	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/store"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Output formats of state show.
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// updatedAtReporter is implemented by backends that know when a key was
// last written.
type updatedAtReporter interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, error)
}

func newStateCmd(opts *globalOptions) *cobra.Command {
	stateCmd := &cobra.Command{Use: "state", Short: "Inspect or reset the stored state"}

	var format, domainKey string
	show := &cobra.Command{
		Use:   "show",
		Short: "Print the state as it is persisted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatJSON && format != formatYAML {
				return fmt.Errorf("unknown format %q: want json or yaml", format)
			}
			return withStore(cmd, opts, func(_ context.Context, app *application) error {
				return writeState(cmd.OutOrStdout(), app.store.Snapshot(), domainKey, format)
			})
		},
	}
	show.Flags().StringVar(&format, "format", formatJSON, "output format: json|yaml")
	show.Flags().StringVar(&domainKey, "domain", "", "print a single domain, e.g. gamification")

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete the stored state so the next run starts from defaults",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, opts, func(ctx context.Context, app *application) error {
				if err := app.kv.Delete(ctx, app.key); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", app.key)
				return nil
			})
		},
	}

	info := &cobra.Command{
		Use:   "info",
		Short: "Summarize the stored blob",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withBackend(cmd, opts, func(ctx context.Context, app *application) error {
				return writeInfo(ctx, cmd.OutOrStdout(), app)
			})
		},
	}

	stateCmd.AddCommand(show, reset, info)
	return stateCmd
}

// writeState prints st, or one domain of it, in the requested format.
// Keys follow the JSON field names in both formats.
func writeState(out io.Writer, st *state.AppState, domainKey, format string) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return err
	}

	var doc any
	if domainKey != "" {
		var domains map[string]json.RawMessage
		if err := json.Unmarshal(raw, &domains); err != nil {
			return err
		}
		section, ok := domains[domainKey]
		if !ok {
			return fmt.Errorf("%w: %s", state.ErrDomainMissing, domainKey)
		}
		raw = section
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}

	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}
}

// writeInfo prints the blob size, its age and a progress summary without
// opening the store.
func writeInfo(ctx context.Context, out io.Writer, app *application) error {
	_, _ = fmt.Fprintf(out, "backend:  %s\nkey:      %s\n", app.config.Storage.Backend, app.key)

	raw, err := app.kv.Get(ctx, app.key)
	if errors.Is(err, store.ErrNotFound) {
		_, _ = fmt.Fprintln(out, "stored:   nothing (defaults will be used)")
		return nil
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "size:     %s\n", humanize.Bytes(uint64(len(raw))))
	if reporter, ok := app.kv.(updatedAtReporter); ok {
		if updated, err := reporter.UpdatedAt(ctx, app.key); err == nil {
			_, _ = fmt.Fprintf(out, "updated:  %s\n", humanize.Time(updated))
		}
	}

	st, report := state.NewRegistry(state.Deps{Clock: app.clock}).Rehydrate(raw)
	if report.BlobError != nil {
		_, _ = fmt.Fprintf(out, "status:   unusable (%v)\n", report.BlobError)
		return nil
	}
	_, _ = fmt.Fprintf(out, "domains:  %d recovered, %d defaulted, %d dropped\n",
		len(report.Recovered), len(report.Defaulted), len(report.Dropped))

	g := st.Gamification
	_, _ = fmt.Fprintf(out, "progress: level %d, %s xp, %d day streak, %d achievements\n",
		g.Level, humanize.Comma(int64(g.XP)), g.Streak, len(g.Achievements))

	cards := 0
	for _, deck := range st.StudyAids.Decks {
		cards += len(deck.Cards)
	}
	_, _ = fmt.Fprintf(out, "decks:    %d (%d cards)\n", len(st.StudyAids.Decks), cards)
	return nil
}
