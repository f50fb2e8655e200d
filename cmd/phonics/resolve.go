package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/phonics-backend/internal/app"
	"github.com/heartmarshall/phonics-backend/internal/config"
	"github.com/heartmarshall/phonics-backend/internal/service/phonics"
)

func newResolveCmd() *cobra.Command {
	var (
		sections []string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:   "resolve <query>",
		Short: "Resolve a phoneme query and print its teaching bundle as JSON",
		Example: `  phonics resolve sh
  phonics resolve "long e" --section word_lists --section practice`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			svc, err := newOfflineService(cmd, cfg)
			if err != nil {
				return err
			}

			res, err := svc.Resolve(cmd.Context(), phonics.ResolveInput{
				PhonemeInput:      strings.Join(args, " "),
				SectionsRequested: sections,
			})
			if err != nil {
				return err
			}

			if res.CorrectionMessage != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), *res.CorrectionMessage)
			}
			if len(sections) == 0 {
				return writeOutput(cmd.OutOrStdout(), res.PhonemeData, pretty)
			}

			out, err := selectSections(res.PhonemeData, sections)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), out, pretty)
		},
	}

	cmd.Flags().StringSliceVarP(&sections, "section", "s", nil, "Restrict output to these top-level sections; phoneme is always kept (repeatable)")
	cmd.Flags().BoolVar(&pretty, "pretty", true, "Indent JSON output")
	return cmd
}

// selectSections keeps the phoneme identity plus the named top-level keys of
// the bundle.
func selectSections(data json.RawMessage, sections []string) (map[string]json.RawMessage, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("encode bundle: %w", err)
	}
	var all map[string]json.RawMessage
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode bundle: %w", err)
	}

	out := map[string]json.RawMessage{"phoneme": all["phoneme"]}
	for _, s := range sections {
		s = strings.TrimSpace(s)
		v, ok := all[s]
		if !ok {
			known := make([]string, 0, len(all))
			for k := range all {
				known = append(known, k)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("unknown section %q (available: %s)", s, strings.Join(known, ", "))
		}
		out[s] = v
	}
	return out, nil
}

// newOfflineService builds the service without cache or usage recording.
// Logs go to stderr only at warn and above so stdout stays machine-readable.
func newOfflineService(cmd *cobra.Command, cfg *config.Config) (*phonics.Service, error) {
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
	return app.NewPhonicsService(cmd.Context(), cfg, logger, app.Collaborators{})
}

func writeOutput(w io.Writer, v any, pretty bool) error {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
