package cmd

import (
	"sort"

	"github.com/alecthomas/repr"
	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kettlebell/cfgscript"
)

var runCmd = &cobra.Command{
	Use:   "run [source...]",
	Short: "load sources and dump every declared resource",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID, err := uuid.NewV4()
		if err != nil {
			return errors.Wrap(err, "generating run id")
		}
		log := newLogger().WithField("run_id", runID.String())

		cfg, err := LoadConfig()
		if err != nil {
			return err
		}

		c := cfgscript.New().WithLogger(log)
		for _, s := range args {
			c.PushSource(s)
		}
		for _, s := range resolveSources(cfg) {
			c.PushSource(s)
		}
		for name, value := range cfg.Parameters {
			c.PushParameterString(name, value)
		}
		if restrict {
			c.Restrict()
		}

		c.Load()
		if c.Err() != cfgscript.ErrNone {
			return errors.Errorf("load failed: %v", c.Err())
		}

		resources := c.Resources()
		namespaces := make([]string, 0, len(resources))
		for ns := range resources {
			namespaces = append(namespaces, ns)
		}
		sort.Strings(namespaces)

		for _, ns := range namespaces {
			props := resources[ns]
			sort.Strings(props)
			for _, prop := range props {
				c.Fetch(ns, prop)
				var words []string
				for c.Iterate() {
					words = append(words, c.Resource())
				}
				repr.Println(map[string]interface{}{
					"namespace": ns,
					"property":  prop,
					"values":    words,
				})
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
