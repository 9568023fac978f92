package cmd

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kettlebell/cfgscript"
)

var varsCmd = &cobra.Command{
	Use:   "vars [source...]",
	Short: "load sources and list every currently bound variable name",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := LoadConfig()
		if err != nil {
			return err
		}

		c := cfgscript.New().WithLogger(newLogger())
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

		names := c.VariableNames()
		sort.Strings(names)
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(varsCmd)
}
