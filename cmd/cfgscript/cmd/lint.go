package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/kettlebell/cfgscript"
)

var lintCmd = &cobra.Command{
	Use:   "lint [source...]",
	Short: "load sources and report the sticky error flag without dumping resources",
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

		if ok, idx := c.CanOpenSources(); !ok {
			return errors.New("none of the pushed sources could be opened")
		} else {
			fmt.Printf("will load source #%d\n", idx)
		}

		c.Load()
		fmt.Printf("err: %v\n", c.Err())
		if c.Err() != cfgscript.ErrNone {
			return errors.Errorf("lint failed: %v", c.Err())
		}
		fmt.Println("ok")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lintCmd)
}
