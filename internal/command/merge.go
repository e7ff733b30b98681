package command

import (
	"fmt"

	"github.com/katalvlaran/seqkit/kmerge"
	"github.com/katalvlaran/seqkit/queue"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// defaultQueues are the sample sources merged when no --queue is given.
var defaultQueues = []string{"1,4,7", "2,5,8", "3,6,9"}

// Merge is the "merge" subcommand.
type Merge struct {
	Env *Env
}

// Command builds the cobra command that parses --queue flags, merges them
// and prints the result on one line.
func (cmd Merge) Command() *cobra.Command {
	var (
		sources  []string
		stable   bool
		validate bool
	)

	c := &cobra.Command{
		Use:   "merge",
		Short: "merge ascending integer queues into one ascending queue",
		Example: `  seqkit merge
  seqkit merge --queue 1,4,7 --queue 2,5,8 --queue 3,6,9 --stable`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.main(c, sources, stable, validate)
		},
	}

	flags := c.Flags()
	flags.StringArrayVarP(&sources, "queue", "q", defaultQueues, "one ascending source queue as comma-separated ints (repeatable)")
	flags.BoolVar(&stable, "stable", false, "emit equal values in source order")
	flags.BoolVar(&validate, "validate", false, "fail if a source is not ascending")

	return c
}

func (cmd Merge) main(c *cobra.Command, sources []string, stable, validate bool) error {
	log := cmd.Env.Logger

	queues := make([]*queue.Queue[int], len(sources))
	for i, s := range sources {
		values, err := parseInts(s)
		if err != nil {
			return errors.Wrapf(err, "merge : invalid queue %d %q", i, s)
		}
		queues[i] = queue.From(values...)
	}

	opts := []kmerge.Option{
		kmerge.WithContext(c.Context()),
		kmerge.WithOnEmit(func(value, source int) {
			log.WithFields(logrus.Fields{"value": value, "source": source}).Trace("emit")
		}),
	}
	if stable {
		opts = append(opts, kmerge.WithStable())
	}
	if validate {
		opts = append(opts, kmerge.WithValidateOrder())
	}

	merged, err := kmerge.Merge(queues, opts...)
	if err != nil {
		return errors.Wrap(err, "merge : failed to merge queues")
	}
	log.WithFields(logrus.Fields{"queues": len(queues), "elements": merged.Len()}).Info("merged")

	_, err = fmt.Fprintln(c.OutOrStdout(), merged)

	return err
}
