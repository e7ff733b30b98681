package command

import (
	"fmt"

	"github.com/katalvlaran/seqkit/lis"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultNums = "2,3,1,2,0,8,9,1,3,7"

// LIS is the "lis" subcommand.
type LIS struct {
	Env *Env
}

// Command builds the cobra command that prints the LIS length of --nums and,
// with --show, one longest subsequence.
func (cmd LIS) Command() *cobra.Command {
	var (
		nums   string
		method string
		show   bool
	)

	c := &cobra.Command{
		Use:   "lis",
		Short: "print the length of the longest strictly increasing subsequence",
		Example: `  seqkit lis
  seqkit lis --nums 5,1,6,2,7 --method patience --show`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.main(c, nums, method, show)
		},
	}

	flags := c.Flags()
	flags.StringVarP(&nums, "nums", "n", defaultNums, "input sequence as comma-separated ints")
	flags.StringVarP(&method, "method", "m", lis.Memoized.String(), "algorithm: memoized|patience")
	flags.BoolVar(&show, "show", false, "also print one longest subsequence")

	return c
}

func (cmd LIS) main(c *cobra.Command, rawNums, rawMethod string, show bool) error {
	log := cmd.Env.Logger

	nums, err := parseInts(rawNums)
	if err != nil {
		return errors.Wrap(err, "lis : invalid --nums")
	}
	method, err := lis.ParseMethod(rawMethod)
	if err != nil {
		return errors.Wrap(err, "lis : invalid --method")
	}

	if method == lis.Memoized && len(nums) > lis.MaxMemoizedLen {
		log.WithFields(logrus.Fields{
			"elements": len(nums),
			"limit":    lis.MaxMemoizedLen,
			"method":   lis.Patience,
		}).Warn("input too long for memoized method, falling back")
		method = lis.Patience
	}

	opts := lis.Options{Method: method, ReturnIndices: show}
	res, err := lis.LIS(nums, &opts)
	if err != nil {
		return errors.Wrap(err, "lis : failed to compute")
	}
	log.WithFields(logrus.Fields{"method": method, "elements": len(nums), "length": res.Length}).Info("computed")

	out := c.OutOrStdout()
	if _, err = fmt.Fprintln(out, res.Length); err != nil {
		return err
	}
	if show {
		_, err = fmt.Fprintln(out, joinInts(lis.Pick(nums, res.Indices)))
	}

	return err
}
