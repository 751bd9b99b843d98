// Command primecount is the CLI surface over the primecount package:
// pi(x), nth-prime(n), phi(x,a), li(x) and li-inverse(n) subcommands
// plus global --threads/--alpha/--alpha-y/--alpha-z flags, adapted
// from the teacher's cmd/primes flag-based CLI but rebuilt on
// github.com/urfave/cli/v2 (grounded on xtaci-kcptun's client/server
// main.go usage of the cli package).
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/kimwalisch/primecount-go"
	"github.com/kimwalisch/primecount-go/internal/i128"
	"github.com/kimwalisch/primecount-go/internal/status"
)

func main() {
	app := &cli.App{
		Name:  "primecount",
		Usage: "count primes, find the n-th prime, or evaluate phi(x,a)",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "threads", Aliases: []string{"t"}, Usage: "worker thread count (default: all CPUs)"},
			&cli.Float64Flag{Name: "alpha", Usage: "sieve-size tuning factor"},
			&cli.Float64Flag{Name: "alpha-y", Usage: "Gourdon y tuning factor"},
			&cli.Float64Flag{Name: "alpha-z", Usage: "Gourdon z tuning factor"},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "print only the result"},
			&cli.StringFlag{Name: "formula", Usage: "pi(x) algorithm: meissel (default), lmo, gourdon, lehmer"},
		},
		Before: func(c *cli.Context) error {
			if c.IsSet("threads") {
				if err := primecount.SetNumThreads(c.Int("threads")); err != nil {
					return err
				}
			}
			if c.IsSet("alpha") {
				primecount.SetAlpha(c.Float64("alpha"))
			}
			if c.IsSet("alpha-y") {
				primecount.SetAlphaY(c.Float64("alpha-y"))
			}
			if c.IsSet("alpha-z") {
				primecount.SetAlphaZ(c.Float64("alpha-z"))
			}
			return nil
		},
		Commands: []*cli.Command{
			piCommand(),
			nthPrimeCommand(),
			phiCommand(),
			liCommand(),
			liInverseCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func piCommand() *cli.Command {
	return &cli.Command{
		Name:      "pi",
		Usage:     "count the primes <= x",
		ArgsUsage: "x",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("pi: missing argument x", 1)
			}
			x, ok := i128.FromString(c.Args().First())
			if !ok {
				return cli.Exit(fmt.Sprintf("pi: invalid integer %q", c.Args().First()), 1)
			}
			piFunc, err := resolveFormula(c.String("formula"))
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			start := time.Now()
			result, err := piFunc(x)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if c.Bool("quiet") {
				fmt.Println(result.String())
				return nil
			}
			fmt.Printf("pi(%s) = %s\n", x.String(), result.String())
			fmt.Fprintf(os.Stderr, "computed in %s\n", time.Since(start))
			return nil
		},
	}
}

// resolveFormula picks which of the package's independent pi(x)
// implementations the "pi" command drives -- Meissel (the default,
// via primecount.Pi), or one of the LMO/Gourdon/Lehmer entry points,
// each exercising its own y/a/factor-table construction instead of
// orchestrator.go's.
func resolveFormula(name string) (func(i128.Int) (i128.Int, error), error) {
	switch name {
	case "", "meissel":
		return primecount.Pi, nil
	case "lmo":
		return primecount.PiLMO, nil
	case "gourdon":
		return primecount.PiGourdon, nil
	case "lehmer":
		return primecount.PiLehmer, nil
	default:
		return nil, fmt.Errorf("pi: unknown --formula %q (want meissel, lmo, gourdon, lehmer)", name)
	}
}

func nthPrimeCommand() *cli.Command {
	return &cli.Command{
		Name:      "nth-prime",
		Usage:     "find the n-th prime",
		ArgsUsage: "n",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("nth-prime: missing argument n", 1)
			}
			n, err := strconv.ParseInt(c.Args().First(), 10, 64)
			if err != nil {
				return cli.Exit(fmt.Sprintf("nth-prime: invalid integer %q", c.Args().First()), 1)
			}
			p, err := primecount.NthPrime(n)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if c.Bool("quiet") {
				fmt.Println(p)
				return nil
			}
			fmt.Printf("nth_prime(%s) = %d\n", status.FormatNumber(n), p)
			return nil
		},
	}
}

func phiCommand() *cli.Command {
	return &cli.Command{
		Name:      "phi",
		Usage:     "evaluate phi(x,a)",
		ArgsUsage: "x a",
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return cli.Exit("phi: need arguments x a", 1)
			}
			x, err := strconv.ParseInt(c.Args().Get(0), 10, 64)
			if err != nil {
				return cli.Exit(fmt.Sprintf("phi: invalid x %q", c.Args().Get(0)), 1)
			}
			a, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return cli.Exit(fmt.Sprintf("phi: invalid a %q", c.Args().Get(1)), 1)
			}
			result, err := primecount.Phi(x, a)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if c.Bool("quiet") {
				fmt.Println(result)
				return nil
			}
			fmt.Printf("phi(%d,%d) = %d\n", x, a, result)
			return nil
		},
	}
}

func liCommand() *cli.Command {
	return &cli.Command{
		Name:      "li",
		Usage:     "evaluate the logarithmic integral approximation li(x)",
		ArgsUsage: "x",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("li: missing argument x", 1)
			}
			x, err := strconv.ParseFloat(c.Args().First(), 64)
			if err != nil {
				return cli.Exit(fmt.Sprintf("li: invalid number %q", c.Args().First()), 1)
			}
			fmt.Printf("li(%s) ~ %.0f\n", c.Args().First(), primecount.Li(x))
			return nil
		},
	}
}

func liInverseCommand() *cli.Command {
	return &cli.Command{
		Name:      "li-inverse",
		Usage:     "invert the logarithmic integral: find x such that li(x) ~ n",
		ArgsUsage: "n",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("li-inverse: missing argument n", 1)
			}
			n, err := strconv.ParseFloat(c.Args().First(), 64)
			if err != nil {
				return cli.Exit(fmt.Sprintf("li-inverse: invalid number %q", c.Args().First()), 1)
			}
			fmt.Printf("li_inverse(%s) ~ %.0f\n", c.Args().First(), primecount.LiInverse(n))
			return nil
		},
	}
}
