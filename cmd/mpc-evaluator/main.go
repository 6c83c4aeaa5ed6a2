package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/luxfi/mpcshare/internal/nettest"
	"github.com/luxfi/mpcshare/pkg/curve"
	"github.com/luxfi/mpcshare/pkg/party"
	"github.com/luxfi/mpcshare/pkg/wire"
	"github.com/luxfi/mpcshare/protocols/sharedeval"
)

var (
	numParties int
	scenario   string
	iterations int

	rootCmd = &cobra.Command{
		Use:   "mpc-evaluator",
		Short: "Drive an in-memory n-party secret-shared evaluator",
		Long: `mpc-evaluator simulates an n-party run of the secret-shared
evaluator over an in-process network, for local testing and benchmarking
of the Beaver-triple arithmetic core.`,
	}

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run one of the built-in evaluator scenarios",
		RunE:  runScenario,
	}

	benchCmd = &cobra.Command{
		Use:   "bench",
		Short: "Time preprocessing generation across the configured party count",
		RunE:  runBench,
	}
)

func init() {
	rootCmd.PersistentFlags().IntVarP(&numParties, "parties", "n", 3, "number of simulated parties")

	runCmd.Flags().StringVarP(&scenario, "scenario", "s", "mult", "scenario: mult, batch-exp, batch-inv, ibe")
	benchCmd.Flags().IntVarP(&iterations, "iterations", "i", 5, "number of preprocessing runs to time")

	rootCmd.AddCommand(runCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newEvaluators(ctx context.Context, n uint64) (*nettest.Network, []*sharedeval.Evaluator, error) {
	net := nettest.New(n)
	evaluators := make([]*sharedeval.Evaluator, n)
	for _, id := range party.Range(n) {
		e, err := sharedeval.New(ctx, net.Endpoint(id), sharedeval.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("party %d: %w", id, err)
		}
		evaluators[id-1] = e
	}
	return net, evaluators, nil
}

func runScenario(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	n := uint64(numParties)
	_, evaluators, err := newEvaluators(ctx, n)
	if err != nil {
		return err
	}

	switch scenario {
	case "mult":
		return fanOut(evaluators, func(ctx context.Context, e *sharedeval.Evaluator) (string, error) {
			x := e.FixedWire(scalarFromInt(7))
			y := e.FixedWire(scalarFromInt(11))
			z, err := e.Mult(ctx, x, y)
			if err != nil {
				return "", err
			}
			v, err := e.OutputWire(ctx, z)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("7*11 = %s", scalarString(v)), nil
		})
	case "batch-exp":
		return fanOut(evaluators, func(ctx context.Context, e *sharedeval.Evaluator) (string, error) {
			x := e.FixedWire(scalarFromInt(3))
			outs, err := e.BatchExp(ctx, []wire.Handle{x})
			if err != nil {
				return "", err
			}
			v, err := e.OutputWire(ctx, outs[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("3^64 = %s", scalarString(v)), nil
		})
	case "batch-inv":
		return fanOut(evaluators, func(ctx context.Context, e *sharedeval.Evaluator) (string, error) {
			x := e.FixedWire(scalarFromInt(4))
			outs, err := e.BatchInv(ctx, []wire.Handle{x})
			if err != nil {
				return "", err
			}
			v, err := e.OutputWire(ctx, outs[0])
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("inv(4) = %s", scalarString(v)), nil
		})
	case "ibe":
		skBig := new(big.Int).SetUint64(42)
		pk := curve.ScalarMulG2(curve.Generator2(), skBig)
		return fanOut(evaluators, func(ctx context.Context, e *sharedeval.Evaluator) (string, error) {
			msg := e.FixedWire(scalarFromInt(99))
			mask, err := e.Ran()
			if err != nil {
				return "", err
			}
			c1, _, err := e.DistIBEEncrypt(ctx, msg, mask, pk, []byte("player-7"))
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("C1 = %x", c1.Bytes()), nil
		})
	default:
		return fmt.Errorf("unknown scenario %q", scenario)
	}
}

func fanOut(evaluators []*sharedeval.Evaluator, fn func(ctx context.Context, e *sharedeval.Evaluator) (string, error)) error {
	ctx := context.Background()
	errs := make(chan error, len(evaluators))
	outs := make([]string, len(evaluators))
	for i, e := range evaluators {
		i, e := i, e
		go func() {
			out, err := fn(ctx, e)
			outs[i] = out
			errs <- err
		}()
	}
	for range evaluators {
		if err := <-errs; err != nil {
			return err
		}
	}
	for i, out := range outs {
		fmt.Printf("party %d: %s\n", i+1, out)
	}
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	n := uint64(numParties)
	net := nettest.New(n)
	ep := net.Endpoint(party.ID(1))

	var total time.Duration
	for i := 0; i < iterations; i++ {
		start := time.Now()
		if _, err := sharedeval.New(context.Background(), ep, sharedeval.Config{}); err != nil {
			return err
		}
		total += time.Since(start)
	}

	fmt.Printf("preprocessing: %d parties, %d runs, avg %s\n", n, iterations, total/time.Duration(iterations))
	return nil
}

func scalarFromInt(v uint64) curve.F {
	var f curve.F
	f.SetUint64(v)
	return f
}

func scalarString(f curve.F) string {
	var b big.Int
	f.BigInt(&b)
	return b.String()
}
