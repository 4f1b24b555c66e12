// Copyright (c) 2023 Colin McRae

package main

import (
	"fmt"
	"strconv"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/DanielRobertNicoud/dupont-contraction/formerr"
	"github.com/DanielRobertNicoud/dupont-contraction/operad"
	"github.com/DanielRobertNicoud/dupont-contraction/simplicial"
)

// rootOptions holds the persistent flags and the logger built from them.
type rootOptions struct {
	verbose int
	logger  logr.Logger
}

func (o *rootOptions) operadOptions() []operad.Option {
	return []operad.Option{operad.WithLogger(o.logger)}
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{logger: logr.Discard()}
	rootCmd := &cobra.Command{
		Use:   "dupont",
		Short: "Evaluate the Dupont contraction of simplicial and cubical forms",
		Long: `dupont computes the homotopy transfer of the algebra of polynomial
differential forms onto the cellular cochains of a simplex or a cube:
the projection, the inclusion, the homotopy and the transferred
A-infinity products.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), o.verbose)
			if err != nil {
				return err
			}
			o.logger = logger
			return nil
		},
	}
	rootCmd.PersistentFlags().IntVarP(&o.verbose, "verbose", "v", 0, "log verbosity; 4 traces every evaluated tree")

	rootCmd.AddCommand(
		newExampleCmd(),
		newProductsCmd(o),
		newAInfinityCmd(o),
		newTreesCmd(),
		newMatrixCmd(),
		newRunCmd(o),
	)
	return rootCmd
}

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print p(i(omega_012) t_1) on the 2-simplex step by step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			omega, err := simplicial.Omega(2, 0, 1, 2)
			if err != nil {
				return err
			}
			t1, err := simplicial.Coordinate(2, 1)
			if err != nil {
				return err
			}
			product, err := omega.I().Mul(t1)
			if err != nil {
				return err
			}
			rows := [][]string{
				{"omega", omega.String()},
				{"i(omega)", omega.I().String()},
				{"i(omega) t_1", product.String()},
				{"p(i(omega) t_1)", product.P().String()},
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable("Worked example on the 2-simplex", []string{"expression", "value"}, rows))
			return nil
		},
	}
}

func newProductsCmd(o *rootOptions) *cobra.Command {
	var geometryName string
	var n int
	cmd := &cobra.Command{
		Use:   "products",
		Short: "Print the binary products of all pairs of basis forms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := lookupGeometry(geometryName)
			if err != nil {
				return err
			}
			headers, rows, err := g.productTable(n, o.operadOptions()...)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("Binary products on the %s of dimension %d", geometryName, n)
			fmt.Fprint(cmd.OutOrStdout(), renderTable(title, headers, rows))
			return nil
		},
	}
	cmd.Flags().StringVarP(&geometryName, "geometry", "g", "simplicial", "simplicial or cubical")
	cmd.Flags().IntVarP(&n, "dimension", "n", 1, "dimension of the simplex or cube")
	return cmd
}

func newAInfinityCmd(o *rootOptions) *cobra.Command {
	var geometryName string
	var n int
	var keys []string
	cmd := &cobra.Command{
		Use:   "ainfinity",
		Short: "Print the transferred product of basis forms given with --form",
		Example: `  dupont ainfinity -n 2 --form "0|1" --form "1|2"
  dupont ainfinity -g cubical -n 2 --form "1,0" --form "1,0" --form "2,0"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := lookupGeometry(geometryName)
			if err != nil {
				return err
			}
			if len(keys) == 0 {
				return formerr.InvalidArgumentType("ainfinity", "at least one --form is required")
			}
			forms := make([]formValue, len(keys))
			for i, key := range keys {
				forms[i] = formValue{dim: n, terms: map[string]any{key: 1}}
			}
			value, err := g.evaluate("ainfinity", forms, o.operadOptions()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "l%d = %s\n", len(keys), value)
			return nil
		},
	}
	cmd.Flags().StringVarP(&geometryName, "geometry", "g", "simplicial", "simplicial or cubical")
	cmd.Flags().IntVarP(&n, "dimension", "n", 1, "dimension of the simplex or cube")
	cmd.Flags().StringArrayVar(&keys, "form", nil, "basis form key, repeated once per argument")
	return cmd
}

func newTreesCmd() *cobra.Command {
	var arity int
	cmd := &cobra.Command{
		Use:   "trees",
		Short: "List the planar binary trees of an arity with their signs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			trees, err := operad.BinaryTrees(arity)
			if err != nil {
				return err
			}
			rows := make([][]string, len(trees))
			for i, signed := range trees {
				rows[i] = []string{strconv.Itoa(signed.Sign), signed.Tree.String()}
			}
			title := fmt.Sprintf("%d binary trees of arity %d", len(trees), arity)
			fmt.Fprint(cmd.OutOrStdout(), renderTable(title, []string{"sign", "tree"}, rows))
			return nil
		},
	}
	cmd.Flags().IntVarP(&arity, "arity", "a", 3, "number of leaves")
	return cmd
}

func newMatrixCmd() *cobra.Command {
	var geometryName string
	var n, k int
	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the matrix of d on Dupont forms of degree k and its rank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := lookupGeometry(geometryName)
			if err != nil {
				return err
			}
			headers, rows, summary, err := g.matrixTable(n, k)
			if err != nil {
				return err
			}
			title := fmt.Sprintf("d from degree %d to %d on the %s of dimension %d", k, k+1, geometryName, n)
			fmt.Fprint(cmd.OutOrStdout(), renderTable(title, headers, rows))
			fmt.Fprintln(cmd.OutOrStdout(), summary)
			return nil
		},
	}
	cmd.Flags().StringVarP(&geometryName, "geometry", "g", "simplicial", "simplicial or cubical")
	cmd.Flags().IntVarP(&n, "dimension", "n", 1, "dimension of the simplex or cube")
	cmd.Flags().IntVarP(&k, "degree", "k", 0, "degree of the source forms")
	return cmd
}

func newRunCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run worksheet.yaml",
		Short: "Evaluate the operations of a YAML worksheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := loadWorksheet(args[0])
			if err != nil {
				return err
			}
			o.logger.V(1).Info("loaded worksheet", "path", args[0], "operations", len(ws.Operations))
			results, err := ws.evaluate(o.operadOptions()...)
			if err != nil {
				return err
			}
			rows := make([][]string, len(results))
			for i, r := range results {
				rows[i] = []string{r.name, r.op, r.value}
			}
			fmt.Fprint(cmd.OutOrStdout(), renderTable(args[0], []string{"name", "op", "value"}, rows))
			return nil
		},
	}
}
