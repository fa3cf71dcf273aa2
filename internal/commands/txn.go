package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budgetreport/internal/dateint"
	"github.com/cleared-dev/budgetreport/internal/model"
	"github.com/cleared-dev/budgetreport/internal/money"
)

func newTxnCommand() *cobra.Command {
	txnCmd := &cobra.Command{
		Use:   "txn",
		Short: "Transaction operations",
	}
	txnCmd.AddCommand(newTxnAddCommand())
	return txnCmd
}

type txnAddOptions struct {
	dir         string
	kind        string
	description string
	reference   string
}

func newTxnAddCommand() *cobra.Command {
	var opts txnAddOptions

	cmd := &cobra.Command{
		Use:   "add <date> <category> <amount>",
		Short: "Record a transaction (amount is bank side: negative for spending)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTxnAdd(cmd, opts, args)
		},
	}
	cmd.Flags().StringVar(&opts.dir, "dir", ".", "project directory")
	cmd.Flags().StringVar(&opts.kind, "kind", string(model.KindExpense), "category kind: income or expense")
	cmd.Flags().StringVar(&opts.description, "description", "", "transaction description")
	cmd.Flags().StringVar(&opts.reference, "reference", "", "check number or other reference")

	return cmd
}

func runTxnAdd(cmd *cobra.Command, opts txnAddOptions, args []string) error {
	date, err := dateint.Parse(args[0])
	if err != nil {
		return err
	}
	kind, err := model.ParseKind(opts.kind)
	if err != nil {
		return err
	}

	p, err := openProject(opts.dir)
	if err != nil {
		return err
	}
	amount, err := money.Parse(args[2], p.cfg.Currency.DecimalPlaces)
	if err != nil {
		return err
	}

	txn := model.Transaction{
		Date:        date,
		Category:    model.CategoryKey{FullName: args[1], Kind: kind},
		Amount:      amount,
		Description: opts.description,
		Reference:   opts.reference,
	}
	if err := p.transactions.Add(txn); err != nil {
		return err
	}
	if _, err := p.commit(fmt.Sprintf("txn: %s %s", dateint.Format(date), txn.Category)); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s %s on %s\n", txn.Category, args[2], dateint.Format(date))
	return nil
}
