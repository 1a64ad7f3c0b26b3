// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/canonical/society-gate/internal/db"
	"github.com/canonical/society-gate/internal/directory"
	"github.com/canonical/society-gate/internal/logging"
	"github.com/canonical/society-gate/internal/monitoring"
	"github.com/canonical/society-gate/internal/tracing"
	"github.com/canonical/society-gate/internal/types"
)

// inviteCodeCmd mints society creation invite codes. Codes are operator
// managed, there is no self-service path.
var inviteCodeCmd = &cobra.Command{
	Use:   "invite-code <code>",
	Short: "Create a society creation invite code",
	Long:  `Insert an invite code that gates society creation. A max-uses of 0 means unlimited.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dsn, _ := cmd.Flags().GetString("dsn")
		maxUses, _ := cmd.Flags().GetInt64("max-uses")
		inactive, _ := cmd.Flags().GetBool("inactive")

		if err := createInviteCode(cmd, dsn, args[0], maxUses, inactive); err != nil {
			cmd.PrintErr(err)
			os.Exit(1)
		}
	},
}

func init() {
	inviteCodeCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	inviteCodeCmd.Flags().Int64("max-uses", 0, "Maximum redemptions, 0 for unlimited")
	inviteCodeCmd.Flags().Bool("inactive", false, "Create the code disabled")
	_ = inviteCodeCmd.MarkFlagRequired("dsn")

	rootCmd.AddCommand(inviteCodeCmd)
}

func createInviteCode(cmd *cobra.Command, dsn, code string, maxUses int64, inactive bool) error {
	logger := logging.NewNoopLogger()
	monitor := monitoring.NewNoopMonitor()
	tracer := tracing.NewNoopTracer()

	dbClient, err := db.NewDBClient(db.Config{DSN: dsn, MaxConns: 2, MinConns: 1}, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	dir := directory.NewDirectory(dbClient, tracer, monitor, logger)

	err = dir.CreateInviteCode(cmd.Context(), &types.InviteCode{
		Code:     code,
		IsActive: !inactive,
		MaxUses:  maxUses,
	})
	if errors.Is(err, directory.ErrDuplicateKey) {
		return fmt.Errorf("invite code %q already exists", code)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created invite code %q\n", code)
	return nil
}
