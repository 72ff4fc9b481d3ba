package main

import (
	"io"
	"os"
	"time"

	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/spf13/cobra"
)

const defaultServer = "http://localhost:8080"

// cli carries the flags shared by every command.
type cli struct {
	server  string
	timeout time.Duration
	out     io.Writer

	client *exchangesdk.Client
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	server := os.Getenv("GIFTEXCHANGE_SERVER")
	if server == "" {
		server = defaultServer
	}

	rootCmd := &cobra.Command{
		Use:   "giftexchangectl",
		Short: "Manage gift exchanges and their assignments",
		Long: `giftexchangectl talks to a running gift exchange service to list
exchanges, draw assignments and lock or unlock them.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			c.client = exchangesdk.NewClient(c.server)
			c.client.HTTPClient.Timeout = c.timeout
		},
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)

	rootCmd.PersistentFlags().StringVar(&c.server, "server", server,
		"Base URL of the gift exchange service (env GIFTEXCHANGE_SERVER)")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "Request timeout")

	// --- Exchanges ---
	listCmd := &cobra.Command{
		Use:     "list",
		Short:   "Lists gift exchanges and their IDs",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		RunE:    c.runList, // Defined in cmd_exchanges.go
	}
	seedCmd := &cobra.Command{
		Use:   "seed [title]",
		Short: "Creates or tops up a sample exchange with a few active participants",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.runSeed, // Defined in cmd_exchanges.go
	}

	// --- Assignments ---
	generateCmd := &cobra.Command{
		Use:   "generate [exchange-id]",
		Short: "Generates assignments for the given exchange",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runGenerate, // Defined in cmd_assignments.go
	}
	generateCmd.Flags().Bool("override-lock", false, "Regenerate even when assignments are locked")

	assignmentsCmd := &cobra.Command{
		Use:   "assignments [exchange-id]",
		Short: "Shows the assignments of an exchange in chain order",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runAssignments, // Defined in cmd_assignments.go
	}
	recipientCmd := &cobra.Command{
		Use:   "recipient [exchange-id] [participant-id]",
		Short: "Shows who a participant buys for",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runRecipient, // Defined in cmd_assignments.go
	}
	lockCmd := &cobra.Command{
		Use:   "lock [exchange-id]",
		Short: "Locks assignments against regeneration",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runLock, // Defined in cmd_assignments.go
	}
	unlockCmd := &cobra.Command{
		Use:   "unlock [exchange-id]",
		Short: "Unlocks assignments for the given exchange",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runUnlock, // Defined in cmd_assignments.go
	}
	removeCmd := &cobra.Command{
		Use:   "remove [exchange-id] [participant-id]",
		Short: "Removes a participant, clearing assignments they are part of",
		Args:  cobra.ExactArgs(2),
		RunE:  c.runRemove, // Defined in cmd_assignments.go
	}
	toggleCmd := &cobra.Command{
		Use:   "toggle [exchange-id]",
		Short: "Flips the assignment lock",
		Args:  cobra.ExactArgs(1),
		RunE:  c.runToggle, // Defined in cmd_assignments.go
	}

	rootCmd.AddCommand(
		listCmd,
		seedCmd,
		generateCmd,
		assignmentsCmd,
		recipientCmd,
		lockCmd,
		unlockCmd,
		toggleCmd,
		removeCmd,
	)
	return rootCmd
}
