package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/spf13/cobra"
)

func (c *cli) runGenerate(cmd *cobra.Command, args []string) error {
	override, err := cmd.Flags().GetBool("override-lock")
	if err != nil {
		return err
	}

	resp, err := c.client.GenerateAssignments(cmd.Context(), args[0], override)
	if err != nil {
		if exchangesdk.IsCode(err, exchangesdk.ErrorCodeExchangeLocked) {
			return fmt.Errorf("assignments are locked for exchange %s, pass --override-lock to regenerate", args[0])
		}
		return err
	}

	fmt.Fprintf(c.out, "Assignments generated for exchange %s for %d participants\n",
		resp.ExchangeID, len(resp.Assignments))
	return nil
}

func (c *cli) runAssignments(cmd *cobra.Command, args []string) error {
	resp, err := c.client.GetAssignments(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if len(resp.Assignments) == 0 {
		fmt.Fprintln(c.out, "No assignments.")
		return nil
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "GIVER\t\tRECEIVER")
	for _, a := range resp.Assignments {
		fmt.Fprintf(tw, "%s\t->\t%s\n", a.GiverName, a.ReceiverName)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	state := "unlocked"
	if resp.AssignmentsLocked {
		state = "locked"
	}
	fmt.Fprintf(c.out, "%d assignments, %s\n", len(resp.Assignments), state)
	return nil
}

func (c *cli) runRecipient(cmd *cobra.Command, args []string) error {
	resp, err := c.client.GetRecipient(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}

	r := resp.Recipient
	fmt.Fprintf(c.out, "%s <%s>\n", r.Name, r.Email)
	if r.Likes != "" {
		fmt.Fprintf(c.out, "  likes:     %s\n", r.Likes)
	}
	if r.Dislikes != "" {
		fmt.Fprintf(c.out, "  dislikes:  %s\n", r.Dislikes)
	}
	if r.AllergiesSensitivities != "" {
		fmt.Fprintf(c.out, "  allergies: %s\n", r.AllergiesSensitivities)
	}
	return nil
}

func (c *cli) runLock(cmd *cobra.Command, args []string) error {
	e, err := c.client.LockAssignments(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	c.printLock(e)
	return nil
}

func (c *cli) runUnlock(cmd *cobra.Command, args []string) error {
	e, err := c.client.UnlockAssignments(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	c.printLock(e)
	return nil
}

func (c *cli) runToggle(cmd *cobra.Command, args []string) error {
	e, err := c.client.ToggleLock(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	c.printLock(e)
	return nil
}

func (c *cli) printLock(e *exchangesdk.ExchangeResponse) {
	if e.AssignmentsLocked {
		fmt.Fprintf(c.out, "Assignments locked for exchange %q\n", e.Title)
		return
	}
	fmt.Fprintf(c.out, "Assignments unlocked for exchange %q\n", e.Title)
}

func (c *cli) runRemove(cmd *cobra.Command, args []string) error {
	exchangeID, participantID := args[0], args[1]

	if err := c.client.RemoveParticipant(cmd.Context(), exchangeID, participantID); err != nil {
		if exchangesdk.IsCode(err, exchangesdk.ErrorCodeExchangeLocked) {
			return fmt.Errorf("participant %s is part of locked assignments, unlock exchange %s first", participantID, exchangeID)
		}
		return err
	}

	fmt.Fprintf(c.out, "Removed participant %s from exchange %s\n", participantID, exchangeID)
	return nil
}
