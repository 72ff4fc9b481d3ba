package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/astromitts/gifterator3000/pkg/exchangesdk"
	"github.com/spf13/cobra"
)

func (c *cli) runList(cmd *cobra.Command, _ []string) error {
	resp, err := c.client.ListExchanges(cmd.Context())
	if err != nil {
		return err
	}

	if len(resp.Exchanges) == 0 {
		fmt.Fprintln(c.out, "No gift exchanges.")
		return nil
	}

	tw := tabwriter.NewWriter(c.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tDATE\tLOCKED")
	for _, e := range resp.Exchanges {
		date := e.Date
		if date == "" {
			date = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", e.ID, e.Title, date, e.AssignmentsLocked)
	}
	return tw.Flush()
}

var sampleParticipants = []exchangesdk.AddParticipantRequest{
	{Name: "Ada Byron", Email: "ada@example.com", Likes: "puzzles, tea", AllergiesSensitivities: "none"},
	{Name: "Grace Hopper", Email: "grace@example.com", Likes: "clocks", Dislikes: "bureaucracy"},
	{Name: "Alan Turing", Email: "alan@example.com", Likes: "running shoes"},
	{Name: "Katherine Johnson", Email: "katherine@example.com", Likes: "star charts", AllergiesSensitivities: "nuts"},
	{Name: "Edsger Dijkstra", Email: "edsger@example.com", Dislikes: "goto"},
}

func (c *cli) runSeed(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	date := time.Now().AddDate(0, 0, 30)
	title := fmt.Sprintf("%d Sample Gift Exchange", date.Year())
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		title = args[0]
	}

	e, found, err := c.client.FindExchangeByTitle(ctx, title)
	if err != nil {
		return err
	}
	if !found {
		e, err = c.client.CreateExchange(ctx, exchangesdk.CreateExchangeRequest{
			Title:         title,
			Date:          date.Format(exchangesdk.DateLayout),
			Location:      "Google Hangout",
			Description:   "Get a flat rate shipping box and send it to someone!",
			SpendingLimit: 25,
		})
		if err != nil {
			return err
		}
	}

	added := 0
	for _, p := range sampleParticipants {
		p.Status = exchangesdk.StatusActive
		if _, err := c.client.AddParticipant(ctx, e.ID, p); err != nil {
			if exchangesdk.IsCode(err, exchangesdk.ErrorCodeEmailTaken) {
				continue
			}
			return fmt.Errorf("add %s: %w", p.Email, err)
		}
		added++
	}

	if found {
		fmt.Fprintf(c.out, "Found exchange %q (%s), added %d participants\n", e.Title, e.ID, added)
		return nil
	}
	fmt.Fprintf(c.out, "Created exchange %q (%s) with %d participants\n", e.Title, e.ID, added)
	return nil
}
