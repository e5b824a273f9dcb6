package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diegoclair/crew-planner/internal/calendar"
	"github.com/diegoclair/crew-planner/internal/domain/contract"
	"github.com/diegoclair/crew-planner/internal/domain/service"
)

var holidaysCmd = &cobra.Command{
	Use:   "holidays <year>",
	Short: "List the Swedish public holidays of a year",
	Args:  cobra.ExactArgs(1),
	RunE:  runHolidays,
}

var weekCmd = &cobra.Command{
	Use:   "week <YYYY-MM-DD|YYYY-Www>",
	Short: "Print the crews and jobs of an ISO week",
	Args:  cobra.ExactArgs(1),
	RunE:  runWeek,
}

func init() {
	rootCmd.AddCommand(holidaysCmd)
	rootCmd.AddCommand(weekCmd)
}

func runHolidays(cmd *cobra.Command, args []string) error {
	year, err := strconv.Atoi(args[0])
	if err != nil || year < 1583 || year > 9999 {
		return fmt.Errorf("invalid year %q", args[0])
	}

	out := cmd.OutOrStdout()
	for _, h := range calendar.SwedishHolidays(year) {
		suffix := ""
		if h.Eve {
			suffix = " (afton)"
		}
		fmt.Fprintf(out, "%s  v%02d  %s%s\n", calendar.FormatDay(h.Date), calendar.ISOWeekNumber(h.Date), h.Name, suffix)
	}
	return nil
}

func runWeek(cmd *cobra.Command, args []string) error {
	monday, err := calendar.ParseDayOrWeek(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := cliLogger()

	st, err := openStore(cfg, log)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := service.NewInstance(st.dm, service.NewCrewDirectory(st.dm, cfg.Directory.CacheTTL), cfg.Trucks, log)
	board, err := svc.View.Week(cmd.Context(), calendar.ISOWeekKey(monday), contract.Filter{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, service.RosterMessage(board))
	for _, day := range board.Days {
		for _, lane := range day.Lanes {
			for _, entry := range lane.Entries {
				fmt.Fprintf(out, "%s  %-12s  %-8s %s", day.Key, lane.Truck, entry.OrderNumber(), entry.ProjectName())
				if entry.Bags != nil {
					fmt.Fprintf(out, "  säckar %d/%d", entry.Bags.Used, entry.Bags.Plan)
				}
				fmt.Fprintln(out)
			}
		}
	}
	return nil
}
