package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diegoclair/crew-planner/internal/domain/entity"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations completed successfully")
			return nil
		})
	},
}

var crewCmd = &cobra.Command{
	Use:   "crew",
	Short: "Manage the crew member directory",
}

var crewAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a crew member",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.TrimSpace(strings.Join(args, " "))
		if name == "" {
			return fmt.Errorf("name is required")
		}
		return withStore(func(st *store) error {
			member := &entity.CrewMember{Name: name, IsActive: true}
			if err := st.dm.Crew().Create(cmd.Context(), member); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", member.ID, member.Name)
			return nil
		})
	},
}

var crewLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List active crew members",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(func(st *store) error {
			members, err := st.dm.Crew().ListActive(cmd.Context())
			if err != nil {
				return err
			}
			for _, m := range members {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", m.ID, m.Name)
			}
			return nil
		})
	},
}

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Manage projects",
}

var projectInput entity.Project

var projectAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a project so it can be placed on the board",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(projectInput.Name) == "" {
			return fmt.Errorf("--name is required")
		}
		return withStore(func(st *store) error {
			project := projectInput
			if err := st.dm.Project().Create(cmd.Context(), &project); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", project.ID, project.OrderNumber, project.Name)
			return nil
		})
	},
}

func init() {
	crewCmd.AddCommand(crewAddCmd, crewLsCmd)

	projectAddCmd.Flags().StringVar(&projectInput.Name, "name", "", "project name")
	projectAddCmd.Flags().StringVar(&projectInput.OrderNumber, "order", "", "order number")
	projectAddCmd.Flags().StringVar(&projectInput.Customer, "customer", "", "customer")
	projectAddCmd.Flags().StringVar(&projectInput.SalesResponsible, "sales", "", "sales responsible")
	projectCmd.AddCommand(projectAddCmd)

	rootCmd.AddCommand(migrateCmd, crewCmd, projectCmd)
}

func withStore(fn func(st *store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg, cliLogger())
	if err != nil {
		return err
	}
	defer st.Close()
	return fn(st)
}
