package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Loocist23/2ta-mobile-app/internal/catalog"
)

// NewJobsCommand creates the read-only job catalog command.
func NewJobsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse the job catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List job offers",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				return f.Success(jobList(app.Catalog.Jobs()))
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <job-id>",
		Short: "Show one job offer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				job, ok := app.Catalog.JobByID(args[0])
				if !ok {
					return fail(f, fmt.Errorf("unknown job %q", args[0]))
				}
				return f.Success(jobView{job})
			})
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

// NewCompaniesCommand creates the read-only company catalog command.
func NewCompaniesCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "companies",
		Short: "Browse the company catalog",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List companies",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				return f.Success(companyList(app.Catalog.Companies()))
			})
		},
	}

	show := &cobra.Command{
		Use:   "show <company-id>",
		Short: "Show one company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithApp(rootOpts, cmd, func(app *App, f *OutputFormatter) error {
				company, ok := app.Catalog.CompanyByID(args[0])
				if !ok {
					return fail(f, fmt.Errorf("unknown company %q", args[0]))
				}
				return f.Success(companyView{company})
			})
		},
	}

	cmd.AddCommand(list, show)
	return cmd
}

type jobList []catalog.Job

func (l jobList) String() string {
	var b strings.Builder
	for i, j := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s @ %s  %s, %s, %s", j.ID, j.Title, j.Company, j.Location, j.Contract, j.Salary)
	}
	return b.String()
}

type jobView struct {
	catalog.Job
}

func (v jobView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s @ %s\n", v.Title, v.Company)
	fmt.Fprintf(&b, "%s · %s · %s · %s\n", v.Location, v.Contract, v.Salary, v.RemoteType)
	if len(v.Tags) > 0 {
		fmt.Fprintf(&b, "tags: %s\n", strings.Join(v.Tags, ", "))
	}
	b.WriteString(v.Description)
	return b.String()
}

type companyList []catalog.Company

func (l companyList) String() string {
	var b strings.Builder
	for i, c := range l {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s  %s  %s, %s, %d open roles", c.ID, c.Name, c.Location, c.Industry, c.OpenRoles)
	}
	return b.String()
}

type companyView struct {
	catalog.Company
}

func (v companyView) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", v.Name, v.Industry)
	fmt.Fprintf(&b, "%s · %s employees · %s\n", v.Location, v.Employees, v.Website)
	if len(v.Culture) > 0 {
		fmt.Fprintf(&b, "culture: %s\n", strings.Join(v.Culture, ", "))
	}
	b.WriteString(v.Description)
	return b.String()
}
