package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"
)

func newCourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Course record commands",
	}

	cmd.AddCommand(newCourseListCmd())
	cmd.AddCommand(newCourseGetCmd())
	cmd.AddCommand(newCourseAddCmd())
	cmd.AddCommand(newCourseUpdateCmd())
	cmd.AddCommand(newCourseDeleteCmd())
	cmd.AddCommand(newCourseSearchCmd())

	return cmd
}

// courseFlags binds the course record fields as command flags
type courseFlags struct {
	name    string
	email   string
	phone   string
	date    string
	gender  string
	subject string
}

func (f *courseFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Full name (required)")
	cmd.Flags().StringVar(&f.email, "email", "", "Email address (required)")
	cmd.Flags().StringVar(&f.phone, "phone", "", "Phone number (required)")
	cmd.Flags().StringVar(&f.date, "date", "", "Registration date, YYYY-MM-DD (optional)")
	cmd.Flags().StringVar(&f.gender, "gender", "", "Gender: 'Laki - Laki' or 'Perempuan' (required)")
	cmd.Flags().StringVar(&f.subject, "subject", "", "Subject, e.g. Matematika (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("phone")
	_ = cmd.MarkFlagRequired("gender")
	_ = cmd.MarkFlagRequired("subject")
}

func (f *courseFlags) body() map[string]string {
	return map[string]string{
		"name":              f.name,
		"email":             f.email,
		"phone_number":      f.phone,
		"registration_date": f.date,
		"gender":            f.gender,
		"subject":           f.subject,
	}
}

func newCourseListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all course records",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result CourseList

			if err := client.Get("/api/v1/courses", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCourseGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a single course record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Course

			if err := client.Get("/api/v1/courses/"+args[0], &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newCourseAddCmd() *cobra.Command {
	flags := &courseFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a course record",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Course

			if err := client.Post("/api/v1/courses", flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newCourseUpdateCmd() *cobra.Command {
	flags := &courseFlags{}

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a course record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result Course

			if err := client.Put("/api/v1/courses/"+args[0], flags.body(), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newCourseDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a course record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/v1/courses/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Course %s deleted", args[0]))
			return nil
		},
	}
}

func newCourseSearchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <term>",
		Short: "Search course records by name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := ""
			if len(args) > 0 {
				term = args[0]
			}

			var result CourseList
			path := "/api/v1/courses/search?q=" + url.QueryEscape(term)

			if err := client.Get(path, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}
