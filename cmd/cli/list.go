package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/bigredeye/students/internal/models"
)

func makeListCommand() *cobra.Command {
	var sortBy string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List students",
		RunE: func(cmd *cobra.Command, args []string) error {
			return listStudents(cmd.OutOrStdout(), sortBy)
		},
	}
	cmd.Flags().StringVar(&sortBy, "sort", "id", "Sort by id, name or rollno")

	return cmd
}

func sortStudents(list []models.Student, sortBy string) error {
	var less func(lhs, rhs models.Student) bool
	switch sortBy {
	case "id":
		less = func(lhs, rhs models.Student) bool { return lhs.ID < rhs.ID }
	case "name":
		less = func(lhs, rhs models.Student) bool {
			if lhs.Name != rhs.Name {
				return lhs.Name < rhs.Name
			}
			return lhs.ID < rhs.ID
		}
	case "rollno":
		less = func(lhs, rhs models.Student) bool {
			if lhs.RollNo != rhs.RollNo {
				return lhs.RollNo < rhs.RollNo
			}
			return lhs.ID < rhs.ID
		}
	default:
		return errors.Errorf("unknown sort key %q", sortBy)
	}
	slices.SortFunc(list, less)
	return nil
}

func printStudent(w io.Writer, student *models.Student) {
	fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", student.ID, student.Name, student.Department, student.RollNo)
}

func listStudents(w io.Writer, sortBy string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	list, err := client.ListStudents()
	if err != nil {
		return err
	}

	if err := sortStudents(list, sortBy); err != nil {
		return err
	}

	for i := range list {
		printStudent(w, &list[i])
	}
	return nil
}
