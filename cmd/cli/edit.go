package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bigredeye/students/api"
)

func makeGetCommand() *cobra.Command {
	var id uint
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show one student",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			student, err := client.GetStudent(id)
			if err != nil {
				return err
			}
			printStudent(cmd.OutOrStdout(), student)
			return nil
		},
	}
	cmd.Flags().UintVar(&id, "id", 0, "Student id")
	check(cmd.MarkFlagRequired("id"))

	return cmd
}

func addStudentFlags(cmd *cobra.Command, req *api.StudentRequest) {
	cmd.Flags().StringVar(&req.Name, "name", "", "Student name")
	cmd.Flags().StringVar(&req.Department, "department", "", "Department")
	cmd.Flags().IntVar(&req.RollNo, "rollno", 0, "Roll number")
	check(cmd.MarkFlagRequired("name"))
	check(cmd.MarkFlagRequired("department"))
}

func makeAddCommand() *cobra.Command {
	var req api.StudentRequest
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			student, err := client.AddStudent(req)
			if err != nil {
				return err
			}
			log.Info("Added student", zap.Uint("id", student.ID), zap.String("name", student.Name))
			printStudent(cmd.OutOrStdout(), student)
			return nil
		},
	}
	addStudentFlags(cmd, &req)

	return cmd
}

func makeUpdateCommand() *cobra.Command {
	var id uint
	var req api.StudentRequest
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Replace all fields of a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			student, err := client.UpdateStudent(id, req)
			if err != nil {
				return err
			}
			log.Info("Updated student", zap.Uint("id", student.ID), zap.String("name", student.Name))
			printStudent(cmd.OutOrStdout(), student)
			return nil
		},
	}
	cmd.Flags().UintVar(&id, "id", 0, "Student id")
	check(cmd.MarkFlagRequired("id"))
	addStudentFlags(cmd, &req)

	return cmd
}

func makeDeleteCommand() *cobra.Command {
	var id uint
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a student",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}
			if err := client.RemoveStudent(id); err != nil {
				return err
			}
			log.Info("Deleted student", zap.Uint("id", id))
			return nil
		},
	}
	cmd.Flags().UintVar(&id, "id", 0, "Student id")
	check(cmd.MarkFlagRequired("id"))

	return cmd
}
