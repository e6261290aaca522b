package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/bigredeye/students/api"
)

type importEntry struct {
	Name       string `yaml:"name"`
	Department string `yaml:"department"`
	RollNo     int    `yaml:"rollno"`
}

func parseImport(data []byte) ([]api.StudentRequest, error) {
	entries := []importEntry{}
	if err := yaml.UnmarshalStrict(data, &entries); err != nil {
		return nil, errors.Wrap(err, "Failed to unmarshal students")
	}

	reqs := make([]api.StudentRequest, 0, len(entries))
	for i, entry := range entries {
		if entry.Name == "" || entry.Department == "" {
			return nil, errors.Errorf("entry %d: name and department are required", i+1)
		}
		reqs = append(reqs, api.StudentRequest{
			Name:       entry.Name,
			Department: entry.Department,
			RollNo:     entry.RollNo,
		})
	}
	return reqs, nil
}

func makeImportCommand() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Create students listed in a yaml file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return importStudents(file)
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "Path to the yaml file")
	check(cmd.MarkFlagRequired("file"))

	return cmd
}

func importStudents(file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return errors.Wrap(err, "Failed to read students file")
	}

	reqs, err := parseImport(data)
	if err != nil {
		return err
	}

	client, err := newClient()
	if err != nil {
		return err
	}

	for _, req := range reqs {
		student, err := client.AddStudent(req)
		if err != nil {
			return errors.Wrapf(err, "Failed to import %s", req.Name)
		}
		log.Info("Imported student", zap.Uint("id", student.ID), zap.String("name", student.Name))
	}

	log.Info("Import finished", zap.Int("count", len(reqs)))
	return nil
}
