package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bigredeye/students/api"
	"github.com/bigredeye/students/pkg/client/students"
)

type stressStats struct {
	Cycles   atomic.Int64
	NotFound atomic.Int64
	Failed   atomic.Int64
}

func makeStressCommand() *cobra.Command {
	var workers int64
	var cycles int
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run concurrent add/update/get/delete cycles against the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := stress(cmd.Context(), workers, cycles)
			if err != nil {
				return err
			}
			log.Info("Stress finished",
				zap.Int64("cycles", stats.Cycles.Load()),
				zap.Int64("not_found", stats.NotFound.Load()),
				zap.Int64("failed", stats.Failed.Load()),
			)
			return nil
		},
	}
	cmd.Flags().Int64Var(&workers, "workers", 8, "Concurrent cycles")
	cmd.Flags().IntVar(&cycles, "cycles", 100, "Total number of cycles")

	return cmd
}

// stressCycle walks one student through its whole lifecycle.
func stressCycle(client *students.Client, n int) error {
	student, err := client.AddStudent(api.StudentRequest{
		Name:       fmt.Sprintf("s%d", n),
		Department: "stress",
		RollNo:     n,
	})
	if err != nil {
		return err
	}

	_, err = client.UpdateStudent(student.ID, api.StudentRequest{
		Name:       fmt.Sprintf("u%d", n),
		Department: "stress",
		RollNo:     -n,
	})
	if err != nil {
		return err
	}

	if _, err := client.GetStudent(student.ID); err != nil {
		return err
	}

	return client.RemoveStudent(student.ID)
}

func stress(ctx context.Context, workers int64, cycles int) (*stressStats, error) {
	if workers < 1 {
		return nil, errors.Errorf("workers must be positive, got %d", workers)
	}
	if cycles < 0 {
		return nil, errors.Errorf("cycles must not be negative, got %d", cycles)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := newClient()
	if err != nil {
		return nil, err
	}

	stats := &stressStats{}
	sema := semaphore.NewWeighted(workers)
	g := errgroup.Group{}

	for i := 0; i < cycles; i++ {
		if err := sema.Acquire(ctx, 1); err != nil {
			break
		}
		n := i
		g.Go(func() error {
			defer sema.Release(1)
			err := stressCycle(client, n)
			switch {
			case err == nil:
				stats.Cycles.Inc()
			case errors.Is(err, students.ErrNotFound):
				stats.NotFound.Inc()
			default:
				stats.Failed.Inc()
				log.Warn("Stress cycle failed", zap.Int("cycle", n), zap.Error(err))
			}
			return nil
		})
	}

	_ = g.Wait()
	return stats, ctx.Err()
}
