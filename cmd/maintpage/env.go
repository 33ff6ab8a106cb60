package main

import (
	"context"
	"io"
	"os"

	"github.com/alnah/go-maintpage"
)

// Builder runs one build. Satisfied by *maintpage.Builder.
type Builder interface {
	Build(ctx context.Context, job maintpage.Job) (*maintpage.Report, error)
}

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdout     io.Writer
	Stderr     io.Writer
	NewBuilder func(opts ...maintpage.Option) Builder
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewBuilder: func(opts ...maintpage.Option) Builder {
			return maintpage.New(opts...)
		},
	}
}
