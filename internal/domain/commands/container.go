package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	constructors := []any{
		NewAnnotateLineCommand,
		NewAnnotateFileCommand,
		NewResolveTargetCommand,
		NewAnalyzeCommand,
		NewConfigureCommand,
		NewListModelsCommand,
	}
	for _, constructor := range constructors {
		if err := container.Provide(constructor); err != nil {
			return err
		}
	}

	// Bind interfaces to implementations
	bindings := []any{
		func(impl *AnnotateLineCommand) AnnotateLine { return impl },
		func(impl *AnnotateFileCommand) AnnotateFile { return impl },
		func(impl *ResolveTargetCommand) ResolveTarget { return impl },
		func(impl *AnalyzeCommand) Analyze { return impl },
		func(impl *ConfigureCommand) Configure { return impl },
		func(impl *ListModelsCommand) ListModels { return impl },
	}
	for _, binding := range bindings {
		if err := container.Provide(binding); err != nil {
			return err
		}
	}

	return nil
}
