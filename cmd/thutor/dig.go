package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/thutor/internal"
	"github.com/rios0rios0/thutor/internal/infrastructure/controllers"
)

func injectApp() (*controllers.AnalyzeController, *internal.AppInternal) {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var (
		analyzeController *controllers.AnalyzeController
		appInternal       *internal.AppInternal
	)
	if err := container.Invoke(func(ac *controllers.AnalyzeController, ai *internal.AppInternal) {
		analyzeController = ac
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return analyzeController, appInternal
}
