package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/rs/zerolog/log"

	"github.com/newscast/news-podcast/internal/backend"
	"github.com/newscast/news-podcast/internal/config"
	"github.com/newscast/news-podcast/internal/generate"
	"github.com/newscast/news-podcast/internal/observability"
	"github.com/newscast/news-podcast/internal/playback"
	"github.com/newscast/news-podcast/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.newscast.news-podcast"
	AppName = "Newscast"

	WindowWidth  = 420
	WindowHeight = 760
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		// defaults still apply; log after the logger is up
		env = &config.Env{LogLevel: "info", LogPretty: true}
	}
	observability.InitLogger(env.LogLevel, env.LogPretty)
	if err != nil {
		log.Warn().Err(err).Msg("failed to read environment config, using defaults")
	}

	log.Info().Str("version", version).Msg("Newscast starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	env.Apply(settings)

	client := backend.NewClient(settings.GetAPIBaseURL())
	player := playback.NewController(playback.NewBeepEngine())
	generator := generate.NewService(client, player)

	// Create and setup UI, then kick off the first fetch
	rootUI := ui.NewRootUI(myWindow, myApp, client, generator, player)
	rootUI.RefreshHeadlines()

	// Show and run
	myWindow.ShowAndRun()
}
