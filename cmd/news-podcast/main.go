package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/newscast/news-podcast/internal/backend"
	"github.com/newscast/news-podcast/internal/config"
	"github.com/newscast/news-podcast/internal/generate"
	"github.com/newscast/news-podcast/internal/observability"
	"github.com/newscast/news-podcast/internal/playback"
	"github.com/newscast/news-podcast/internal/ui"
)

func main() {
	observability.InitLogger("info", true)

	// Create new Fyne app
	myApp := app.NewWithID("com.newscast.news-podcast")
	myWindow := myApp.NewWindow("Newscast")
	myWindow.Resize(fyne.NewSize(420, 760))

	settings := config.NewSettings(myApp)
	client := backend.NewClient(settings.GetAPIBaseURL())
	player := playback.NewController(playback.NewBeepEngine())
	generator := generate.NewService(client, player)

	// Create and setup UI
	rootUI := ui.NewRootUI(myWindow, myApp, client, generator, player)
	rootUI.RefreshHeadlines()

	// Show and run
	myWindow.ShowAndRun()
}
