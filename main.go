package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"portalfx/game"
	"portalfx/page"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	pageURL := flag.String("url", "", "page URL or query string, e.g. '?name=jane%20doe&identity=Founder%0AAcme'")
	profileDir := flag.String("profile-dir", "", "write CPU profiles here when the frame rate drops")
	flag.Parse()

	config := game.DefaultConfig()
	if *configPath != "" {
		loaded, err := game.LoadConfig(*configPath)
		if err != nil {
			log.Printf("[Config] %v, using defaults", err)
		} else {
			config = loaded
		}
	}

	p := page.New(config.Title, config.Surfaces)
	p.Apply(page.ParseQuery(*pageURL))

	g := game.NewGame(config, p, time.Now().UnixNano())
	g.EnableProfiling(*profileDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		g.Stop()
	}()

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetVsyncEnabled(true)

	log.Printf("[Portal] starting %dx%d with %d dots per surface", config.ScreenWidth, config.ScreenHeight, config.DotCount)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
