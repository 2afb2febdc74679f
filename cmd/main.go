package main

import (
	"errors"
	"os"

	"zoneclock/internal/ads"
	"zoneclock/internal/audio"
	"zoneclock/internal/config"
	"zoneclock/internal/core/countdown"
	"zoneclock/internal/core/model"
	"zoneclock/internal/core/timekeeper"
	"zoneclock/internal/core/zoneclock"
	"zoneclock/internal/platform"
	"zoneclock/internal/storage"
	"zoneclock/internal/ui/animation"
	"zoneclock/internal/ui/clockface"
	uicountdown "zoneclock/internal/ui/countdown"
	"zoneclock/internal/ui/preferences"
	"zoneclock/internal/ui/tray"
	"zoneclock/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const appName = "ZoneClock"

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	zerolog.SetGlobalLevel(cfg.LogLevel)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Info().Msg("another ZoneClock is already running")
			if err := platform.ActivateRunning(appName); err != nil {
				log.Warn().Err(err).Msg("activate running instance")
			}
			return
		}
		log.Fatal().Err(err).Msg("single instance")
	}
	defer func() {
		_ = guard.Release()
	}()

	configDir, err := platform.NewService(cfg.ConfigDir).GetConfigDir()
	if err != nil {
		log.Fatal().Err(err).Msg("resolve config dir")
	}
	store, err := storage.OpenInDir(configDir, appName)
	if err != nil {
		log.Warn().Err(err).Str("path", store.Path()).Msg("settings unreadable, using defaults")
	}
	prefs := preferences.NewManager(store)

	clock := clockwork.NewRealClock()
	player := audio.NewPlayer(audio.NewEbitenBackend(resources.MustSound(resources.AlertSound), clock))
	machine := countdown.NewMachine(clock, player)
	keeper := timekeeper.New(machine, timekeeper.Config{
		TickInterval: cfg.TickInterval,
		Clock:        clock,
	})

	fyneApp := app.NewWithID("com.zoneclock.app")
	fyneApp.SetIcon(resources.MustLogo(resources.AppIcon))

	var face *clockface.Window
	var trayManager *tray.Manager

	controls := preferences.NewPanel(prefs, zoneclock.Zones(), func(settings preferences.Settings) {
		face.ApplySettings(settings)
		face.Render(clock.Now())
	})

	var countdownPanel *uicountdown.Panel
	pulse := animation.New(animation.DefaultConfig(), clock, func(scale float32) {
		countdownPanel.SetPulseScale(scale)
	})
	countdownPanel = uicountdown.NewPanel(uicountdown.Controls{
		OnStart: func() {
			keeper.StartCountdown()
		},
		OnReset: func(id int64) {
			keeper.ResetCountdown(id)
		},
		OnDelete: func(id int64) {
			keeper.DeleteCountdown(id)
		},
	}, pulse)

	adBoard := clockface.NewAdBoard(ads.DefaultSlot(), 2)

	face = clockface.New(fyneApp, appName, zoneclock.NewHostFormatter(), prefs.Settings(), clockface.Sections{
		Controls:  controls.Content(),
		Countdown: countdownPanel.Content(),
		TopAd:     adBoard.Placeholder(0),
		BottomAd:  adBoard.Placeholder(1),
	})
	quit := func() {
		keeper.Stop()
		pulse.Stop()
		player.Stop()
		fyneApp.Quit()
	}
	face.Window().SetCloseIntercept(quit)
	go guard.Serve(func() {
		fyne.Do(face.Show)
	})

	if desktopApp, ok := fyneApp.(desktop.App); ok {
		desktopApp.SetSystemTrayIcon(resources.MustLogo(resources.AppIcon))
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: face.Show,
			OnStartCountdown: func() {
				keeper.StartCountdown()
			},
			OnToggleDarkMode: func() {
				if _, err := prefs.ToggleDarkMode(); err != nil {
					log.Error().Err(err).Msg("persist dark mode")
				}
				settings := prefs.Settings()
				controls.UpdateSettings(settings)
				face.ApplySettings(settings)
			},
			OnQuit: quit,
		})
	} else {
		log.Debug().Msg("system tray unsupported on this platform")
	}

	render := func(current model.Countdown, present bool) {
		countdownPanel.Render(current, present)
		if trayManager != nil {
			trayManager.SetStatus(uicountdown.Status(current, present))
			trayManager.SetCountdownActive(present)
		}
	}

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			fyne.Do(func() {
				switch event.Type {
				case timekeeper.EventTick:
					face.Render(event.At)
				case timekeeper.EventCountdownChanged:
					render(event.Countdown, event.HasCountdown)
				case timekeeper.EventFinished:
					log.Info().Int64("countdown_id", event.Countdown.ID).Msg("countdown finished")
				}
			})
		}
	}()

	face.Render(clock.Now())
	render(model.Countdown{}, false)

	keeper.Start()
	face.Show()

	injector := ads.NewInjector(cfg.IsDevelopment(), adBoard)
	injector.Inject(adBoard.Slots())
	fyneApp.Run()
	keeper.Stop()
}
