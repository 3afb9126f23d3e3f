package app

import (
	"testing"
	"time"

	"samtalsstod/internal/cards"
	"samtalsstod/internal/config"
	"samtalsstod/internal/easteregg"
	"samtalsstod/internal/gui/components"
	"samtalsstod/internal/logger"
	"samtalsstod/internal/sound"
	"samtalsstod/internal/timer/timertest"

	"fyne.io/fyne/v2/test"
)

type recordedStarts struct {
	commands []sound.Command
}

func (r *recordedStarts) start(cmd sound.Command) error {
	r.commands = append(r.commands, cmd)
	return nil
}

func newTestApplication(t *testing.T, locale string) (*Application, *timertest.Manual, *recordedStarts) {
	t.Helper()
	cfg := config.Default()
	cfg.Locale = locale

	clock := timertest.NewManual()
	a, err := newApplication(test.NewTempApp(t), cfg, logger.Nop(), clock)
	if err != nil {
		t.Fatalf("newApplication failed: %v", err)
	}
	a.window.SetContent(a.guiManager.GetMainContainer())

	starts := &recordedStarts{}
	a.player.SetStarter(starts.start)
	return a, clock, starts
}

func TestInitialDisplay(t *testing.T) {
	a, _, _ := newTestApplication(t, "en")

	display := a.guiManager.Display()
	if display.Headline() != "Tap a card to show it" || display.Subtext() != "" {
		t.Fatalf("initial display = %q / %q", display.Headline(), display.Subtext())
	}
	if a.window.Title() != AppName {
		t.Fatalf("title = %q", a.window.Title())
	}
}

func TestTapHelpCard(t *testing.T) {
	a, _, _ := newTestApplication(t, "en")

	test.Tap(a.guiManager.Grid().Tiles()[8])

	display := a.guiManager.Display()
	if display.Headline() != "🆘 Help" {
		t.Fatalf("headline = %q, want %q", display.Headline(), "🆘 Help")
	}
	if display.Subtext() != "I need help" {
		t.Fatalf("subtext = %q", display.Subtext())
	}
}

func TestTapEveryCardIdempotent(t *testing.T) {
	a, _, _ := newTestApplication(t, "en")
	display := a.guiManager.Display()

	for i, tile := range a.guiManager.Grid().Tiles() {
		c, _ := cards.At(i)
		test.Tap(tile)
		test.Tap(tile)
		if display.Headline() != c.Icon+" "+c.Name || display.Subtext() != c.Description {
			t.Fatalf("card %q shows %q / %q", c.Name, display.Headline(), display.Subtext())
		}
	}
}

func TestSwedishLocale(t *testing.T) {
	a, _, _ := newTestApplication(t, "sv_SE.UTF-8")

	test.Tap(a.guiManager.Grid().Tiles()[11])

	display := a.guiManager.Display()
	if display.Headline() != "🙏 Tack" || display.Subtext() != "Tack!" {
		t.Fatalf("display = %q / %q", display.Headline(), display.Subtext())
	}
	if a.window.Title() != "Samtalsstöd" {
		t.Fatalf("title = %q", a.window.Title())
	}
}

func TestEasterEggFromIconClicks(t *testing.T) {
	a, clock, starts := newTestApplication(t, "en")
	icon := a.guiManager.Header().IconButton
	toast := a.guiManager.Toast()

	for i := 0; i < easteregg.DefaultThreshold; i++ {
		test.Tap(icon)
		clock.Advance(100 * time.Millisecond)
	}

	if len(starts.commands) != 1 || starts.commands[0].Name != "paplay" {
		t.Fatalf("sound commands = %+v", starts.commands)
	}
	if !toast.Visible() || toast.Text() != "🎉 You found the secret!" {
		t.Fatalf("toast visible=%v text=%q", toast.Visible(), toast.Text())
	}
	if a.counter.Count() != 0 {
		t.Fatalf("counter = %d after trigger", a.counter.Count())
	}

	clock.Advance(components.ToastTimeout)
	if toast.Visible() {
		t.Fatalf("toast still visible after timeout")
	}
}

func TestSlowIconClicksDoNothing(t *testing.T) {
	a, clock, starts := newTestApplication(t, "en")
	icon := a.guiManager.Header().IconButton

	for i := 0; i < 10; i++ {
		test.Tap(icon)
		clock.Advance(easteregg.DefaultDebounce)
	}

	if len(starts.commands) != 0 || a.guiManager.Toast().Visible() {
		t.Fatalf("easter egg fired on slow clicks")
	}
	if a.counter.Count() != 0 {
		t.Fatalf("counter = %d, want 0", a.counter.Count())
	}
}

func TestLifecycleShutdown(t *testing.T) {
	a, clock, _ := newTestApplication(t, "en")

	test.Tap(a.guiManager.Header().IconButton)
	a.lifecycle.Shutdown()
	a.lifecycle.Shutdown()

	if !a.lifecycle.IsShutdown() {
		t.Fatalf("lifecycle not marked shut down")
	}
	if clock.Pending() != 0 || a.counter.Count() != 0 {
		t.Fatalf("pending=%d count=%d after shutdown", clock.Pending(), a.counter.Count())
	}
}

func TestAboutInfo(t *testing.T) {
	a, _, _ := newTestApplication(t, "en")

	info := aboutInfo(a.handlers.translator)
	if info.Name != AppName || info.Version != AppVersion || info.Website == "" || len(info.Developers) != 1 {
		t.Fatalf("about info = %+v", info)
	}

	a.handlers.HandleAbout()
	if a.window.Canvas().Overlays().Top() == nil {
		t.Fatalf("about dialog not shown")
	}
}
