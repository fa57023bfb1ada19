package tui

import (
	"testing"

	"github.com/san-kum/lorenzbox/internal/config"
	"github.com/san-kum/lorenzbox/internal/control"
	"github.com/san-kum/lorenzbox/internal/sim"
)

func boundList(t *testing.T) (*ParamList, *sim.Scene) {
	t.Helper()
	p := config.DefaultConfig()
	p.ParticleCount = 10
	scene, err := sim.New(p)
	if err != nil {
		t.Fatal(err)
	}
	l := NewParamList()
	l.Bind(control.NewSurface(scene))
	return l, scene
}

func moveTo(t *testing.T, l *ParamList, key string) *control.Field {
	t.Helper()
	for i := 0; i < len(l.fields); i++ {
		if l.Current().Key == key {
			return l.Current()
		}
		l.HandleKey("down")
	}
	t.Fatalf("no field %s", key)
	return nil
}

func TestListSkipsFixedFields(t *testing.T) {
	l, _ := boundList(t)
	for _, f := range l.fields {
		if f.Fixed {
			t.Errorf("fixed field %s in list", f.Key)
		}
	}
	l.HandleKey("up")
	if l.Current().Key != control.KeyZ {
		t.Errorf("wrap to %s", l.Current().Key)
	}
}

func TestListNudge(t *testing.T) {
	l, scene := boundList(t)
	moveTo(t, l, control.KeyParticles)
	l.HandleKey("L")
	if scene.Len() != 20 {
		t.Errorf("len = %d", scene.Len())
	}
	moveTo(t, l, control.KeyY)
	l.HandleKey("h")
	if scene.Params.Offset.Y != -10 {
		t.Errorf("offset.y = %v", scene.Params.Offset.Y)
	}
	moveTo(t, l, control.KeyView)
	l.HandleKey("left")
	if scene.Params.View != config.ViewSide {
		t.Errorf("view = %s", scene.Params.View)
	}
	moveTo(t, l, control.KeyOutlines)
	l.HandleKey("enter")
	if !scene.Params.Outlines {
		t.Error("enter did not toggle outlines")
	}
}

func TestListEditRejectsGarbage(t *testing.T) {
	l, scene := boundList(t)
	moveTo(t, l, control.KeySpread)
	l.HandleKey("enter")
	l.buf = "-"
	l.HandleKey("enter")
	if scene.Params.Spread != config.DefaultSpread {
		t.Errorf("spread = %v", scene.Params.Spread)
	}
	l.HandleKey("enter")
	l.HandleKey("esc")
	if l.Editing() {
		t.Error("esc did not cancel")
	}
}

func TestListRespawnButton(t *testing.T) {
	l, scene := boundList(t)
	scene.TogglePause()
	moveTo(t, l, control.KeyRespawn)
	l.HandleKey("enter")
	if scene.Paused() {
		t.Error("respawn did not unpause")
	}
	if l.HandleKey("z") {
		t.Error("unknown key consumed")
	}
}
