package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/blobrun/internal/core"
)

type stubGame struct {
	id, title string
	state     core.GameState
}

func (g *stubGame) ID() string               { return g.id }
func (g *stubGame) Title() string            { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig) { g.state = core.GameState{} }
func (g *stubGame) Render(*core.Screen)      {}
func (g *stubGame) State() core.GameState    { return g.state }
func (g *stubGame) Step(core.InputFrame) core.StepResult {
	g.state.Score++
	return core.StepResult{State: g.state}
}

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub", title: "Stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game not found")
	}
	if got := Title("zz_stub"); got != "Stub" {
		t.Errorf("Title = %q, want Stub", got)
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID = %q", g.ID())
	}

	// Each Create returns a fresh instance.
	g.Step(core.NewInputFrame())
	g2, _ := Create("zz_stub")
	if g2.State().Score != 0 {
		t.Error("factory returned a shared instance")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List is missing the stub game")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, want ErrUnknownGame", err)
	}
	if Title("no_such_game") != "no_such_game" {
		t.Error("Title of an unknown id should fall back to the id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestListSorted(t *testing.T) {
	Register("zz_b", func() Game { return &stubGame{id: "zz_b"} })
	Register("zz_a", func() Game { return &stubGame{id: "zz_a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
